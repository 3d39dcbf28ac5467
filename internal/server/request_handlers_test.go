package server

import (
	"fmt"
	"net/http"
	"testing"

	"lendhub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createRequest(t *testing.T, app *fiber.App, requesterID uint, description string) models.RequestResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/requests", requesterID, fiber.Map{"description": description})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create request: expected 201, got %d", resp.StatusCode)
	}
	var request models.RequestResponse
	decodeJSON(t, resp, &request)
	return request
}

func TestRequestCreateAndGet(t *testing.T) {
	_, app := setupTestServer(t)

	requester := createUser(t, app, "Requester", "requester@example.com")
	owner := createUser(t, app, "Owner", "owner@example.com")

	request := createRequest(t, app, requester.ID, "need a drill")
	assert.NotZero(t, request.ID)
	assert.False(t, request.Created.IsZero())

	// An item listed against the request shows up as fulfillment
	resp := doJSON(t, app, http.MethodPost, "/items", owner.ID, fiber.Map{
		"name":        "Drill",
		"description": "power drill",
		"available":   true,
		"requestId":   request.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var item models.ItemResponse
	decodeJSON(t, resp, &item)
	require.NotNil(t, item.RequestID)
	assert.Equal(t, request.ID, *item.RequestID)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/requests/%d", request.ID), owner.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.RequestResponse
	decodeJSON(t, resp, &fetched)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, item.ID, fetched.Items[0].ID)
}

func TestRequestCreateValidation(t *testing.T) {
	_, app := setupTestServer(t)
	requester := createUser(t, app, "Requester", "requester@example.com")

	resp := doJSON(t, app, http.MethodPost, "/requests", requester.ID, fiber.Map{"description": "  "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/requests", 99, fiber.Map{"description": "need a drill"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRequestListings(t *testing.T) {
	_, app := setupTestServer(t)

	alice := createUser(t, app, "Alice", "alice@example.com")
	bob := createUser(t, app, "Bob", "bob@example.com")

	createRequest(t, app, alice.ID, "need a drill")
	createRequest(t, app, alice.ID, "need a ladder")
	createRequest(t, app, bob.ID, "need a saw")

	t.Run("own requests in creation order", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/requests", alice.ID, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var own []models.RequestResponse
		decodeJSON(t, resp, &own)
		require.Len(t, own, 2)
		assert.Equal(t, "need a drill", own[0].Description)
		assert.Equal(t, "need a ladder", own[1].Description)
	})

	t.Run("others' requests exclude own", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/requests/all", alice.ID, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var others []models.RequestResponse
		decodeJSON(t, resp, &others)
		require.Len(t, others, 1)
		assert.Equal(t, "need a saw", others[0].Description)
	})

	t.Run("paginated others", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/requests/all?from=0&size=1", bob.ID, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var page []models.RequestResponse
		decodeJSON(t, resp, &page)
		require.Len(t, page, 1)
		assert.Equal(t, "need a drill", page[0].Description)
	})

	t.Run("unknown request id", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/requests/999", alice.ID, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
