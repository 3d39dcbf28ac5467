package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lendhub/internal/config"
	"lendhub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGateway(t *testing.T, serverURL string) *fiber.App {
	t.Helper()

	cfg := &config.Config{GatewayPort: "0", ServerURL: serverURL}
	gw := NewGatewayWithRedis(cfg, nil)

	app := NewApp()
	gw.SetupRoutes(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, userID string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(userHeader, userID)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

// Validation failures must be answered by the gateway itself, so these
// tests run without any upstream.
func TestGatewayValidation(t *testing.T) {
	app := setupGateway(t, "http://127.0.0.1:1")

	future := time.Now().Add(time.Hour).Format(time.RFC3339Nano)
	past := time.Now().Add(-time.Hour).Format(time.RFC3339Nano)
	later := time.Now().Add(2 * time.Hour).Format(time.RFC3339Nano)

	tests := []struct {
		name   string
		method string
		path   string
		userID string
		body   fiber.Map
	}{
		{name: "user without name", method: http.MethodPost, path: "/users", body: fiber.Map{"email": "a@example.com"}},
		{name: "user with bad email", method: http.MethodPost, path: "/users", body: fiber.Map{"name": "A", "email": "nope"}},
		{name: "user patch with bad email", method: http.MethodPatch, path: "/users/1", body: fiber.Map{"email": "nope"}},
		{name: "user patch with bad id", method: http.MethodPatch, path: "/users/zero", body: fiber.Map{}},
		{name: "item without header", method: http.MethodPost, path: "/items", body: fiber.Map{"name": "Drill", "description": "d", "available": true}},
		{name: "item with bad header", method: http.MethodPost, path: "/items", userID: "abc", body: fiber.Map{"name": "Drill", "description": "d", "available": true}},
		{name: "item without name", method: http.MethodPost, path: "/items", userID: "1", body: fiber.Map{"description": "d", "available": true}},
		{name: "item without description", method: http.MethodPost, path: "/items", userID: "1", body: fiber.Map{"name": "Drill", "available": true}},
		{name: "item without available", method: http.MethodPost, path: "/items", userID: "1", body: fiber.Map{"name": "Drill", "description": "d"}},
		{name: "blank comment", method: http.MethodPost, path: "/items/1/comment", userID: "1", body: fiber.Map{"text": " "}},
		{name: "blank request description", method: http.MethodPost, path: "/requests", userID: "1", body: fiber.Map{"description": ""}},
		{name: "negative from", method: http.MethodGet, path: "/items?from=-1&size=5", userID: "1"},
		{name: "zero size", method: http.MethodGet, path: "/requests/all?from=0&size=0", userID: "1"},
		{name: "from without size", method: http.MethodGet, path: "/items?from=3", userID: "1"},
		{name: "booking without dates", method: http.MethodPost, path: "/bookings", userID: "1", body: fiber.Map{"itemId": 1}},
		{name: "booking start in past", method: http.MethodPost, path: "/bookings", userID: "1", body: fiber.Map{"itemId": 1, "start": past, "end": later}},
		{name: "booking end before start", method: http.MethodPost, path: "/bookings", userID: "1", body: fiber.Map{"itemId": 1, "start": later, "end": future}},
		{name: "approve without flag", method: http.MethodPatch, path: "/bookings/1", userID: "1"},
		{name: "approve with bad flag", method: http.MethodPatch, path: "/bookings/1?approved=maybe", userID: "1"},
		{name: "unknown booking state", method: http.MethodGet, path: "/bookings?state=BOGUS", userID: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body any
			if tt.body != nil {
				body = tt.body
			}
			resp := do(t, app, tt.method, tt.path, tt.userID, body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var errBody models.ErrorResponse
			defer func() { _ = resp.Body.Close() }()
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
			assert.Equal(t, "400", errBody.Status)
			assert.NotEmpty(t, errBody.Description)
		})
	}
}

func TestGatewayUnknownStateMessage(t *testing.T) {
	app := setupGateway(t, "http://127.0.0.1:1")

	resp := do(t, app, http.MethodGet, "/bookings/owner?state=SOMEDAY", "1", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Unknown state: SOMEDAY", body.Description)
}

// Blank search text is answered by the gateway with an empty list and
// never reaches the upstream.
func TestGatewayBlankSearchAnsweredLocally(t *testing.T) {
	app := setupGateway(t, "http://127.0.0.1:1")

	for _, path := range []string{"/items/search?text=", "/items/search?text=%20", "/items/search?text=%20%20"} {
		resp := do(t, app, http.MethodGet, path, "1", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)

		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		require.NoError(t, err)
		assert.Equal(t, "[]", string(body), path)
	}
}

func TestGatewayApprovedFlagSpellings(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"status":"APPROVED"}`))
	}))
	defer upstream.Close()

	app := setupGateway(t, upstream.URL)

	for _, flag := range []string{"true", "True", "TRUE", "1", "false", "0"} {
		resp := do(t, app, http.MethodPatch, "/bookings/1?approved="+flag, "1", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, flag)
		_ = resp.Body.Close()
	}
}

// A valid request is forwarded untouched and the upstream's status and
// body come back verbatim.
func TestGatewayForwardsValidRequests(t *testing.T) {
	var got *http.Request
	var gotBody []byte
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"name":"Alice","email":"alice@example.com"}`))
	}))
	defer upstream.Close()

	app := setupGateway(t, upstream.URL)

	resp := do(t, app, http.MethodPost, "/users", "", fiber.Map{
		"name":  "Alice",
		"email": "alice@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.User
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, uint(1), user.ID)

	require.NotNil(t, got)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/users", got.URL.Path)
	assert.Contains(t, string(gotBody), "alice@example.com")
}

func TestGatewayForwardsHeaderAndQuery(t *testing.T) {
	var got *http.Request
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	app := setupGateway(t, upstream.URL)

	resp := do(t, app, http.MethodGet, "/bookings?state=WAITING&from=0&size=10", "7", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	require.NotNil(t, got)
	assert.Equal(t, "7", got.Header.Get(userHeader))
	assert.Equal(t, "WAITING", got.URL.Query().Get("state"))
	assert.Equal(t, "10", got.URL.Query().Get("size"))
}

func TestGatewayRelaysUpstreamErrors(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":"404","error":"Resource not found","description":"user with id 9 not found"}`))
	}))
	defer upstream.Close()

	app := setupGateway(t, upstream.URL)

	resp := do(t, app, http.MethodGet, "/users/9", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body models.ErrorResponse
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Resource not found", body.Error)
}
