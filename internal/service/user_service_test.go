package service

import (
	"context"
	"testing"

	"lendhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserServiceCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateUserInput
		wantErr bool
	}{
		{name: "valid user", input: CreateUserInput{Name: "Alice", Email: "alice@example.com"}},
		{name: "blank name", input: CreateUserInput{Name: "  ", Email: "alice@example.com"}, wantErr: true},
		{name: "missing email", input: CreateUserInput{Name: "Alice"}, wantErr: true},
		{name: "malformed email", input: CreateUserInput{Name: "Alice", Email: "not-an-email"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := false
			svc := NewUserService(&stubUserRepo{
				create: func(u *models.User) error {
					created = true
					u.ID = 1
					return nil
				},
			})

			user, err := svc.Create(context.Background(), tt.input)
			if tt.wantErr {
				var appErr *models.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, models.CodeValidation, appErr.Code)
				assert.False(t, created, "repository must not be touched on invalid input")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(1), user.ID)
			assert.True(t, created)
		})
	}
}

func TestUserServicePatchMergesOnlyProvidedFields(t *testing.T) {
	existing := models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}

	var saved *models.User
	svc := NewUserService(&stubUserRepo{
		getByID: userByID(existing),
		update: func(u *models.User) error {
			saved = u
			return nil
		},
	})

	user, err := svc.Patch(context.Background(), 1, UserPatch{Email: strPtr("new@example.com")})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "new@example.com", user.Email)
}

func TestUserServicePatchRejectsInvalidEmail(t *testing.T) {
	existing := models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}

	updated := false
	svc := NewUserService(&stubUserRepo{
		getByID: userByID(existing),
		update: func(u *models.User) error {
			updated = true
			return nil
		},
	})

	_, err := svc.Patch(context.Background(), 1, UserPatch{Email: strPtr("broken")})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
	assert.False(t, updated)
}

func TestUserServiceDeleteMissingUser(t *testing.T) {
	svc := NewUserService(&stubUserRepo{
		getByID: userByID(),
	})

	err := svc.Delete(context.Background(), 42)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
