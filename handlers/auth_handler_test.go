package handlers

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-management-system/models"
	"employee-management-system/pkg/paseto"
	"employee-management-system/pkg/password"
)

func testTokenMaker(t *testing.T) *paseto.Maker {
	t.Helper()
	secret := base64.URLEncoding.EncodeToString([]byte("01234567890123456789012345678901"))
	maker, err := paseto.NewMaker(secret)
	require.NoError(t, err)
	return maker
}

func TestLoginSuccess(t *testing.T) {
	hashed, err := password.HashPassword("secret123")
	require.NoError(t, err)

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: hashed,
		Role:     models.RoleEmployee,
		Status:   models.StatusActive,
	}
	h := NewAuthHandler(newFakeUserRepo(user), testTokenMaker(t))

	app := newTestApp(nil)
	app.Post("/auth/login", h.Login)

	resp := postJSON(app, http.MethodPost, "/auth/login", models.UserLoginPayload{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Token string      `json:"token"`
			User  models.User `json:"user"`
		} `json:"data"`
	}
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data.Token)
	assert.Equal(t, user.Email, body.Data.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, err := password.HashPassword("secret123")
	require.NoError(t, err)

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "jane@example.com",
		Password: hashed,
		Status:   models.StatusActive,
	}
	h := NewAuthHandler(newFakeUserRepo(user), testTokenMaker(t))

	app := newTestApp(nil)
	app.Post("/auth/login", h.Login)

	resp := postJSON(app, http.MethodPost, "/auth/login", models.UserLoginPayload{
		Email:    "jane@example.com",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginInactiveAccountRejected(t *testing.T) {
	hashed, err := password.HashPassword("secret123")
	require.NoError(t, err)

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "gone@example.com",
		Password: hashed,
		Status:   models.StatusInactive,
	}
	h := NewAuthHandler(newFakeUserRepo(user), testTokenMaker(t))

	app := newTestApp(nil)
	app.Post("/auth/login", h.Login)

	resp := postJSON(app, http.MethodPost, "/auth/login", models.UserLoginPayload{
		Email:    "gone@example.com",
		Password: "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestChangePasswordOldMismatch(t *testing.T) {
	hashed, err := password.HashPassword("secret123")
	require.NoError(t, err)

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "jane@example.com",
		Password: hashed,
		Status:   models.StatusActive,
	}
	h := NewAuthHandler(newFakeUserRepo(user), testTokenMaker(t))

	app := newTestApp(&models.Claims{UserID: user.ID, Role: models.RoleEmployee})
	app.Post("/auth/change-password", h.ChangePassword)

	resp := postJSON(app, http.MethodPost, "/auth/change-password", models.ChangePasswordPayload{
		OldPassword: "wrong",
		NewPassword: "another456",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestChangePasswordSuccess(t *testing.T) {
	hashed, err := password.HashPassword("secret123")
	require.NoError(t, err)

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "jane@example.com",
		Password: hashed,
		Status:   models.StatusActive,
	}
	repo := newFakeUserRepo(user)
	h := NewAuthHandler(repo, testTokenMaker(t))

	app := newTestApp(&models.Claims{UserID: user.ID, Role: models.RoleEmployee})
	app.Post("/auth/change-password", h.ChangePassword)

	resp := postJSON(app, http.MethodPost, "/auth/change-password", models.ChangePasswordPayload{
		OldPassword: "secret123",
		NewPassword: "another456",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stored, err := repo.FindUserByID(nil, user.ID)
	require.NoError(t, err)
	assert.True(t, password.CheckPasswordHash("another456", stored.Password))
}
