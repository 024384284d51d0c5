package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	j := New("secret", time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	token, err := j.Generate(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotID, err := j.GetUserID(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
}

func TestJWT_GetUserID_WrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := New("secret", time.Hour).Generate(ctx, uuid.New())
	require.NoError(t, err)

	_, err = New("other-secret", time.Hour).GetUserID(ctx, token)
	assert.Error(t, err)
}

func TestJWT_GetUserID_Expired(t *testing.T) {
	ctx := context.Background()
	j := New("secret", -time.Minute)

	token, err := j.Generate(ctx, uuid.New())
	require.NoError(t, err)

	_, err = j.GetUserID(ctx, token)
	assert.Error(t, err)
}

func TestJWT_GetUserID_Garbage(t *testing.T) {
	_, err := New("secret", time.Hour).GetUserID(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Hour)
	ctx := context.Background()

	t.Run("bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer abc.def.ghi")

		token, err := j.GetTokenFromRequest(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "abc.def.ghi", token)
	})

	t.Run("scheme is case-insensitive", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "bearer abc.def.ghi")

		token, err := j.GetTokenFromRequest(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "abc.def.ghi", token)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := j.GetTokenFromRequest(ctx, req)
		assert.Error(t, err)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		_, err := j.GetTokenFromRequest(ctx, req)
		assert.Error(t, err)
	})
}
