package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mbarnoyev/skill-exchange/internal/models"
	"github.com/mbarnoyev/skill-exchange/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newRouter := func(svc ProfileGetter) *chi.Mux {
		r := chi.NewRouter()
		r.Get("/users/{id}", NewGetUserHandler(svc))
		return r
	}

	t.Run("returns the public profile", func(t *testing.T) {
		mockSvc := NewMockProfileGetter(ctrl)
		userID := uuid.New()
		mockSvc.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Username: "bob"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String(), nil)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var user models.UserDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, "bob", user.Username)
	})

	t.Run("malformed id", func(t *testing.T) {
		mockSvc := NewMockProfileGetter(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/users/not-a-uuid", nil)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid user ID", resp.Error)
	})

	t.Run("unknown or deleted user", func(t *testing.T) {
		mockSvc := NewMockProfileGetter(ctrl)
		mockSvc.EXPECT().
			GetByID(gomock.Any(), gomock.Any()).
			Return(nil, services.ErrUserDoesNotExist)

		req := httptest.NewRequest(http.MethodGet, "/users/"+uuid.NewString(), nil)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "User not found or deleted", resp.Error)
	})

	t.Run("repository failure", func(t *testing.T) {
		mockSvc := NewMockProfileGetter(ctrl)
		mockSvc.EXPECT().
			GetByID(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/users/"+uuid.NewString(), nil)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
