package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mbarnoyev/skill-exchange/internal/middlewares"
	"github.com/mbarnoyev/skill-exchange/internal/models"
	"github.com/mbarnoyev/skill-exchange/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUpdateMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	newRequest := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPatch, "/users/me", bytes.NewBufferString(body))
		return req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
	}

	t.Run("updates the supplied fields only", func(t *testing.T) {
		mockSvc := NewMockProfileUpdater(ctrl)
		name := "John Doe"
		age := 25
		mockSvc.EXPECT().
			Update(gomock.Any(), userID, models.UserUpdate{Name: &name, Age: &age}).
			Return(&models.UserDB{UserID: userID, Username: "john", Name: &name, Age: &age}, nil)

		handler := NewUpdateMeHandler(mockSvc)

		rr := httptest.NewRecorder()
		handler(rr, newRequest(`{"name":"John Doe","age":25}`))

		assert.Equal(t, http.StatusOK, rr.Code)

		var user models.UserDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
		assert.Equal(t, "John Doe", *user.Name)
		assert.Equal(t, 25, *user.Age)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		mockSvc := NewMockProfileUpdater(ctrl)
		handler := NewUpdateMeHandler(mockSvc)

		req := httptest.NewRequest(http.MethodPatch, "/users/me", bytes.NewBufferString(`{}`))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		mockSvc := NewMockProfileUpdater(ctrl)
		handler := NewUpdateMeHandler(mockSvc)

		rr := httptest.NewRecorder()
		handler(rr, newRequest(`{bad`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects an out-of-range age", func(t *testing.T) {
		mockSvc := NewMockProfileUpdater(ctrl)
		handler := NewUpdateMeHandler(mockSvc)

		rr := httptest.NewRecorder()
		handler(rr, newRequest(`{"age":200}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("deleted user", func(t *testing.T) {
		mockSvc := NewMockProfileUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), userID, gomock.Any()).
			Return(nil, services.ErrUserDoesNotExist)

		handler := NewUpdateMeHandler(mockSvc)

		rr := httptest.NewRecorder()
		handler(rr, newRequest(`{"bio":"hello"}`))

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "User not found or deleted", resp.Error)
	})

	t.Run("repository failure", func(t *testing.T) {
		mockSvc := NewMockProfileUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), userID, gomock.Any()).
			Return(nil, errors.New("db down"))

		handler := NewUpdateMeHandler(mockSvc)

		rr := httptest.NewRecorder()
		handler(rr, newRequest(`{"bio":"hello"}`))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
