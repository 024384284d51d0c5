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
	"github.com/mbarnoyev/skill-exchange/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		reqBody      RegisterRequest
		rawBody      string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		checkBody    func(t *testing.T, body []byte)
	}{
		{
			name: "success",
			reqBody: RegisterRequest{
				Email:    "john@example.com",
				Username: "john_doe",
				Password: "secret123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "john_doe", "secret123").
					Return(userID, nil)
			},
			expectedCode: http.StatusCreated,
			checkBody: func(t *testing.T, body []byte) {
				var resp RegisterResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "User registered. Verify OTP sent to email.", resp.Message)
				assert.Equal(t, userID, resp.UserID)
			},
		},
		{
			name: "user already exists",
			reqBody: RegisterRequest{
				Email:    "alice@example.com",
				Username: "alice",
				Password: "secret123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice@example.com", "alice", "secret123").
					Return(uuid.Nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			checkBody: func(t *testing.T, body []byte) {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "Email or username already exists", resp.Error)
			},
		},
		{
			name: "internal server error",
			reqBody: RegisterRequest{
				Email:    "bob@example.com",
				Username: "bobby",
				Password: "secret123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob@example.com", "bobby", "secret123").
					Return(uuid.Nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body []byte) {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "Internal server error", resp.Error)
			},
		},
		{
			name:         "invalid json",
			rawBody:      "{invalid json}",
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "invalid email",
			reqBody: RegisterRequest{
				Email:    "not-an-email",
				Username: "eve",
				Password: "secret123",
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "password too short",
			reqBody: RegisterRequest{
				Email:    "eve@example.com",
				Username: "eve",
				Password: "123",
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}
