package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mbarnoyev/skill-exchange/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestVerifyOTPHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		reqBody      VerifyOTPRequest
		mockSetup    func(m *MockOTPVerifier)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:    "success",
			reqBody: VerifyOTPRequest{Email: "john@example.com", OTP: "123456"},
			mockSetup: func(m *MockOTPVerifier) {
				m.EXPECT().
					VerifyOTP(gomock.Any(), "john@example.com", "123456").
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"message": "OTP verified"},
		},
		{
			name:    "invalid or expired OTP",
			reqBody: VerifyOTPRequest{Email: "john@example.com", OTP: "999999"},
			mockSetup: func(m *MockOTPVerifier) {
				m.EXPECT().
					VerifyOTP(gomock.Any(), "john@example.com", "999999").
					Return(services.ErrInvalidOrExpiredOTP)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Invalid or expired OTP"},
		},
		{
			name:         "OTP must be six digits",
			reqBody:      VerifyOTPRequest{Email: "john@example.com", OTP: "12"},
			mockSetup:    func(m *MockOTPVerifier) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "OTP must be numeric",
			reqBody:      VerifyOTPRequest{Email: "john@example.com", OTP: "abcdef"},
			mockSetup:    func(m *MockOTPVerifier) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockOTPVerifier(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewVerifyOTPHandler(mockSvc)

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPost, "/verify-otp", bytes.NewBuffer(bodyBytes))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedBody, resp)
			}
		})
	}
}
