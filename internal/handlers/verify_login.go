package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mbarnoyev/skill-exchange/internal/logger"
	"github.com/mbarnoyev/skill-exchange/internal/services"
)

// LoginVerifier defines the interface that the login verification service must implement.
type LoginVerifier interface {
	VerifyLogin(ctx context.Context, email, code string) (string, error)
}

// VerifyLoginRequest represents the JSON body for the second login factor
// swagger:model VerifyLoginRequest
type VerifyLoginRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email"`

	// 6-digit one-time passcode
	// required: true
	// example: 123456
	OTP string `json:"otp" validate:"required,len=6,numeric"`
}

// VerifyLoginResponse represents a successful login verification response
// swagger:model VerifyLoginResponse
type VerifyLoginResponse struct {
	// JWT token
	// example: JWT_TOKEN
	Token string `json:"token"`
}

// NewVerifyLoginHandler returns an HTTP handler for the second login factor.
// @Summary Verify login OTP and issue a session token
// @Description Consumes the code and returns a signed JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param verifyLoginRequest body handlers.VerifyLoginRequest true "Login verification request"
// @Success 200 {object} handlers.VerifyLoginResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired OTP"
// @Router /verify-login [post]
func NewVerifyLoginHandler(svc LoginVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyLoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}
		if err := validate.Struct(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			return
		}

		token, err := svc.VerifyLogin(r.Context(), req.Email, req.OTP)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidOrExpiredOTP):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid or expired OTP"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VerifyLoginResponse{Token: token})
	}
}
