package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mbarnoyev/skill-exchange/internal/logger"
	"github.com/mbarnoyev/skill-exchange/internal/services"
)

// OTPVerifier defines the interface that the OTP verification service must implement.
type OTPVerifier interface {
	VerifyOTP(ctx context.Context, email, code string) error
}

// VerifyOTPRequest represents the JSON body for OTP verification
// swagger:model VerifyOTPRequest
type VerifyOTPRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email"`

	// 6-digit one-time passcode
	// required: true
	// example: 123456
	OTP string `json:"otp" validate:"required,len=6,numeric"`
}

// NewVerifyOTPHandler returns an HTTP handler that verifies a registration OTP
// and marks the account verified.
// @Summary Verify a one-time passcode
// @Description Consumes the code and marks the account as verified
// @Tags auth
// @Accept json
// @Produce json
// @Param verifyOtpRequest body handlers.VerifyOTPRequest true "OTP verification request"
// @Success 200 {object} handlers.MessageResponse "OTP verified"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired OTP"
// @Router /verify-otp [post]
func NewVerifyOTPHandler(svc OTPVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyOTPRequest

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

		if err := svc.VerifyOTP(r.Context(), req.Email, req.OTP); err != nil {
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
		json.NewEncoder(w).Encode(MessageResponse{Message: "OTP verified"})
	}
}
