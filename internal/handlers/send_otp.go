package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mbarnoyev/skill-exchange/internal/logger"
	"github.com/mbarnoyev/skill-exchange/internal/services"
)

// OTPSender defines the interface that the OTP issuing service must implement.
type OTPSender interface {
	SendOTP(ctx context.Context, email string) error
}

// SendOTPRequest represents the JSON body for OTP issuance
// swagger:model SendOTPRequest
type SendOTPRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email"`
}

// NewSendOTPHandler returns an HTTP handler that issues a fresh OTP.
// @Summary Send a one-time passcode
// @Description Generates a 6-digit code valid for 10 minutes and emails it
// @Tags auth
// @Accept json
// @Produce json
// @Param sendOtpRequest body handlers.SendOTPRequest true "OTP request"
// @Success 200 {object} handlers.MessageResponse "OTP sent to email"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /send-otp [post]
func NewSendOTPHandler(svc OTPSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SendOTPRequest

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

		if err := svc.SendOTP(r.Context(), req.Email); err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "OTP sent to email"})
	}
}
