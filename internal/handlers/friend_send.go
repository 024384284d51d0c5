package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mbarnoyev/skill-exchange/internal/logger"
	"github.com/mbarnoyev/skill-exchange/internal/middlewares"
	"github.com/mbarnoyev/skill-exchange/internal/models"
	"github.com/mbarnoyev/skill-exchange/internal/services"
)

// FriendRequestSender defines the interface that the friend request service
// must implement for sending requests.
type FriendRequestSender interface {
	SendRequest(ctx context.Context, senderID, receiverID uuid.UUID) (*models.FriendRequestDB, error)
}

// NewSendFriendRequestHandler returns an HTTP handler that sends a friend
// request from the current user to another user.
// @Summary Send a friend request
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Receiver user ID"
// @Success 201 {object} models.FriendRequestDB "Created friend request"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Receiver not found"
// @Failure 409 {object} handlers.ErrorResponse "Request already sent"
// @Router /friends/request/{userId} [post]
func NewSendFriendRequestHandler(svc FriendRequestSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		senderID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		receiverID, err := uuid.Parse(chi.URLParam(r, "userId"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid user ID"})
			return
		}

		request, err := svc.SendRequest(r.Context(), senderID, receiverID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSelfFriendRequest):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "You cannot send a friend request to yourself"})
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User does not exist"})
			case errors.Is(err, services.ErrReceiverNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Receiver not found"})
			case errors.Is(err, services.ErrFriendRequestAlreadySent):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Friend request already sent"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(request)
	}
}
