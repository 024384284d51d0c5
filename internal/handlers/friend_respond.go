package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mbarnoyev/skill-exchange/internal/logger"
	"github.com/mbarnoyev/skill-exchange/internal/middlewares"
	"github.com/mbarnoyev/skill-exchange/internal/models"
	"github.com/mbarnoyev/skill-exchange/internal/services"
)

// FriendRequestResponder defines the interface that the friend request
// service must implement for responding to requests.
type FriendRequestResponder interface {
	RespondToRequest(ctx context.Context, userID, requestID uuid.UUID, action string) (*models.FriendRequestDB, error)
}

// RespondToFriendRequestRequest represents the JSON body for responding to a
// friend request
// swagger:model RespondToFriendRequestRequest
type RespondToFriendRequestRequest struct {
	// Action to take on the request
	// example: accept
	Action string `json:"action" validate:"required,oneof=accept reject"`
}

// NewRespondToFriendRequestHandler returns an HTTP handler that accepts,
// rejects, or cancels a pending friend request.
// @Summary Respond to a friend request
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param requestId path string true "Friend request ID"
// @Param respondRequest body handlers.RespondToFriendRequestRequest true "Response action"
// @Success 200 {object} handlers.MessageResponse "Request processed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Request not found or not actionable"
// @Router /friends/respond/{requestId} [post]
func NewRespondToFriendRequestHandler(svc FriendRequestResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		requestID, err := uuid.Parse(chi.URLParam(r, "requestId"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request ID"})
			return
		}

		var req RespondToFriendRequestRequest
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

		request, err := svc.RespondToRequest(r.Context(), userID, requestID, req.Action)
		if err != nil {
			var statusErr *services.RequestStatusError
			switch {
			case errors.As(err, &statusErr):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: statusErr.Error()})
			case errors.Is(err, services.ErrSenderCannotAccept):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "You are the sender of this friend request"})
			case errors.Is(err, services.ErrFriendRequestNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Friend request not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: fmt.Sprintf("Friend request %s successfully", request.Status)})
	}
}
