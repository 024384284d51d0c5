package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mbarnoyev/skill-exchange/internal/logger"
	"github.com/mbarnoyev/skill-exchange/internal/middlewares"
	"github.com/mbarnoyev/skill-exchange/internal/models"
	"github.com/mbarnoyev/skill-exchange/internal/services"
)

// FriendLister defines the interface that the friend listing service must implement.
type FriendLister interface {
	GetFriendsAndRequests(ctx context.Context, userID uuid.UUID) ([]models.UserSummaryDB, []models.FriendRequestDB, error)
}

// FriendListResponse carries the resolved friends and the incoming pending
// requests of the current user
// swagger:model FriendListResponse
type FriendListResponse struct {
	Friends         []models.UserSummaryDB   `json:"friends"`
	PendingRequests []models.FriendRequestDB `json:"pending_requests"`
}

// NewListFriendsHandler returns an HTTP handler that lists the current user's
// friends together with the pending friend requests addressed to them.
// @Summary Get friends and pending friend requests
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.FriendListResponse "Friends and pending requests"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /friends [get]
func NewListFriendsHandler(svc FriendLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		friends, pending, err := svc.GetFriendsAndRequests(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User does not exist"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		if friends == nil {
			friends = []models.UserSummaryDB{}
		}
		if pending == nil {
			pending = []models.FriendRequestDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FriendListResponse{Friends: friends, PendingRequests: pending})
	}
}
