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

// ProfileUpdater defines the interface that the profile update service must implement.
type ProfileUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, update models.UserUpdate) (*models.UserDB, error)
}

// UpdateMeRequest represents the JSON body for a partial profile update.
// Omitted fields are left unchanged.
// swagger:model UpdateMeRequest
type UpdateMeRequest struct {
	// Display name
	// example: John Doe
	Name *string `json:"name,omitempty" validate:"omitempty,min=2"`

	// Education
	// example: Computer Science
	Education *string `json:"education,omitempty"`

	// Bio
	Bio *string `json:"bio,omitempty"`

	// Age
	// example: 25
	Age *int `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`

	// Location
	// example: Tashkent
	Location *string `json:"location,omitempty"`
}

// NewUpdateMeHandler returns an HTTP handler for partial profile updates.
// @Summary Update current user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateMeRequest body handlers.UpdateMeRequest true "Partial profile update"
// @Success 200 {object} models.UserDB "Updated user profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found or deleted"
// @Router /users/me [patch]
func NewUpdateMeHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req UpdateMeRequest
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

		user, err := svc.Update(r.Context(), userID, models.UserUpdate{
			Name:      req.Name,
			Education: req.Education,
			Bio:       req.Bio,
			Age:       req.Age,
			Location:  req.Location,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found or deleted"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
