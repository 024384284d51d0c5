package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/mbarnoyev/skill-exchange/internal/logger"
	"github.com/mbarnoyev/skill-exchange/internal/middlewares"
	"github.com/mbarnoyev/skill-exchange/internal/models"
)

// SkillLister defines the interface that the skill listing service must implement.
type SkillLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SkillDB, error)
}

// NewListSkillsHandler returns an HTTP handler that lists the current user's
// skills.
// @Summary Get all skills of the logged-in user
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SkillDB "List of skills"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /skills [get]
func NewListSkillsHandler(svc SkillLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		skills, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if skills == nil {
			skills = []models.SkillDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(skills)
	}
}
