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

// SkillUpdater defines the interface that the skill update service must implement.
type SkillUpdater interface {
	Update(ctx context.Context, userID, skillID uuid.UUID, update models.SkillUpdate) (*models.SkillDB, error)
}

// UpdateSkillRequest represents the JSON body for a partial skill update
// swagger:model UpdateSkillRequest
type UpdateSkillRequest struct {
	// Name of the skill
	// example: TypeScript
	Name *string `json:"name,omitempty" validate:"omitempty,min=1"`

	// Description of the skill
	Description *string `json:"description,omitempty"`

	// Proficiency level
	// example: Intermediate
	Level *string `json:"level,omitempty"`
}

// NewUpdateSkillHandler returns an HTTP handler that updates a skill owned by
// the current user.
// @Summary Update a skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Skill ID"
// @Param updateSkillRequest body handlers.UpdateSkillRequest true "Partial skill update"
// @Success 200 {object} models.SkillDB "Updated skill"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Skill not found"
// @Router /skills/{id} [patch]
func NewUpdateSkillHandler(svc SkillUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		skillID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid skill ID"})
			return
		}

		var req UpdateSkillRequest
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

		skill, err := svc.Update(r.Context(), userID, skillID, models.SkillUpdate{
			Name:        req.Name,
			Description: req.Description,
			Level:       req.Level,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSkillNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Skill not found"})
			case errors.Is(err, services.ErrSkillAccessDenied):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Not authorized"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(skill)
	}
}
