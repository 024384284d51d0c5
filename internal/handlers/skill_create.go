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

// SkillCreator defines the interface that the skill creation service must implement.
type SkillCreator interface {
	Create(ctx context.Context, userID uuid.UUID, name string, description, level *string) (*models.SkillDB, error)
}

// CreateSkillRequest represents the JSON body for adding a skill
// swagger:model CreateSkillRequest
type CreateSkillRequest struct {
	// Name of the skill
	// required: true
	// example: JavaScript
	Name string `json:"name" validate:"required"`

	// Description of the skill
	// example: Expert in JavaScript and TypeScript
	Description *string `json:"description,omitempty"`

	// Proficiency level
	// example: Advanced
	Level *string `json:"level,omitempty"`
}

// NewCreateSkillHandler returns an HTTP handler that adds a skill for the
// current user.
// @Summary Add a new skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createSkillRequest body handlers.CreateSkillRequest true "Skill to add"
// @Success 201 {object} models.SkillDB "Skill added"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /skills [post]
func NewCreateSkillHandler(svc SkillCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req CreateSkillRequest
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

		skill, err := svc.Create(r.Context(), userID, req.Name, req.Description, req.Level)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(skill)
	}
}
