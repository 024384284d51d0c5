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
	"github.com/mbarnoyev/skill-exchange/internal/services"
)

// SkillDeleter defines the interface that the skill deletion service must implement.
type SkillDeleter interface {
	Delete(ctx context.Context, userID, skillID uuid.UUID) error
}

// NewDeleteSkillHandler returns an HTTP handler that deletes a skill owned by
// the current user.
// @Summary Delete a skill
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param id path string true "Skill ID"
// @Success 200 {object} handlers.MessageResponse "Skill deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid skill ID"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Skill not found"
// @Router /skills/{id} [delete]
func NewDeleteSkillHandler(svc SkillDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), userID, skillID); err != nil {
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
		json.NewEncoder(w).Encode(MessageResponse{Message: "Skill deleted"})
	}
}
