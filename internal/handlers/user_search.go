package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mbarnoyev/skill-exchange/internal/logger"
	"github.com/mbarnoyev/skill-exchange/internal/models"
)

// UserSearcher defines the interface that the user search service must implement.
type UserSearcher interface {
	Search(ctx context.Context, filter models.UserSearchFilter) ([]models.UserDB, error)
}

// NewSearchUsersHandler returns an HTTP handler for the public user search.
// Supplied filters are ANDed; each matches as a case-insensitive substring.
// @Summary Search users by skill, username, name, or education
// @Tags users
// @Produce json
// @Param skill query string false "Skill to search"
// @Param username query string false "Username to search"
// @Param name query string false "Name to search"
// @Param education query string false "Education to search"
// @Success 200 {array} models.UserDB "List of matching users"
// @Router /users/search [get]
func NewSearchUsersHandler(svc UserSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter models.UserSearchFilter
		q := r.URL.Query()
		if v := q.Get("skill"); v != "" {
			filter.Skill = &v
		}
		if v := q.Get("username"); v != "" {
			filter.Username = &v
		}
		if v := q.Get("name"); v != "" {
			filter.Name = &v
		}
		if v := q.Get("education"); v != "" {
			filter.Education = &v
		}

		users, err := svc.Search(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if users == nil {
			users = []models.UserDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}
