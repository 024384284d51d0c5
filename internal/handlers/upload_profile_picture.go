package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mbarnoyev/skill-exchange/internal/logger"
	"github.com/mbarnoyev/skill-exchange/internal/middlewares"
	"github.com/mbarnoyev/skill-exchange/internal/models"
	"github.com/mbarnoyev/skill-exchange/internal/services"
)

const maxUploadMemory = 32 << 20 // 32 MiB

// imageExtensions lists the file extensions accepted as profile pictures.
var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".bmp": true,
	".webp": true, ".tiff": true, ".svg": true, ".ico": true, ".heif": true,
	".heic": true,
}

// PictureUploader defines the interface that the picture upload service must implement.
type PictureUploader interface {
	UploadProfilePicture(ctx context.Context, userID uuid.UUID, file services.UploadFile) (*models.UserDB, error)
}

// NewUploadProfilePictureHandler returns an HTTP handler for profile picture
// uploads. The file is stored in the media store and its URL persisted on the
// profile.
// @Summary Upload profile picture for the current user
// @Tags users
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param profile_picture formData file true "Image file"
// @Success 200 {object} models.UserDB "Updated user profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid file type or no file provided"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found or deleted"
// @Router /users/me/profile-picture [post]
func NewUploadProfilePictureHandler(svc PictureUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid multipart form"})
			return
		}

		file, header, err := r.FormFile("profile_picture")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: `No file provided. Ensure the file is sent with the field name "profile_picture".`})
			return
		}
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !imageExtensions[ext] {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Profile picture must be an image file"})
			return
		}

		user, err := svc.UploadProfilePicture(r.Context(), userID, services.UploadFile{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
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
