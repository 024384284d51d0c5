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

const maxCertificateFiles = 10

// certificateExtensions lists the file extensions accepted as certificates.
var certificateExtensions = map[string]bool{
	".pdf": true, ".jpg": true, ".jpeg": true, ".png": true,
}

// CertificateUploader defines the interface that the certificate upload service must implement.
type CertificateUploader interface {
	UploadCertificates(ctx context.Context, userID uuid.UUID, files []services.UploadFile) (*models.UserDB, error)
}

// NewUploadCertificatesHandler returns an HTTP handler for certificate
// uploads. Up to 10 PDF/JPG/JPEG/PNG files are stored and their URLs appended
// to the profile in order.
// @Summary Upload certificates for the current user
// @Tags users
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param certificates formData file true "Certificate files (up to 10)"
// @Success 200 {object} models.UserDB "Updated user profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid file types or no files provided"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found or deleted"
// @Router /users/me/certificates [post]
func NewUploadCertificatesHandler(svc CertificateUploader) http.HandlerFunc {
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

		if r.MultipartForm == nil || len(r.MultipartForm.File["certificates"]) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "No files provided"})
			return
		}

		headers := r.MultipartForm.File["certificates"]
		if len(headers) > maxCertificateFiles {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "At most 10 certificates can be uploaded at once"})
			return
		}

		files := make([]services.UploadFile, 0, len(headers))
		for _, header := range headers {
			ext := strings.ToLower(filepath.Ext(header.Filename))
			if !certificateExtensions[ext] {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Certificates must be PDF, JPG, JPEG, or PNG"})
				return
			}

			file, err := header.Open()
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "failed to read uploaded file"})
				return
			}
			defer file.Close()

			files = append(files, services.UploadFile{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Body:        file,
			})
		}

		user, err := svc.UploadCertificates(r.Context(), userID, files)
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
