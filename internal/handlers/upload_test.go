package handlers

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mbarnoyev/skill-exchange/internal/middlewares"
	"github.com/mbarnoyev/skill-exchange/internal/models"
	"github.com/mbarnoyev/skill-exchange/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartBody builds a multipart form with one file part per filename under
// the given field name.
func multipartBody(t *testing.T, field string, filenames ...string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for i, name := range filenames {
		part, err := writer.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fmt.Fprintf(part, "file-content-%d", i)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadProfilePictureHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	newRequest := func(body *bytes.Buffer, contentType string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/users/me/profile-picture", body)
		req.Header.Set("Content-Type", contentType)
		return req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
	}

	t.Run("stores the picture and returns the profile", func(t *testing.T) {
		mockSvc := NewMockPictureUploader(ctrl)
		url := "https://media.example.com/users/pic.png"
		mockSvc.EXPECT().
			UploadProfilePicture(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, file services.UploadFile) (*models.UserDB, error) {
				assert.Equal(t, "avatar.png", file.Filename)
				return &models.UserDB{UserID: userID, Username: "alice", ProfilePicture: &url}, nil
			})

		handler := NewUploadProfilePictureHandler(mockSvc)

		body, contentType := multipartBody(t, "profile_picture", "avatar.png")
		rr := httptest.NewRecorder()
		handler(rr, newRequest(body, contentType))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), url)
	})

	t.Run("missing file field", func(t *testing.T) {
		handler := NewUploadProfilePictureHandler(NewMockPictureUploader(ctrl))

		body, contentType := multipartBody(t, "wrong_field", "avatar.png")
		rr := httptest.NewRecorder()
		handler(rr, newRequest(body, contentType))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "profile_picture")
	})

	t.Run("non-image file", func(t *testing.T) {
		handler := NewUploadProfilePictureHandler(NewMockPictureUploader(ctrl))

		body, contentType := multipartBody(t, "profile_picture", "resume.pdf")
		rr := httptest.NewRecorder()
		handler(rr, newRequest(body, contentType))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Profile picture must be an image file"}`, rr.Body.String())
	})

	t.Run("deleted user", func(t *testing.T) {
		mockSvc := NewMockPictureUploader(ctrl)
		mockSvc.EXPECT().
			UploadProfilePicture(gomock.Any(), userID, gomock.Any()).
			Return(nil, services.ErrUserDoesNotExist)

		handler := NewUploadProfilePictureHandler(mockSvc)

		body, contentType := multipartBody(t, "profile_picture", "avatar.jpg")
		rr := httptest.NewRecorder()
		handler(rr, newRequest(body, contentType))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		handler := NewUploadProfilePictureHandler(NewMockPictureUploader(ctrl))

		body, contentType := multipartBody(t, "profile_picture", "avatar.png")
		req := httptest.NewRequest(http.MethodPost, "/users/me/profile-picture", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUploadCertificatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	newRequest := func(body *bytes.Buffer, contentType string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/users/me/certificates", body)
		req.Header.Set("Content-Type", contentType)
		return req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
	}

	t.Run("uploads certificates in order", func(t *testing.T) {
		mockSvc := NewMockCertificateUploader(ctrl)
		mockSvc.EXPECT().
			UploadCertificates(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, files []services.UploadFile) (*models.UserDB, error) {
				require.Len(t, files, 2)
				assert.Equal(t, "cert-1.pdf", files[0].Filename)
				assert.Equal(t, "cert-2.jpg", files[1].Filename)
				return &models.UserDB{
					UserID:       userID,
					Username:     "alice",
					Certificates: []string{"url-1", "url-2"},
				}, nil
			})

		handler := NewUploadCertificatesHandler(mockSvc)

		body, contentType := multipartBody(t, "certificates", "cert-1.pdf", "cert-2.jpg")
		rr := httptest.NewRecorder()
		handler(rr, newRequest(body, contentType))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "url-1")
		assert.Contains(t, rr.Body.String(), "url-2")
	})

	t.Run("no files", func(t *testing.T) {
		handler := NewUploadCertificatesHandler(NewMockCertificateUploader(ctrl))

		body, contentType := multipartBody(t, "certificates")
		rr := httptest.NewRecorder()
		handler(rr, newRequest(body, contentType))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"No files provided"}`, rr.Body.String())
	})

	t.Run("too many files", func(t *testing.T) {
		handler := NewUploadCertificatesHandler(NewMockCertificateUploader(ctrl))

		names := make([]string, 11)
		for i := range names {
			names[i] = fmt.Sprintf("cert-%d.pdf", i)
		}
		body, contentType := multipartBody(t, "certificates", names...)
		rr := httptest.NewRecorder()
		handler(rr, newRequest(body, contentType))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"At most 10 certificates can be uploaded at once"}`, rr.Body.String())
	})

	t.Run("unsupported file type", func(t *testing.T) {
		handler := NewUploadCertificatesHandler(NewMockCertificateUploader(ctrl))

		body, contentType := multipartBody(t, "certificates", "cert.docx")
		rr := httptest.NewRecorder()
		handler(rr, newRequest(body, contentType))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Certificates must be PDF, JPG, JPEG, or PNG"}`, rr.Body.String())
	})
}
