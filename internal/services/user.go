package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/mbarnoyev/skill-exchange/internal/logger"
	"github.com/mbarnoyev/skill-exchange/internal/models"
)

// ProfileReader defines the user directory read operations.
type ProfileReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	Search(ctx context.Context, filter models.UserSearchFilter) ([]models.UserDB, error)
}

// ProfileWriter defines the user directory write operations.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, update models.UserUpdate) (*models.UserDB, error)
	SetProfilePicture(ctx context.Context, userID uuid.UUID, url string) error
	AddCertificates(ctx context.Context, userID uuid.UUID, urls []string) error
}

// MediaUploader stores media files and returns their public URLs.
type MediaUploader interface {
	Upload(ctx context.Context, objectKey, contentType string, body io.Reader) (string, error)
}

// UploadFile describes one multipart file to be stored.
type UploadFile struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// UserService handles profile reads, partial updates, search, and media
// attachment.
type UserService struct {
	reader   ProfileReader
	writer   ProfileWriter
	uploader MediaUploader
}

// NewUserService creates a new UserService instance.
func NewUserService(reader ProfileReader, writer ProfileWriter, uploader MediaUploader) *UserService {
	return &UserService{
		reader:   reader,
		writer:   writer,
		uploader: uploader,
	}
}

// GetByID returns a user profile; soft-deleted users are treated as absent.
func (svc *UserService) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}

// Update applies a partial profile update.
func (svc *UserService) Update(ctx context.Context, userID uuid.UUID, update models.UserUpdate) (*models.UserDB, error) {
	user, err := svc.writer.UpdateProfile(ctx, userID, update)
	if err != nil {
		logger.Log.Errorw("failed to update user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}

// Search returns users matching the supplied filters.
func (svc *UserService) Search(ctx context.Context, filter models.UserSearchFilter) ([]models.UserDB, error) {
	users, err := svc.reader.Search(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to search users", "err", err)
		return nil, err
	}
	return users, nil
}

// UploadProfilePicture stores the image and persists its URL on the profile.
func (svc *UserService) UploadProfilePicture(ctx context.Context, userID uuid.UUID, file UploadFile) (*models.UserDB, error) {
	user, err := svc.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("users/%s/profile/%s%s", userID, uuid.New(), path.Ext(file.Filename))
	url, err := svc.uploader.Upload(ctx, key, file.ContentType, file.Body)
	if err != nil {
		logger.Log.Errorw("failed to upload profile picture", "userID", userID, "err", err)
		return nil, err
	}

	if err := svc.writer.SetProfilePicture(ctx, userID, url); err != nil {
		logger.Log.Errorw("failed to persist profile picture", "userID", userID, "err", err)
		return nil, err
	}

	user.ProfilePicture = &url
	return user, nil
}

// UploadCertificates stores the files and appends their URLs to the profile,
// preserving upload order.
func (svc *UserService) UploadCertificates(ctx context.Context, userID uuid.UUID, files []UploadFile) (*models.UserDB, error) {
	user, err := svc.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		key := fmt.Sprintf("users/%s/certificates/%s%s", userID, uuid.New(), path.Ext(file.Filename))
		url, err := svc.uploader.Upload(ctx, key, file.ContentType, file.Body)
		if err != nil {
			logger.Log.Errorw("failed to upload certificate", "userID", userID, "err", err)
			return nil, err
		}
		urls = append(urls, url)
	}

	if err := svc.writer.AddCertificates(ctx, userID, urls); err != nil {
		logger.Log.Errorw("failed to persist certificates", "userID", userID, "err", err)
		return nil, err
	}

	user.Certificates = append(user.Certificates, urls...)
	return user, nil
}
