package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mbarnoyev/skill-exchange/internal/logger"
	"github.com/mbarnoyev/skill-exchange/internal/models"
)

// Error variables
var (
	ErrSkillNotFound     = errors.New("skill not found")
	ErrSkillAccessDenied = errors.New("not authorized to modify this skill")
)

// SkillReader defines skill read operations.
type SkillReader interface {
	GetByID(ctx context.Context, skillID uuid.UUID) (*models.SkillDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SkillDB, error)
}

// SkillWriter defines skill write operations.
type SkillWriter interface {
	Save(ctx context.Context, userID uuid.UUID, name string, description, level *string) (*models.SkillDB, error)
	Update(ctx context.Context, skillID uuid.UUID, update models.SkillUpdate) (*models.SkillDB, error)
	Delete(ctx context.Context, skillID uuid.UUID) error
}

// SkillService handles owner-scoped skill CRUD. Ownership is checked on every
// mutation.
type SkillService struct {
	reader SkillReader
	writer SkillWriter
}

// NewSkillService creates a new SkillService instance.
func NewSkillService(reader SkillReader, writer SkillWriter) *SkillService {
	return &SkillService{
		reader: reader,
		writer: writer,
	}
}

// Create adds a skill owned by the user.
func (svc *SkillService) Create(ctx context.Context, userID uuid.UUID, name string, description, level *string) (*models.SkillDB, error) {
	skill, err := svc.writer.Save(ctx, userID, name, description, level)
	if err != nil {
		logger.Log.Errorw("failed to save skill", "userID", userID, "err", err)
		return nil, err
	}
	return skill, nil
}

// ListByUser returns all skills owned by the user.
func (svc *SkillService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SkillDB, error) {
	skills, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list skills", "userID", userID, "err", err)
		return nil, err
	}
	return skills, nil
}

// Update applies a partial update after checking ownership.
func (svc *SkillService) Update(ctx context.Context, userID, skillID uuid.UUID, update models.SkillUpdate) (*models.SkillDB, error) {
	skill, err := svc.reader.GetByID(ctx, skillID)
	if err != nil {
		logger.Log.Errorw("failed to get skill", "skillID", skillID, "err", err)
		return nil, err
	}
	if skill == nil {
		return nil, ErrSkillNotFound
	}
	if skill.UserID != userID {
		return nil, ErrSkillAccessDenied
	}

	updated, err := svc.writer.Update(ctx, skillID, update)
	if err != nil {
		logger.Log.Errorw("failed to update skill", "skillID", skillID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrSkillNotFound
	}
	return updated, nil
}

// Delete removes a skill after checking ownership.
func (svc *SkillService) Delete(ctx context.Context, userID, skillID uuid.UUID) error {
	skill, err := svc.reader.GetByID(ctx, skillID)
	if err != nil {
		logger.Log.Errorw("failed to get skill", "skillID", skillID, "err", err)
		return err
	}
	if skill == nil {
		return ErrSkillNotFound
	}
	if skill.UserID != userID {
		return ErrSkillAccessDenied
	}

	if err := svc.writer.Delete(ctx, skillID); err != nil {
		logger.Log.Errorw("failed to delete skill", "skillID", skillID, "err", err)
		return err
	}
	return nil
}
