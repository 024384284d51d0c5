package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mbarnoyev/skill-exchange/internal/logger"
	"github.com/mbarnoyev/skill-exchange/internal/models"
)

// SkillReadRepository handles skill read operations
type SkillReadRepository struct {
	db *sqlx.DB
}

func NewSkillReadRepository(db *sqlx.DB) *SkillReadRepository {
	return &SkillReadRepository{db: db}
}

// GetByID returns a skill by ID, or nil if none exists.
func (r *SkillReadRepository) GetByID(ctx context.Context, skillID uuid.UUID) (*models.SkillDB, error) {
	const query = `
		SELECT skill_id, user_id, name, description, level, created_at, updated_at
		FROM skills
		WHERE skill_id = $1
	`

	var skill models.SkillDB
	err := r.db.GetContext(ctx, &skill, query, skillID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{skillID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &skill, nil
}

// ListByUser returns all skills owned by the user.
func (r *SkillReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SkillDB, error) {
	const query = `
		SELECT skill_id, user_id, name, description, level, created_at, updated_at
		FROM skills
		WHERE user_id = $1
		ORDER BY created_at
	`

	var skills []models.SkillDB
	err := r.db.SelectContext(ctx, &skills, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(skills),
		"error", err,
	)

	return skills, err
}

// SkillWriteRepository handles skill write operations
type SkillWriteRepository struct {
	db *sqlx.DB
}

func NewSkillWriteRepository(db *sqlx.DB) *SkillWriteRepository {
	return &SkillWriteRepository{db: db}
}

// Save inserts a new skill and returns the created row.
func (r *SkillWriteRepository) Save(ctx context.Context, userID uuid.UUID, name string, description, level *string) (*models.SkillDB, error) {
	const query = `
		INSERT INTO skills (user_id, name, description, level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING skill_id, user_id, name, description, level, created_at, updated_at
	`
	args := []any{userID, name, description, level}

	var skill models.SkillDB
	err := r.db.GetContext(ctx, &skill, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, name},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &skill, nil
}

// Update applies a partial update and returns the updated row.
func (r *SkillWriteRepository) Update(ctx context.Context, skillID uuid.UUID, update models.SkillUpdate) (*models.SkillDB, error) {
	const query = `
		UPDATE skills
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    level = COALESCE($4, level),
		    updated_at = NOW()
		WHERE skill_id = $1
		RETURNING skill_id, user_id, name, description, level, created_at, updated_at
	`
	args := []any{skillID, update.Name, update.Description, update.Level}

	var skill models.SkillDB
	err := r.db.GetContext(ctx, &skill, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &skill, nil
}

// Delete removes a skill.
func (r *SkillWriteRepository) Delete(ctx context.Context, skillID uuid.UUID) error {
	const query = `
		DELETE FROM skills WHERE skill_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, skillID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{skillID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
