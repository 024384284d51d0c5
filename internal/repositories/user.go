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

// UserReadRepository handles user read operations. Every query filters out
// soft-deleted rows.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmailOrUsername returns a non-deleted user matching any of the supplied
// identifiers, or nil if none matches. Used for registration conflict checks.
func (r *UserReadRepository) GetByEmailOrUsername(ctx context.Context, email, username *string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, email, username, password_hash, name, education, bio, age, location,
		       profile_picture, is_verified, is_deleted, created_at, updated_at
		FROM users
		WHERE is_deleted = FALSE
		  AND (($1::VARCHAR IS NOT NULL AND email = $1)
		    OR ($2::VARCHAR IS NOT NULL AND username = $2))
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByEmail returns a non-deleted user by email, including the password hash,
// or nil if none matches.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return r.GetByEmailOrUsername(ctx, &email, nil)
}

// GetByID returns a non-deleted user by ID with certificates resolved, or nil
// if the user is absent or soft-deleted.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, email, username, password_hash, name, education, bio, age, location,
		       profile_picture, is_verified, is_deleted, created_at, updated_at
		FROM users
		WHERE user_id = $1 AND is_deleted = FALSE
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	const certQuery = `
		SELECT url FROM user_certificates WHERE user_id = $1 ORDER BY id
	`
	if err := r.db.SelectContext(ctx, &user.Certificates, certQuery, userID); err != nil {
		return nil, err
	}

	return &user, nil
}

// Search returns non-deleted users matching all supplied filters as
// case-insensitive substrings. The skill filter probes the user's skill
// records.
func (r *UserReadRepository) Search(ctx context.Context, filter models.UserSearchFilter) ([]models.UserDB, error) {
	const query = `
		SELECT u.user_id, u.email, u.username, u.name, u.education, u.bio, u.age, u.location,
		       u.profile_picture, u.is_verified, u.is_deleted, u.created_at, u.updated_at
		FROM users u
		WHERE u.is_deleted = FALSE
		  AND ($1::VARCHAR IS NULL OR u.username ILIKE '%' || $1 || '%')
		  AND ($2::VARCHAR IS NULL OR u.name ILIKE '%' || $2 || '%')
		  AND ($3::VARCHAR IS NULL OR u.education ILIKE '%' || $3 || '%')
		  AND ($4::VARCHAR IS NULL OR EXISTS (
		        SELECT 1 FROM skills s
		        WHERE s.user_id = u.user_id AND s.name ILIKE '%' || $4 || '%'))
		ORDER BY u.created_at
	`
	args := []any{filter.Username, filter.Name, filter.Education, filter.Skill}

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(users),
		"error", err,
	)

	return users, err
}

// ListFriendIDs returns the IDs in the user's friend list.
func (r *UserReadRepository) ListFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT friend_id FROM friendships WHERE user_id = $1 ORDER BY created_at
	`

	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(ids),
		"error", err,
	)

	return ids, err
}

// FindManyByIDs returns summary projections for the given IDs, excluding
// soft-deleted users.
func (r *UserReadRepository) FindManyByIDs(ctx context.Context, ids []uuid.UUID) ([]models.UserSummaryDB, error) {
	if len(ids) == 0 {
		return []models.UserSummaryDB{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT user_id, username, name, profile_picture
		FROM users
		WHERE user_id IN (?) AND is_deleted = FALSE
	`, ids)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var users []models.UserSummaryDB
	err = r.db.SelectContext(ctx, &users, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(users),
		"error", err,
	)

	return users, err
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new unverified user and returns its generated ID.
func (r *UserWriteRepository) Save(ctx context.Context, email, username, passwordHash string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (email, username, password_hash, is_verified, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, FALSE, FALSE, NOW(), NOW())
		RETURNING user_id
	`
	args := []any{email, username, passwordHash}

	var userID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &userID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, username},
		"result", userID,
		"error", err,
	)

	return userID, err
}

// UpdateProfile applies a partial profile update and returns the updated row.
// Returns nil if the user is absent or soft-deleted.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, update models.UserUpdate) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET name = COALESCE($2, name),
		    education = COALESCE($3, education),
		    bio = COALESCE($4, bio),
		    age = COALESCE($5, age),
		    location = COALESCE($6, location),
		    updated_at = NOW()
		WHERE user_id = $1 AND is_deleted = FALSE
		RETURNING user_id, email, username, password_hash, name, education, bio, age, location,
		          profile_picture, is_verified, is_deleted, created_at, updated_at
	`
	args := []any{userID, update.Name, update.Education, update.Bio, update.Age, update.Location}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

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

	return &user, nil
}

// SetVerified marks the account as having completed OTP verification.
func (r *UserWriteRepository) SetVerified(ctx context.Context, email string) error {
	const query = `
		UPDATE users SET is_verified = TRUE, updated_at = NOW()
		WHERE email = $1 AND is_deleted = FALSE
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, email)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// SetProfilePicture persists the uploaded profile picture URL.
func (r *UserWriteRepository) SetProfilePicture(ctx context.Context, userID uuid.UUID, url string) error {
	const query = `
		UPDATE users SET profile_picture = $2, updated_at = NOW()
		WHERE user_id = $1 AND is_deleted = FALSE
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID, url)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, url},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// AddCertificates appends uploaded certificate URLs in order.
func (r *UserWriteRepository) AddCertificates(ctx context.Context, userID uuid.UUID, urls []string) error {
	const query = `
		INSERT INTO user_certificates (user_id, url, created_at)
		VALUES ($1, $2, NOW())
	`

	executor := r.executor(ctx)
	for _, url := range urls {
		if _, err := executor.ExecContext(ctx, query, userID, url); err != nil {
			logger.Log.Infow(
				"query", strings.Join(strings.Fields(query), " "),
				"args", []any{userID, url},
				"error", err,
			)
			return err
		}
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(urls),
		"error", nil,
	)

	return nil
}

// AddFriend appends friendID to userID's friend list. A duplicate add is a
// no-op.
func (r *UserWriteRepository) AddFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	const query = `
		INSERT INTO friendships (user_id, friend_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, friend_id) DO NOTHING
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID, friendID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, friendID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
