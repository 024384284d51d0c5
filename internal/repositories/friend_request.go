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

// FriendRequestReadRepository handles friend request read operations
type FriendRequestReadRepository struct {
	db *sqlx.DB
}

func NewFriendRequestReadRepository(db *sqlx.DB) *FriendRequestReadRepository {
	return &FriendRequestReadRepository{db: db}
}

// GetByID returns a friend request by ID, or nil if none exists.
func (r *FriendRequestReadRepository) GetByID(ctx context.Context, requestID uuid.UUID) (*models.FriendRequestDB, error) {
	const query = `
		SELECT request_id, sender_id, receiver_id, sender_username, sender_profile_picture, send_date, status
		FROM friend_requests
		WHERE request_id = $1
	`

	var req models.FriendRequestDB
	err := r.db.GetContext(ctx, &req, query, requestID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &req, nil
}

// GetPendingByPair returns the pending request for the ordered
// (sender, receiver) pair, or nil if none exists.
func (r *FriendRequestReadRepository) GetPendingByPair(ctx context.Context, senderID, receiverID uuid.UUID) (*models.FriendRequestDB, error) {
	const query = `
		SELECT request_id, sender_id, receiver_id, sender_username, sender_profile_picture, send_date, status
		FROM friend_requests
		WHERE sender_id = $1 AND receiver_id = $2 AND status = 'pending'
	`

	var req models.FriendRequestDB
	err := r.db.GetContext(ctx, &req, query, senderID, receiverID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{senderID, receiverID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &req, nil
}

// ListPendingForReceiver returns all pending requests addressed to the user.
func (r *FriendRequestReadRepository) ListPendingForReceiver(ctx context.Context, receiverID uuid.UUID) ([]models.FriendRequestDB, error) {
	const query = `
		SELECT request_id, sender_id, receiver_id, sender_username, sender_profile_picture, send_date, status
		FROM friend_requests
		WHERE receiver_id = $1 AND status = 'pending'
		ORDER BY send_date
	`

	var reqs []models.FriendRequestDB
	err := r.db.SelectContext(ctx, &reqs, query, receiverID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{receiverID},
		"result", len(reqs),
		"error", err,
	)

	return reqs, err
}

// FriendRequestWriteRepository handles friend request write operations
type FriendRequestWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFriendRequestWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FriendRequestWriteRepository {
	return &FriendRequestWriteRepository{db: db, txGetter: txGetter}
}

func (r *FriendRequestWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a pending friend request snapshotting the sender's current
// username and profile picture, and returns the created row.
func (r *FriendRequestWriteRepository) Save(ctx context.Context, senderID, receiverID uuid.UUID, senderUsername string, senderProfilePicture *string) (*models.FriendRequestDB, error) {
	const query = `
		INSERT INTO friend_requests (sender_id, receiver_id, sender_username, sender_profile_picture, send_date, status)
		VALUES ($1, $2, $3, $4, NOW(), 'pending')
		RETURNING request_id, sender_id, receiver_id, sender_username, sender_profile_picture, send_date, status
	`
	args := []any{senderID, receiverID, senderUsername, senderProfilePicture}

	var req models.FriendRequestDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &req, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{senderID, receiverID, senderUsername},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &req, nil
}

// UpdateStatus transitions a pending request to a terminal status.
func (r *FriendRequestWriteRepository) UpdateStatus(ctx context.Context, requestID uuid.UUID, status string) error {
	const query = `
		UPDATE friend_requests SET status = $2
		WHERE request_id = $1 AND status = 'pending'
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, requestID, status)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID, status},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
