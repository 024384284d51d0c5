package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/mbarnoyev/skill-exchange/internal/logger"
)

// OTPRepository stores one-time passcodes in Redis. A key expires exactly
// `exp` after issuance, so a missing key covers both "never issued" and
// "expired".
type OTPRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewOTPRepository creates a new repository with the given code lifetime.
func NewOTPRepository(client *redis.Client, expiration time.Duration) *OTPRepository {
	return &OTPRepository{
		client: client,
		exp:    expiration,
	}
}

func otpKey(email string) string {
	return fmt.Sprintf("otp:%s", email)
}

// Set stores the code for the email, replacing any previous one and resetting
// the expiry.
func (r *OTPRepository) Set(ctx context.Context, email, code string) error {
	key := otpKey(email)
	err := r.client.Set(ctx, key, code, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Get returns the stored code for the email, or "" if none is present or it
// has expired.
func (r *OTPRepository) Get(ctx context.Context, email string) (string, error) {
	key := otpKey(email)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}

	logger.Log.Infow(
		"key", key,
		"result", "hit",
		"error", nil,
	)

	return val, nil
}

// Delete clears the stored code after successful verification.
func (r *OTPRepository) Delete(ctx context.Context, email string) error {
	key := otpKey(email)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
