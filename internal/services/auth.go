package services

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mbarnoyev/skill-exchange/internal/logger"
	"github.com/mbarnoyev/skill-exchange/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// OTPTTL is how long an issued one-time passcode stays valid.
const OTPTTL = 10 * time.Minute

// Error variables
var (
	ErrUserAlreadyExists   = errors.New("email or username already exists")
	ErrUserDoesNotExist    = errors.New("user not found or deleted")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountNotVerified  = errors.New("account not verified")
	ErrInvalidOrExpiredOTP = errors.New("invalid or expired OTP")
)

// AuthUserReader defines the user read operations needed for authentication.
type AuthUserReader interface {
	GetByEmailOrUsername(ctx context.Context, email, username *string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// AuthUserWriter defines the user write operations needed for authentication.
type AuthUserWriter interface {
	Save(ctx context.Context, email, username, passwordHash string) (uuid.UUID, error)
	SetVerified(ctx context.Context, email string) error
}

// OTPStore stores one-time passcodes with a fixed lifetime.
type OTPStore interface {
	Set(ctx context.Context, email, code string) error
	Get(ctx context.Context, email string) (string, error) // "" if absent or expired
	Delete(ctx context.Context, email string) error
}

// OTPMailer delivers one-time passcodes by email.
type OTPMailer interface {
	SendOTPEmail(ctx context.Context, email, code string, ttl time.Duration) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration, OTP verification, and two-factor login.
type AuthService struct {
	reader AuthUserReader
	writer AuthUserWriter
	otp    OTPStore
	mailer OTPMailer
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader AuthUserReader, writer AuthUserWriter, otp OTPStore, mailer OTPMailer, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		otp:    otp,
		mailer: mailer,
		jwt:    jwt,
	}
}

// Register creates an unverified account and mails an OTP for verification.
// Returns the new user's ID.
func (svc *AuthService) Register(ctx context.Context, email, username, password string) (uuid.UUID, error) {
	user, err := svc.reader.GetByEmailOrUsername(ctx, &email, &username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return uuid.Nil, err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "email", email, "username", username)
		return uuid.Nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	userID, err := svc.writer.Save(ctx, email, username, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	if err := svc.issueOTP(ctx, email); err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

// Login checks credentials and, for a verified account, issues a fresh OTP as
// the second authentication factor. No token is returned until VerifyLogin.
func (svc *AuthService) Login(ctx context.Context, email, password string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return ErrInvalidCredentials
	}

	if !user.IsVerified {
		logger.Log.Errorw("account not verified", "email", email)
		return ErrAccountNotVerified
	}

	return svc.issueOTP(ctx, email)
}

// SendOTP issues a fresh OTP for an existing user.
func (svc *AuthService) SendOTP(ctx context.Context, email string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return ErrUserDoesNotExist
	}

	return svc.issueOTP(ctx, email)
}

// VerifyOTP consumes a matching code and marks the account as verified.
func (svc *AuthService) VerifyOTP(ctx context.Context, email, code string) error {
	if err := svc.consumeOTP(ctx, email, code); err != nil {
		return err
	}

	if err := svc.writer.SetVerified(ctx, email); err != nil {
		logger.Log.Errorw("failed to mark account verified", "email", email, "err", err)
		return err
	}

	return nil
}

// VerifyLogin consumes a matching code and returns a signed session token.
func (svc *AuthService) VerifyLogin(ctx context.Context, email, code string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", ErrInvalidOrExpiredOTP
	}

	if err := svc.consumeOTP(ctx, email, code); err != nil {
		return "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// issueOTP generates, stores, and mails a 6-digit code. Mail delivery is
// best-effort: failures are logged without failing the caller.
func (svc *AuthService) issueOTP(ctx context.Context, email string) error {
	code, err := generateOTP()
	if err != nil {
		logger.Log.Errorw("failed to generate OTP", "err", err)
		return err
	}

	if err := svc.otp.Set(ctx, email, code); err != nil {
		logger.Log.Errorw("failed to store OTP", "email", email, "err", err)
		return err
	}

	if err := svc.mailer.SendOTPEmail(ctx, email, code, OTPTTL); err != nil {
		logger.Log.Errorw("failed to publish OTP mail", "email", email, "err", err)
	}

	return nil
}

// consumeOTP checks the stored code and clears it on success.
func (svc *AuthService) consumeOTP(ctx context.Context, email, code string) error {
	stored, err := svc.otp.Get(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to read OTP", "email", email, "err", err)
		return err
	}
	if stored == "" || stored != code {
		logger.Log.Errorw("OTP mismatch or expired", "email", email)
		return ErrInvalidOrExpiredOTP
	}

	if err := svc.otp.Delete(ctx, email); err != nil {
		logger.Log.Errorw("failed to clear OTP", "email", email, "err", err)
		return err
	}

	return nil
}

// generateOTP draws a 6-digit code uniformly from [100000, 999999].
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
