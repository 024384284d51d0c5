package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mbarnoyev/skill-exchange/internal/models"
	"github.com/mbarnoyev/skill-exchange/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAuthUserReader(ctrl)
	mockWriter := services.NewMockAuthUserWriter(ctrl)
	mockOTP := services.NewMockOTPStore(ctrl)
	mockMailer := services.NewMockOTPMailer(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockOTP, mockMailer, mockJWT)

	newUserID := uuid.New()

	tests := []struct {
		name         string
		email        string
		username     string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			email:    "alice@example.com",
			username: "alice",
			password: "pass123",
		},
		{
			name:         "user already exists",
			email:        "bob@example.com",
			username:     "bob",
			password:     "pass123",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			username:  "eve",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			email:     "carol@example.com",
			username:  "carol",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmailOrUsername(gomock.Any(), &tt.email, &tt.username).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.email, tt.username, gomock.Any()).
					Return(newUserID, tt.writerErr)
			}

			if tt.existingUser == nil && tt.readerErr == nil && tt.writerErr == nil {
				mockOTP.EXPECT().
					Set(gomock.Any(), tt.email, gomock.Any()).
					Return(nil)
				mockMailer.EXPECT().
					SendOTPEmail(gomock.Any(), tt.email, gomock.Any(), services.OTPTTL).
					Return(nil)
			}

			userID, err := svc.Register(context.Background(), tt.email, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Equal(t, uuid.Nil, userID)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, newUserID, userID)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAuthUserReader(ctrl)
	mockWriter := services.NewMockAuthUserWriter(ctrl)
	mockOTP := services.NewMockOTPStore(ctrl)
	mockMailer := services.NewMockOTPMailer(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockOTP, mockMailer, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	tests := []struct {
		name      string
		email     string
		user      *models.UserDB
		readerErr error
		loginPass string
		wantErr   error
	}{
		{
			name:      "successful login issues OTP",
			email:     "alice@example.com",
			user:      &models.UserDB{UserID: uuid.New(), Email: "alice@example.com", PasswordHash: string(hashed), IsVerified: true},
			loginPass: password,
		},
		{
			name:      "user does not exist",
			email:     "bob@example.com",
			user:      nil,
			loginPass: password,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "invalid password",
			email:     "carol@example.com",
			user:      &models.UserDB{UserID: uuid.New(), Email: "carol@example.com", PasswordHash: string(hashed), IsVerified: true},
			loginPass: "wrongpass",
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "account not verified",
			email:     "dan@example.com",
			user:      &models.UserDB{UserID: uuid.New(), Email: "dan@example.com", PasswordHash: string(hashed), IsVerified: false},
			loginPass: password,
			wantErr:   services.ErrAccountNotVerified,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			user:      nil,
			readerErr: errors.New("db error"),
			loginPass: password,
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.user, tt.readerErr)

			if tt.wantErr == nil {
				mockOTP.EXPECT().
					Set(gomock.Any(), tt.email, gomock.Any()).
					Return(nil)
				mockMailer.EXPECT().
					SendOTPEmail(gomock.Any(), tt.email, gomock.Any(), services.OTPTTL).
					Return(nil)
			}

			err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_SendOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAuthUserReader(ctrl)
	mockWriter := services.NewMockAuthUserWriter(ctrl)
	mockOTP := services.NewMockOTPStore(ctrl)
	mockMailer := services.NewMockOTPMailer(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockOTP, mockMailer, mockJWT)

	t.Run("existing user gets an OTP", func(t *testing.T) {
		email := "alice@example.com"
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), email).
			Return(&models.UserDB{UserID: uuid.New(), Email: email}, nil)
		mockOTP.EXPECT().
			Set(gomock.Any(), email, gomock.Any()).
			Return(nil)
		mockMailer.EXPECT().
			SendOTPEmail(gomock.Any(), email, gomock.Any(), services.OTPTTL).
			Return(nil)

		err := svc.SendOTP(context.Background(), email)
		assert.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		email := "ghost@example.com"
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), email).
			Return(nil, nil)

		err := svc.SendOTP(context.Background(), email)
		assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
	})

	t.Run("mailer failure does not fail the call", func(t *testing.T) {
		email := "bob@example.com"
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), email).
			Return(&models.UserDB{UserID: uuid.New(), Email: email}, nil)
		mockOTP.EXPECT().
			Set(gomock.Any(), email, gomock.Any()).
			Return(nil)
		mockMailer.EXPECT().
			SendOTPEmail(gomock.Any(), email, gomock.Any(), services.OTPTTL).
			Return(errors.New("kafka down"))

		err := svc.SendOTP(context.Background(), email)
		assert.NoError(t, err)
	})
}

func TestAuthService_VerifyOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAuthUserReader(ctrl)
	mockWriter := services.NewMockAuthUserWriter(ctrl)
	mockOTP := services.NewMockOTPStore(ctrl)
	mockMailer := services.NewMockOTPMailer(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockOTP, mockMailer, mockJWT)

	email := "alice@example.com"

	tests := []struct {
		name       string
		code       string
		storedCode string
		storeErr   error
		wantErr    error
		verifies   bool
	}{
		{
			name:       "matching code verifies the account",
			code:       "123456",
			storedCode: "123456",
			verifies:   true,
		},
		{
			name:       "wrong code",
			code:       "123456",
			storedCode: "654321",
			wantErr:    services.ErrInvalidOrExpiredOTP,
		},
		{
			name:       "expired code",
			code:       "123456",
			storedCode: "",
			wantErr:    services.ErrInvalidOrExpiredOTP,
		},
		{
			name:     "store error",
			code:     "123456",
			storeErr: errors.New("redis error"),
			wantErr:  errors.New("redis error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOTP.EXPECT().
				Get(gomock.Any(), email).
				Return(tt.storedCode, tt.storeErr)

			if tt.verifies {
				mockOTP.EXPECT().
					Delete(gomock.Any(), email).
					Return(nil)
				mockWriter.EXPECT().
					SetVerified(gomock.Any(), email).
					Return(nil)
			}

			err := svc.VerifyOTP(context.Background(), email, tt.code)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_VerifyLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAuthUserReader(ctrl)
	mockWriter := services.NewMockAuthUserWriter(ctrl)
	mockOTP := services.NewMockOTPStore(ctrl)
	mockMailer := services.NewMockOTPMailer(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockOTP, mockMailer, mockJWT)

	email := "alice@example.com"
	userID := uuid.New()

	t.Run("matching code returns a token", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), email).
			Return(&models.UserDB{UserID: userID, Email: email}, nil)
		mockOTP.EXPECT().
			Get(gomock.Any(), email).
			Return("123456", nil)
		mockOTP.EXPECT().
			Delete(gomock.Any(), email).
			Return(nil)
		mockJWT.EXPECT().
			Generate(gomock.Any(), userID).
			Return("JWT_TOKEN", nil)

		token, err := svc.VerifyLogin(context.Background(), email, "123456")
		assert.NoError(t, err)
		assert.Equal(t, "JWT_TOKEN", token)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), email).
			Return(nil, nil)

		token, err := svc.VerifyLogin(context.Background(), email, "123456")
		assert.ErrorIs(t, err, services.ErrInvalidOrExpiredOTP)
		assert.Empty(t, token)
	})

	t.Run("wrong code", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), email).
			Return(&models.UserDB{UserID: userID, Email: email}, nil)
		mockOTP.EXPECT().
			Get(gomock.Any(), email).
			Return("999999", nil)

		token, err := svc.VerifyLogin(context.Background(), email, "123456")
		assert.ErrorIs(t, err, services.ErrInvalidOrExpiredOTP)
		assert.Empty(t, token)
	})

	t.Run("JWT generation error", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), email).
			Return(&models.UserDB{UserID: userID, Email: email}, nil)
		mockOTP.EXPECT().
			Get(gomock.Any(), email).
			Return("123456", nil)
		mockOTP.EXPECT().
			Delete(gomock.Any(), email).
			Return(nil)
		mockJWT.EXPECT().
			Generate(gomock.Any(), userID).
			Return("", errors.New("jwt error"))

		token, err := svc.VerifyLogin(context.Background(), email, "123456")
		assert.EqualError(t, err, "jwt error")
		assert.Empty(t, token)
	})
}
