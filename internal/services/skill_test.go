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
)

func TestSkillService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockSkillReader(ctrl)
	mockWriter := services.NewMockSkillWriter(ctrl)
	svc := services.NewSkillService(mockReader, mockWriter)

	userID := uuid.New()
	desc := "static typing for JS"
	level := "Advanced"

	t.Run("successful create", func(t *testing.T) {
		saved := &models.SkillDB{SkillID: uuid.New(), UserID: userID, Name: "TypeScript", Description: &desc, Level: &level}
		mockWriter.EXPECT().Save(gomock.Any(), userID, "TypeScript", &desc, &level).Return(saved, nil)

		skill, err := svc.Create(context.Background(), userID, "TypeScript", &desc, &level)
		assert.NoError(t, err)
		assert.Equal(t, saved, skill)
	})

	t.Run("writer error", func(t *testing.T) {
		mockWriter.EXPECT().Save(gomock.Any(), userID, "Go", nil, nil).Return(nil, errors.New("db error"))

		skill, err := svc.Create(context.Background(), userID, "Go", nil, nil)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, skill)
	})
}

func TestSkillService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockSkillReader(ctrl)
	mockWriter := services.NewMockSkillWriter(ctrl)
	svc := services.NewSkillService(mockReader, mockWriter)

	ownerID := uuid.New()
	skillID := uuid.New()
	newName := "Rust"
	update := models.SkillUpdate{Name: &newName}

	t.Run("owner can update", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), skillID).
			Return(&models.SkillDB{SkillID: skillID, UserID: ownerID, Name: "C++"}, nil)
		mockWriter.EXPECT().Update(gomock.Any(), skillID, update).
			Return(&models.SkillDB{SkillID: skillID, UserID: ownerID, Name: "Rust"}, nil)

		skill, err := svc.Update(context.Background(), ownerID, skillID, update)
		assert.NoError(t, err)
		assert.Equal(t, "Rust", skill.Name)
	})

	t.Run("skill not found", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), skillID).Return(nil, nil)

		skill, err := svc.Update(context.Background(), ownerID, skillID, update)
		assert.ErrorIs(t, err, services.ErrSkillNotFound)
		assert.Nil(t, skill)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), skillID).
			Return(&models.SkillDB{SkillID: skillID, UserID: ownerID}, nil)

		skill, err := svc.Update(context.Background(), uuid.New(), skillID, update)
		assert.ErrorIs(t, err, services.ErrSkillAccessDenied)
		assert.Nil(t, skill)
	})
}

func TestSkillService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockSkillReader(ctrl)
	mockWriter := services.NewMockSkillWriter(ctrl)
	svc := services.NewSkillService(mockReader, mockWriter)

	ownerID := uuid.New()
	skillID := uuid.New()

	t.Run("owner can delete", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), skillID).
			Return(&models.SkillDB{SkillID: skillID, UserID: ownerID}, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), skillID).Return(nil)

		err := svc.Delete(context.Background(), ownerID, skillID)
		assert.NoError(t, err)
	})

	t.Run("skill not found", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), skillID).Return(nil, nil)

		err := svc.Delete(context.Background(), ownerID, skillID)
		assert.ErrorIs(t, err, services.ErrSkillNotFound)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), skillID).
			Return(&models.SkillDB{SkillID: skillID, UserID: ownerID}, nil)

		err := svc.Delete(context.Background(), uuid.New(), skillID)
		assert.ErrorIs(t, err, services.ErrSkillAccessDenied)
	})
}

func TestSkillService_ListByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockSkillReader(ctrl)
	mockWriter := services.NewMockSkillWriter(ctrl)
	svc := services.NewSkillService(mockReader, mockWriter)

	userID := uuid.New()
	skills := []models.SkillDB{
		{SkillID: uuid.New(), UserID: userID, Name: "Go"},
		{SkillID: uuid.New(), UserID: userID, Name: "SQL"},
	}

	mockReader.EXPECT().ListByUser(gomock.Any(), userID).Return(skills, nil)

	got, err := svc.ListByUser(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, skills, got)
}
