package models

import (
	"time"

	"github.com/google/uuid"
)

// SkillDB represents a skill record owned by a user. Skill names are not
// unique within a user.
type SkillDB struct {
	SkillID     uuid.UUID `json:"skill_id" db:"skill_id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	Level       *string   `json:"level,omitempty" db:"level"` // e.g. "beginner", "intermediate", "expert"
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// SkillUpdate holds the optional fields of a partial skill update.
type SkillUpdate struct {
	Name        *string
	Description *string
	Level       *string
}
