package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID         uuid.UUID `json:"id" db:"user_id"`                                // Primary key
	Email          string    `json:"email" db:"email"`                               // Unique email among non-deleted users
	Username       string    `json:"username" db:"username"`                         // Unique username among non-deleted users
	PasswordHash   string    `json:"-" db:"password_hash"`                           // Hashed password, never serialized
	Name           *string   `json:"name,omitempty" db:"name"`                       // Optional display name
	Education      *string   `json:"education,omitempty" db:"education"`             // Optional education
	Bio            *string   `json:"bio,omitempty" db:"bio"`                         // Optional bio
	Age            *int      `json:"age,omitempty" db:"age"`                         // Optional age
	Location       *string   `json:"location,omitempty" db:"location"`               // Optional location
	ProfilePicture *string   `json:"profile_picture,omitempty" db:"profile_picture"` // Media store URL
	Certificates   []string  `json:"certificates" db:"-"`                            // Ordered certificate URLs
	IsVerified     bool      `json:"is_verified" db:"is_verified"`                   // OTP verification completed
	IsDeleted      bool      `json:"-" db:"is_deleted"`                              // Soft-delete flag
	CreatedAt      time.Time `json:"created_at" db:"created_at"`                     // Creation timestamp
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`                     // Last update timestamp
}

// UserSummaryDB is the projection returned for friend listings.
type UserSummaryDB struct {
	UserID         uuid.UUID `json:"id" db:"user_id"`
	Username       string    `json:"username" db:"username"`
	Name           *string   `json:"name,omitempty" db:"name"`
	ProfilePicture *string   `json:"profile_picture,omitempty" db:"profile_picture"`
}

// UserUpdate holds the optional profile fields of a partial update.
// Nil fields are left unchanged.
type UserUpdate struct {
	Name      *string
	Education *string
	Bio       *string
	Age       *int
	Location  *string
}

// UserSearchFilter holds the optional search filters. Supplied filters are
// ANDed; each matches as a case-insensitive substring.
type UserSearchFilter struct {
	Skill     *string
	Username  *string
	Name      *string
	Education *string
}
