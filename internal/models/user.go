package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a service account. Email may be empty for the bootstrap
// administrator; it can be configured later.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string         `gorm:"not null" json:"name" validate:"required"`
	Email        string         `gorm:"uniqueIndex" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-" swaggerignore:"true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
}
