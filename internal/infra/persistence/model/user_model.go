package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 generated by the repository.
type UserModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName            string    `gorm:"type:varchar(100);not null"`
	LastName             string    `gorm:"type:varchar(100);not null"`
	Username             string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_users_username"`
	Email                string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Phone                string    `gorm:"type:varchar(50);not null"`
	Avatar               *string   `gorm:"type:varchar(512)"`
	Role                 string    `gorm:"type:varchar(16);not null"`
	Password             string    `gorm:"type:varchar(255);not null"`
	IsEmailConfirmed     bool      `gorm:"not null"`
	ResetPasswordToken   *string   `gorm:"type:varchar(255)"`
	ResetPasswordExpires *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
