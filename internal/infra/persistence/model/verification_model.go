package model

import "time"

// EmailVerificationModel mirrors the 'email_verifications' table, one row per email.
type EmailVerificationModel struct {
	Email    string    `gorm:"type:varchar(255);primaryKey"`
	Code     string    `gorm:"type:varchar(16);not null"`
	IssuedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (EmailVerificationModel) TableName() string {
	return "email_verifications"
}

// All lists every persistence model, in creation order.
func All() []any {
	return []any{&UserModel{}, &EmailVerificationModel{}}
}
