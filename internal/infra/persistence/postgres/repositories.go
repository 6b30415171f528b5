package postgres

import (
	"accounts/internal/domain/repository"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Repositories provides the pool-bound repositories used outside transactions.
type Repositories struct {
	fx.Out

	Users         repository.UserRepository
	Verifications repository.VerificationRepository
}

// NewRepositories binds every repository to db.
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:         NewUserRepository(db),
		Verifications: NewVerificationRepository(db),
	}
}
