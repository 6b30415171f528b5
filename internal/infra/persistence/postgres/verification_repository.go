package postgres

import (
	"context"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/errors"
	"accounts/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository is the constructor for verificationRepository.
func NewVerificationRepository(db *gorm.DB) repository.VerificationRepository {
	return &verificationRepository{db: db}
}

func (repo *verificationRepository) FindByEmail(ctx context.Context, email string) (*entity.EmailVerification, error) {
	var verificationM model.EmailVerificationModel
	err := repo.db.WithContext(ctx).Where("email = ?", email).Take(&verificationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find email verification")
	}

	return &entity.EmailVerification{
		Email:    verificationM.Email,
		Code:     verificationM.Code,
		IssuedAt: verificationM.IssuedAt,
	}, nil
}

// Upsert relies on the primary key on email: INSERT ... ON CONFLICT (email) DO UPDATE.
func (repo *verificationRepository) Upsert(ctx context.Context, verification *entity.EmailVerification) error {
	verificationM := &model.EmailVerificationModel{
		Email:    verification.Email,
		Code:     verification.Code,
		IssuedAt: verification.IssuedAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"code", "issued_at"}),
		}).
		Create(verificationM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert email verification")
	}

	return nil
}

func (repo *verificationRepository) DeleteByEmail(ctx context.Context, email string) error {
	err := repo.db.WithContext(ctx).Where("email = ?", email).Delete(&model.EmailVerificationModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete email verification")
	}

	return nil
}
