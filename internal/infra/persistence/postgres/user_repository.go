package postgres

import (
	"context"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/errors"
	"accounts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first(ctx, "failed to find user by id", "id = ?", id)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.first(ctx, "failed to find user by email", "email = ?", email)
}

// FindByEmailWithActiveReset filters on identity and reset validity in one statement.
func (repo *userRepository) FindByEmailWithActiveReset(ctx context.Context, email string, now time.Time) (*entity.User, error) {
	return repo.first(ctx, "failed to find user with active reset",
		"email = ? AND reset_password_token IS NOT NULL AND reset_password_expires > ?", email, now)
}

func (repo *userRepository) first(ctx context.Context, op string, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where(query, args...).Take(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	return toUserDomain(&userM), nil
}

// Create inserts the user. The ID is generated here when the caller left it empty.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}

	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateAccount.WrapMessage("email or username already exists")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("user record violates a schema constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// SetResetToken stores the digest and expiry of a freshly issued reset token.
func (repo *userRepository) SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"reset_password_token":   tokenHash,
			"reset_password_expires": expiresAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to store reset token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ConsumeResetToken swaps the password and clears the reset pair in one conditional update.
func (repo *userRepository) ConsumeResetToken(ctx context.Context, id uuid.UUID, tokenHash, passwordHash string, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND reset_password_token = ? AND reset_password_expires > ?", id, tokenHash, now).
		Updates(map[string]any{
			"password":               passwordHash,
			"reset_password_token":   nil,
			"reset_password_expires": nil,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to reset password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaleUpdate
	}

	return nil
}

// MarkEmailConfirmed flips is_email_confirmed from false to true.
func (repo *userRepository) MarkEmailConfirmed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND is_email_confirmed = ?", id, false).
		Update("is_email_confirmed", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to confirm email")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaleUpdate
	}

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:               data.ID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Username:         data.Username,
		Email:            data.Email,
		Phone:            data.Phone,
		Avatar:           derefString(data.Avatar),
		Role:             entity.Role(data.Role),
		PasswordHash:     data.Password,
		IsEmailConfirmed: data.IsEmailConfirmed,
		ResetTokenHash:   derefString(data.ResetPasswordToken),
		ResetTokenExpiry: data.ResetPasswordExpires,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                   data.ID,
		FirstName:            data.FirstName,
		LastName:             data.LastName,
		Username:             data.Username,
		Email:                data.Email,
		Phone:                data.Phone,
		Avatar:               optionalString(data.Avatar),
		Role:                 data.Role.String(),
		Password:             data.PasswordHash,
		IsEmailConfirmed:     data.IsEmailConfirmed,
		ResetPasswordToken:   optionalString(data.ResetTokenHash),
		ResetPasswordExpires: data.ResetTokenExpiry,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
