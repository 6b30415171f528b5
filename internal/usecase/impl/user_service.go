package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/errors"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *userService) SeedAccount(ctx context.Context, input usecase.SeedAccountInput) (*entity.User, bool, error) {
	email := normalizeEmail(input.Email)

	existing, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		srv.log(ctx).Info("Seed account already exists", slog.String("email", email))

		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, errors.Wrap(err, "failed to look up seed account")
	}

	role := input.Role
	if !role.IsValid() {
		return nil, false, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown role " + string(role)))
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, false, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, false, errors.WithStack(domainerrors.ErrPasswordHashFailed)
	}

	username := input.Username
	if username == "" {
		username, _, _ = strings.Cut(email, "@")
	}

	user := &entity.User{
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Username:         username,
		Email:            email,
		Phone:            input.Phone,
		Role:             role,
		PasswordHash:     passwordHash,
		IsEmailConfirmed: true,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, false, errors.Wrap(err, "failed to create seed account")
	}

	srv.log(ctx).Info("Seed account created", slog.String("email", email), slog.String("role", role.String()))

	return user, true, nil
}
