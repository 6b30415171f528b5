// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"accounts/config"
	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/errors"
	"accounts/internal/usecase"
	"accounts/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	verificationCodeLength = 7

	defaultResetTokenTTL        = time.Hour
	defaultConfirmationCooldown = 15 * time.Minute

	// dummyPassword is hashed once so that logins for unknown emails cost one bcrypt comparison.
	dummyPassword = "timing-equaliser-not-a-real-password"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	verificationRepo repository.VerificationRepository
	hasher           service.PasswordHasher
	secrets          service.SecretGenerator
	tokens           service.TokenIssuer
	notifier         service.Notifier
	publisher        service.EventPublisher
	avatars          service.AvatarStore
	links            linkBuilder
	resetTTL         time.Duration
	cooldown         time.Duration
	dummyHash        func() string
	now              func() time.Time
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	VerificationRepo repository.VerificationRepository
	Hasher           service.PasswordHasher
	Secrets          service.SecretGenerator
	Tokens           service.TokenIssuer
	Notifier         service.Notifier
	Publisher        service.EventPublisher
	Avatars          service.AvatarStore
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	resetTTL, cooldown, baseURL := defaultResetTokenTTL, defaultConfirmationCooldown, ""
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.ResetTokenTTL > 0 {
			resetTTL = params.Config.Auth.ResetTokenTTL
		}
		if params.Config.Auth.ConfirmationCooldown > 0 {
			cooldown = params.Config.Auth.ConfirmationCooldown
		}
		baseURL = params.Config.Auth.PublicBaseURL
	}

	hasher := params.Hasher

	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		verificationRepo: params.VerificationRepo,
		hasher:           hasher,
		secrets:          params.Secrets,
		tokens:           params.Tokens,
		notifier:         params.Notifier,
		publisher:        params.Publisher,
		avatars:          params.Avatars,
		links:            linkBuilder{baseURL: baseURL},
		resetTTL:         resetTTL,
		cooldown:         cooldown,
		dummyHash: sync.OnceValue(func() string {
			digest, _ := hasher.Hash(dummyPassword)

			return digest
		}),
		now:    time.Now,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.hasher.Check(input.Password, srv.dummyHash())
		srv.log(ctx).Debug("Login for unknown email")

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Login with wrong password", slog.Any("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := srv.tokens.IssueSession(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{User: user, Token: token}, nil
}

func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)

	var avatarURL string
	if len(input.Avatar) > 0 {
		url, err := srv.avatars.Save(ctx, input.Username, input.Avatar)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store avatar")
		}
		avatarURL = url
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrPasswordHashFailed)
	}

	code, err := srv.secrets.RandomDigits(verificationCodeLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}

	user := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Username:     input.Username,
		Email:        email,
		Phone:        input.Phone,
		Avatar:       avatarURL,
		Role:         entity.RoleUser,
		PasswordHash: passwordHash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return err
		}

		return repoFactory.VerificationRepo().Upsert(ctx, &entity.EmailVerification{
			Email:    email,
			Code:     code,
			IssuedAt: srv.now().UTC(),
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID))
	srv.publish(ctx, service.EventUserRegistered, user)

	// The account stays even when the mail cannot be sent; the user can ask for a resend.
	if err := srv.sendConfirmation(ctx, user, code); err != nil {
		return nil, err
	}

	return user, nil
}

func (srv *authService) ForgotPassword(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Debug("Password reset requested for unknown email")

		return true, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to find user for password reset")
	}

	token, err := srv.secrets.RandomToken()
	if err != nil {
		return false, errors.Wrap(err, "failed to generate reset token")
	}

	tokenHash, err := srv.hasher.Hash(token)
	if err != nil {
		return false, errors.WithStack(domainerrors.ErrPasswordHashFailed)
	}

	expiresAt := srv.now().UTC().Add(srv.resetTTL)
	if err := srv.userRepo.SetResetToken(ctx, user.ID, tokenHash, expiresAt); err != nil {
		return false, errors.Wrap(err, "failed to store reset token")
	}

	err = srv.notifier.SendPasswordReset(ctx, service.PasswordResetMail{
		To:   user.Email,
		Name: user.FirstName,
		Link: srv.links.passwordReset(user.Email, token),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to send password reset email", slog.Any("userID", user.ID), slog.Any("error", err))

		return false, nil
	}

	srv.publish(ctx, service.EventPasswordResetRequested, user)

	return true, nil
}

func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) (bool, error) {
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return false, err
	}

	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmailWithActiveReset(ctx, email, srv.now().UTC())
	if errors.Is(err, repository.ErrUserNotFound) {
		return false, errors.WithStack(domainerrors.ErrResetTokenInvalid)
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to find user for password reset")
	}

	if !srv.hasher.Check(input.Token, user.ResetTokenHash) {
		srv.log(ctx).Warn("Password reset with wrong token", slog.Any("userID", user.ID))

		return false, errors.WithStack(domainerrors.ErrResetTokenInvalid)
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return false, errors.WithStack(domainerrors.ErrPasswordHashFailed)
	}

	err = srv.userRepo.ConsumeResetToken(ctx, user.ID, user.ResetTokenHash, passwordHash, srv.now().UTC())
	if errors.Is(err, repository.ErrStaleUpdate) {
		srv.log(ctx).Warn("Reset token consumed concurrently or expired", slog.Any("userID", user.ID))

		return false, errors.WithStack(domainerrors.ErrResetTokenInvalid)
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to reset password")
	}

	srv.log(ctx).Info("Password reset", slog.Any("userID", user.ID))
	srv.publish(ctx, service.EventPasswordReset, user)

	return true, nil
}

func (srv *authService) ConfirmEmail(ctx context.Context, token string) (bool, error) {
	claims, err := srv.tokens.VerifyConfirmation(token)
	if errors.Is(err, service.ErrTokenExpired) {
		return false, errors.WithStack(domainerrors.ErrConfirmationExpired)
	}
	if err != nil || claims.Email == "" {
		return false, errors.WithStack(domainerrors.ErrConfirmationMalformed)
	}

	email := normalizeEmail(claims.Email)

	var confirmed *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		verificationRepo := repoFactory.VerificationRepo()

		user, err := userRepo.FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user for confirmation")
		}

		if user.IsEmailConfirmed {
			return errors.WithStack(domainerrors.ErrAlreadyConfirmed)
		}

		verification, err := verificationRepo.FindByEmail(ctx, email)
		switch {
		case err == nil && verification.Code != claims.Code:
			return errors.WithStack(domainerrors.ErrConfirmationMalformed.WithDetails("confirmation link was superseded by a newer one"))
		case err != nil && !errors.Is(err, repository.ErrVerificationNotFound):
			return errors.Wrap(err, "failed to find verification record")
		}

		err = userRepo.MarkEmailConfirmed(ctx, user.ID)
		if errors.Is(err, repository.ErrStaleUpdate) {
			return errors.WithStack(domainerrors.ErrAlreadyConfirmed)
		}
		if err != nil {
			return errors.Wrap(err, "failed to confirm email")
		}

		if err := verificationRepo.DeleteByEmail(ctx, email); err != nil {
			return errors.Wrap(err, "failed to delete verification record")
		}

		confirmed = user

		return nil
	})
	if err != nil {
		return false, err
	}

	srv.log(ctx).Info("Email confirmed", slog.Any("userID", confirmed.ID))
	srv.publish(ctx, service.EventEmailConfirmed, confirmed)

	return true, nil
}

func (srv *authService) ResendConfirmation(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return false, err
	}

	if user.IsEmailConfirmed {
		return false, errors.WithStack(domainerrors.ErrAlreadyConfirmed)
	}

	verification, err := srv.verificationRepo.FindByEmail(ctx, user.Email)
	if errors.Is(err, repository.ErrVerificationNotFound) {
		return false, errors.WithStack(domainerrors.ErrNotRegistered)
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to find verification record")
	}

	now := srv.now().UTC()
	if verification.IssuedWithin(srv.cooldown, now) {
		wait := verification.IssuedAt.Add(srv.cooldown).Sub(now)

		return false, errors.WithStack(domainerrors.ErrTooSoon.WithDetails("retry in " + util.FormatDuration(wait)))
	}

	code, err := srv.secrets.RandomDigits(verificationCodeLength)
	if err != nil {
		return false, errors.Wrap(err, "failed to generate verification code")
	}

	err = srv.verificationRepo.Upsert(ctx, &entity.EmailVerification{Email: user.Email, Code: code, IssuedAt: now})
	if err != nil {
		return false, errors.Wrap(err, "failed to store verification record")
	}

	if err := srv.sendConfirmation(ctx, user, code); err != nil {
		return false, err
	}

	return true, nil
}

func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.findUser(ctx, userID)
}

func (srv *authService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// sendConfirmation signs a confirmation token for code and mails the link.
func (srv *authService) sendConfirmation(ctx context.Context, user *entity.User, code string) error {
	token, err := srv.tokens.IssueConfirmation(user.Email, code)
	if err != nil {
		return errors.Wrap(err, "failed to issue confirmation token")
	}

	err = srv.notifier.SendConfirmation(ctx, service.ConfirmationMail{
		To:   user.Email,
		Name: user.FirstName,
		Link: srv.links.confirmEmail(token),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to send confirmation email", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.WithStack(domainerrors.ErrNotificationFailure)
	}

	return nil
}

// publish emits an auth event; failures are logged and never fail the flow.
func (srv *authService) publish(ctx context.Context, eventType service.AuthEventType, user *entity.User) {
	event := &service.AuthEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		UserID:     user.ID.String(),
		Email:      user.Email,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish auth event",
			slog.String("type", string(eventType)),
			slog.Any("error", err),
		)
	}
}
