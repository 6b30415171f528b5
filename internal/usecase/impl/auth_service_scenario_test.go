package impl

import (
	"context"
	"net/url"
	"sync"
	"testing"
	"time"

	"accounts/config"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
	"accounts/internal/errors"
	"accounts/internal/infra/auth"
	"accounts/internal/infra/persistence/persistencetest"
	"accounts/internal/infra/persistence/postgres"
	mockSvc "accounts/internal/mocks/service"
	"accounts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// mailbox is a Notifier that keeps every message and can be told to fail.
type mailbox struct {
	mu            sync.Mutex
	confirmations []service.ConfirmationMail
	resets        []service.PasswordResetMail
	fail          bool
}

func (m *mailbox) SendConfirmation(_ context.Context, mail service.ConfirmationMail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp: connection refused")
	}
	m.confirmations = append(m.confirmations, mail)

	return nil
}

func (m *mailbox) SendPasswordReset(_ context.Context, mail service.PasswordResetMail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp: connection refused")
	}
	m.resets = append(m.resets, mail)

	return nil
}

func (m *mailbox) lastConfirmationToken(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, m.confirmations, "no confirmation mail sent")

	return queryParam(t, m.confirmations[len(m.confirmations)-1].Link, "token")
}

func (m *mailbox) lastResetToken(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, m.resets, "no reset mail sent")

	return queryParam(t, m.resets[len(m.resets)-1].Link, "token")
}

func queryParam(t *testing.T, link, key string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)

	return u.Query().Get(key)
}

type scenario struct {
	auth  *authService
	users usecase.UserUsecase
	repos postgres.Repositories
	mails *mailbox
	now   time.Time
}

func newScenario(t *testing.T) *scenario {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "scenario-access-secret-0123456789abcdef",
			Confirm: "scenario-confirm-secret-0123456789abcdef",
		},
		Auth: &config.AuthConfig{
			BcryptCost:           bcrypt.MinCost,
			AccessTokenTTL:       time.Hour,
			ConfirmTokenTTL:      24 * time.Hour,
			ResetTokenTTL:        time.Hour,
			ConfirmationCooldown: 15 * time.Minute,
			PublicBaseURL:        "https://app.example.com/",
		},
		PasswordStrength: &config.PasswordStrengthConfig{MinLength: 6, MaxLength: 72},
	}

	issuer, err := auth.NewJWTIssuer(cfg)
	require.NoError(t, err)

	db := persistencetest.NewDB(t)
	repos := postgres.NewRepositories(db)
	hasher := auth.NewBcryptHasher(cfg)
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	s := &scenario{
		repos: repos,
		mails: &mailbox{},
		now:   time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	s.auth = NewAuthService(AuthServiceParams{
		TxManager:        postgres.NewTransactionManager(db),
		UserRepo:         repos.Users,
		VerificationRepo: repos.Verifications,
		Hasher:           hasher,
		Secrets:          auth.NewSecretGenerator(),
		Tokens:           issuer,
		Notifier:         s.mails,
		Publisher:        publisher,
		Avatars:          mockSvc.NewMockAvatarStore(t),
		Config:           cfg,
		Logger:           newDiscardLogger(),
	}).(*authService)
	s.auth.now = func() time.Time { return s.now }

	s.users = NewUserService(UserServiceParams{
		UserRepo: repos.Users,
		Hasher:   hasher,
		Logger:   newDiscardLogger(),
	})

	return s
}

func (s *scenario) register(t *testing.T, email, username string) *entity.User {
	t.Helper()
	user, err := s.auth.Register(context.Background(), usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  username,
		Email:     email,
		Phone:     "+44 20 0000 0000",
		Password:  "first-password",
	})
	require.NoError(t, err)

	return user
}

func TestScenario_RegisterThenConfirmEmail(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)

	user := s.register(t, "  Ada@Example.com ", "ada")
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.False(t, user.IsEmailConfirmed)
	assert.NotEqual(t, "first-password", user.PasswordHash)

	require.Len(t, s.mails.confirmations, 1)
	mail := s.mails.confirmations[0]
	assert.Equal(t, "ada@example.com", mail.To)
	assert.Contains(t, mail.Link, "https://app.example.com/auth/confirm-email?token=")

	ok, err := s.auth.ConfirmEmail(ctx, s.mails.lastConfirmationToken(t))
	require.NoError(t, err)
	assert.True(t, ok)

	me, err := s.auth.Me(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, me.IsEmailConfirmed)

	_, err = s.auth.ConfirmEmail(ctx, s.mails.lastConfirmationToken(t))
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyConfirmed), "got %v", err)
}

func TestScenario_RegisterForgotResetLogin(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)
	s.register(t, "ada@example.com", "ada")

	sent, err := s.auth.ForgotPassword(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.True(t, sent)
	require.Len(t, s.mails.resets, 1)
	assert.Equal(t, "ada@example.com", queryParam(t, s.mails.resets[0].Link, "email"))

	token := s.mails.lastResetToken(t)
	assert.Len(t, token, 40)

	stored, err := s.repos.Users.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, token, stored.ResetTokenHash, "only the digest is stored")
	require.NotNil(t, stored.ResetTokenExpiry)
	assert.True(t, stored.ResetTokenExpiry.Equal(s.now.Add(time.Hour)))

	ok, err := s.auth.ResetPassword(ctx, usecase.ResetPasswordInput{
		Email:       "ada@example.com",
		NewPassword: "second-password",
		Token:       token,
	})
	require.NoError(t, err)
	assert.True(t, ok)

	out, err := s.auth.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "second-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token.AccessToken)
	assert.Equal(t, int64(3600), out.Token.ExpiresIn)

	_, err = s.auth.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "first-password"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = s.auth.ResetPassword(ctx, usecase.ResetPasswordInput{
		Email:       "ada@example.com",
		NewPassword: "third-password",
		Token:       token,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid), "reset token is single use, got %v", err)
}

func TestScenario_LoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)
	s.register(t, "ada@example.com", "ada")

	_, wrongPassword := s.auth.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "not-the-password"})
	_, unknownEmail := s.auth.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "not-the-password"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.True(t, errors.Is(wrongPassword, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownEmail, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestScenario_DuplicateAccount(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)
	s.register(t, "ada@example.com", "ada")

	_, err := s.auth.Register(ctx, usecase.RegisterInput{
		Username: "someone-else",
		Email:    "ADA@example.com",
		Password: "first-password",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateAccount), "got %v", err)

	_, err = s.auth.Register(ctx, usecase.RegisterInput{
		Username: "ada",
		Email:    "other@example.com",
		Password: "first-password",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateAccount), "got %v", err)
	assert.Len(t, s.mails.confirmations, 1, "no mail for rejected registrations")
}

func TestScenario_ExpiredResetTokenRejected(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)
	s.register(t, "ada@example.com", "ada")

	_, err := s.auth.ForgotPassword(ctx, "ada@example.com")
	require.NoError(t, err)
	token := s.mails.lastResetToken(t)

	s.now = s.now.Add(time.Hour + time.Minute)

	_, err = s.auth.ResetPassword(ctx, usecase.ResetPasswordInput{
		Email:       "ada@example.com",
		NewPassword: "second-password",
		Token:       token,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid), "got %v", err)
}

func TestScenario_ResetWithWrongToken(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)
	s.register(t, "ada@example.com", "ada")

	_, err := s.auth.ForgotPassword(ctx, "ada@example.com")
	require.NoError(t, err)

	_, err = s.auth.ResetPassword(ctx, usecase.ResetPasswordInput{
		Email:       "ada@example.com",
		NewPassword: "second-password",
		Token:       "0000000000000000000000000000000000000000",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))

	_, err = s.auth.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "first-password"})
	assert.NoError(t, err, "password unchanged")
}

func TestScenario_ForgotPasswordUnknownEmailSendsNothing(t *testing.T) {
	s := newScenario(t)

	sent, err := s.auth.ForgotPassword(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.True(t, sent)
	assert.Empty(t, s.mails.resets)
}

func TestScenario_ForgotPasswordMailFailure(t *testing.T) {
	s := newScenario(t)
	s.register(t, "ada@example.com", "ada")
	s.mails.fail = true

	sent, err := s.auth.ForgotPassword(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.False(t, sent)
}

func TestScenario_RegisterMailFailureKeepsAccount(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)
	s.mails.fail = true

	_, err := s.auth.Register(ctx, usecase.RegisterInput{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "first-password",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationFailure), "got %v", err)

	_, err = s.auth.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "first-password"})
	assert.NoError(t, err, "account is not rolled back")
}

func TestScenario_ResendConfirmationCooldown(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)
	user := s.register(t, "ada@example.com", "ada")
	firstToken := s.mails.lastConfirmationToken(t)

	s.now = s.now.Add(5 * time.Minute)
	_, err := s.auth.ResendConfirmation(ctx, user.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrTooSoon), "got %v", err)
	if tooSoon, ok := errors.Find[*domainerrors.BaseError](err); assert.True(t, ok) {
		assert.Equal(t, "retry in 10m0s", tooSoon.Details())
	}

	s.now = s.now.Add(11 * time.Minute)
	ok, err := s.auth.ResendConfirmation(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, s.mails.confirmations, 2)

	_, err = s.auth.ResendConfirmation(ctx, user.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrTooSoon), "cool-down restarts at each resend")

	_, err = s.auth.ConfirmEmail(ctx, firstToken)
	assert.True(t, errors.Is(err, domainerrors.ErrConfirmationMalformed), "superseded link, got %v", err)

	ok, err = s.auth.ConfirmEmail(ctx, s.mails.lastConfirmationToken(t))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.auth.ResendConfirmation(ctx, user.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyConfirmed))
}

func TestScenario_ResendConfirmationWithoutPendingRecord(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)

	user := &entity.User{Username: "legacy", Email: "legacy@example.com", Role: entity.RoleUser, PasswordHash: "digest"}
	require.NoError(t, s.repos.Users.Create(ctx, user))

	_, err := s.auth.ResendConfirmation(ctx, user.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotRegistered), "got %v", err)
}

func TestScenario_SeedAccountIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)

	input := usecase.SeedAccountInput{
		FirstName: "Admin",
		LastName:  "Admin",
		Email:     "admin-go@yopmail.com",
		Phone:     "+79107373125",
		Password:  "111111",
		Role:      entity.RoleAdmin,
	}

	admin, created, err := s.users.SeedAccount(ctx, input)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "admin-go", admin.Username)
	assert.True(t, admin.IsEmailConfirmed)

	again, created, err := s.users.SeedAccount(ctx, input)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, admin.ID, again.ID)

	out, err := s.auth.Login(ctx, usecase.LoginInput{Email: "admin-go@yopmail.com", Password: "111111"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	fetched, err := s.users.GetUser(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin-go@yopmail.com", fetched.Email)
}
