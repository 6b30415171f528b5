package main

import (
	"bytes"
	"context"
	"testing"

	"accounts/internal/domain/constants"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/errors"
	"accounts/internal/infra/persistence/migrations"
	mockUsecase "accounts/internal/mocks/usecase"
	"accounts/internal/usecase"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.ElementsMatch(t, []string{"serve", "migrate", "seed"}, names)
}

func TestServeGraphIsComplete(t *testing.T) {
	err := fx.ValidateApp(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			migrations.AutoApply,
			startServer,
		),
	)

	require.NoError(t, err)
}

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(out)

	return cmd, out
}

func TestSeedAccounts_CreatesBothRoles(t *testing.T) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	cfg := &seedConfig{adminEmail: constants.DefaultAdminEmail, userEmail: constants.DefaultUserEmail, password: "s3cret!"}

	userUC.EXPECT().SeedAccount(mock.Anything, mock.MatchedBy(func(in usecase.SeedAccountInput) bool {
		return in.Role == entity.RoleAdmin && in.Email == constants.DefaultAdminEmail && in.Password == "s3cret!"
	})).Return(&entity.User{Email: constants.DefaultAdminEmail, Role: entity.RoleAdmin}, true, nil)
	userUC.EXPECT().SeedAccount(mock.Anything, mock.MatchedBy(func(in usecase.SeedAccountInput) bool {
		return in.Role == entity.RoleUser && in.Email == constants.DefaultUserEmail
	})).Return(&entity.User{Email: constants.DefaultUserEmail, Role: entity.RoleUser}, false, nil)

	cmd, out := newTestCmd()
	require.NoError(t, seedAccounts(context.Background(), cmd, userUC, cfg))

	assert.Contains(t, out.String(), "Created ADMIN account admin-go@yopmail.com")
	assert.Contains(t, out.String(), "USER account user-go@yopmail.com already exists")
}

func TestSeedAccounts_StopsOnError(t *testing.T) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	cfg := &seedConfig{adminEmail: "a@x.com", userEmail: "u@x.com", password: "1"}

	userUC.EXPECT().SeedAccount(mock.Anything, mock.Anything).
		Return(nil, false, domainerrors.ErrPasswordStrength).Once()

	cmd, _ := newTestCmd()
	err := seedAccounts(context.Background(), cmd, userUC, cfg)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

type fakeMigrator struct {
	calls   []string
	version uint
	dirty   bool
	upErr   error
}

func (f *fakeMigrator) Up() error {
	f.calls = append(f.calls, "up")
	f.version = 2

	return f.upErr
}

func (f *fakeMigrator) Down() error {
	f.calls = append(f.calls, "down")
	f.version = 0

	return nil
}

func (f *fakeMigrator) Version() (uint, bool, error) {
	return f.version, f.dirty, nil
}

func (f *fakeMigrator) Close() error {
	f.calls = append(f.calls, "close")

	return nil
}

func runMigrate(t *testing.T, fake *fakeMigrator, args ...string) (string, error) {
	t.Helper()

	orig := openMigrator
	t.Cleanup(func() { openMigrator = orig })

	var gotURL string
	openMigrator = func(databaseURL string) (migrator, error) {
		gotURL = databaseURL

		return fake, nil
	}

	out := &bytes.Buffer{}
	cmd := NewMigrateCmd()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append(args, "--database-url", "postgres://localhost/accounts"))

	err := cmd.Execute()
	assert.Equal(t, "postgres://localhost/accounts", gotURL)

	return out.String(), err
}

func TestMigrateUp(t *testing.T) {
	fake := &fakeMigrator{}

	out, err := runMigrate(t, fake, "up")

	require.NoError(t, err)
	assert.Equal(t, []string{"up", "close"}, fake.calls)
	assert.Contains(t, out, "Schema version 2")
}

func TestMigrateUp_ErrorStillCloses(t *testing.T) {
	fake := &fakeMigrator{upErr: errors.New("dirty database")}

	_, err := runMigrate(t, fake, "up")

	require.Error(t, err)
	assert.Equal(t, []string{"up", "close"}, fake.calls)
}

func TestMigrateDownAndVersion(t *testing.T) {
	fake := &fakeMigrator{version: 3, dirty: true}

	out, err := runMigrate(t, fake, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema version 3 (dirty)")

	_, err = runMigrate(t, fake, "down")
	require.NoError(t, err)
	assert.Contains(t, fake.calls, "down")
}
