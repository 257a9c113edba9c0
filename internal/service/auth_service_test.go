package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/dtei-informatika/kegiatan-app/internal/dto"
	"github.com/dtei-informatika/kegiatan-app/internal/models"
	"github.com/dtei-informatika/kegiatan-app/internal/repository"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

type userRepoStub struct {
	users []models.User
}

func (u *userRepoStub) FindByCredentials(ctx context.Context, username, password string) (models.User, error) {
	for _, user := range u.users {
		if user.Username == username && user.Password == password {
			return user, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (u *userRepoStub) UsernameExists(ctx context.Context, username string) (bool, error) {
	for _, user := range u.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (u *userRepoStub) ExternalIDExists(ctx context.Context, externalID string) (bool, error) {
	for _, user := range u.users {
		if user.ExternalID == externalID {
			return true, nil
		}
	}
	return false, nil
}

func (u *userRepoStub) MaxID(ctx context.Context) (int, error) {
	max := 0
	for _, user := range u.users {
		if user.ID > max {
			max = user.ID
		}
	}
	return max, nil
}

func (u *userRepoStub) Create(ctx context.Context, user *models.User) error {
	u.users = append(u.users, *user)
	return nil
}

func (u *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return append([]models.User(nil), u.users...), nil
}

func (u *userRepoStub) Count(ctx context.Context) (int64, error) {
	return int64(len(u.users)), nil
}

func seededUserRepo() *userRepoStub {
	one := 1
	return &userRepoStub{users: []models.User{
		{ID: 101, Name: "Paul Fajar", RoleID: &one, ExternalID: "2025", Username: "Paul_mhs", Password: "PAULPASS"},
	}}
}

func newAuthService(repo repository.UserRepository) AuthService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewAuthService(repo, validate, "test-secret", testLogger())
}

func TestAuthServiceAuthenticate(t *testing.T) {
	svc := newAuthService(seededUserRepo())

	session, err := svc.Authenticate(context.Background(), dto.LoginRequest{Username: "Paul_mhs", Password: "PAULPASS"})
	require.NoError(t, err)
	require.Equal(t, 101, session.UserID)
	require.Equal(t, "Paul_mhs", session.Username)
	require.NotEmpty(t, session.Token)
	require.NotEmpty(t, session.ID)
	require.NoError(t, svc.Verify(session))

	_, err = svc.Authenticate(context.Background(), dto.LoginRequest{Username: "Paul_mhs", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceAuthenticateRequiresBothFields(t *testing.T) {
	svc := newAuthService(seededUserRepo())

	_, err := svc.Authenticate(context.Background(), dto.LoginRequest{Username: "Paul_mhs"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Authenticate(context.Background(), dto.LoginRequest{Password: "PAULPASS"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestAuthServiceVerifyRejectsForeignToken(t *testing.T) {
	repo := seededUserRepo()
	svc := newAuthService(repo)
	other := NewAuthService(repo, validator.New(validator.WithRequiredStructEnabled()), "other-secret", testLogger())

	session, err := other.Authenticate(context.Background(), dto.LoginRequest{Username: "Paul_mhs", Password: "PAULPASS"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Verify(session), ErrInvalidSession)
	require.ErrorIs(t, svc.Verify(dto.Session{}), ErrInvalidSession)
}

func TestAuthServiceRegisterValidation(t *testing.T) {
	repo := seededUserRepo()
	svc := newAuthService(repo)

	base := dto.SignupRequest{
		Name:            "Vijaypal Singh",
		ExternalID:      "2252",
		Username:        "Jay_staff",
		Password:        "JAYPASS",
		ConfirmPassword: "JAYPASS",
		RoleID:          3,
	}

	short := base
	short.Password = "abcde"
	short.ConfirmPassword = "abcde"
	_, err := svc.Register(context.Background(), short)
	require.ErrorIs(t, err, ErrValidation)

	mismatch := base
	mismatch.ConfirmPassword = "DIFFERENT"
	_, err = svc.Register(context.Background(), mismatch)
	require.ErrorIs(t, err, ErrValidation)

	empty := base
	empty.Name = ""
	_, err = svc.Register(context.Background(), empty)
	require.ErrorIs(t, err, ErrValidation)

	require.Len(t, repo.users, 1, "rejected signups must not insert")
}

func TestAuthServiceRegisterDuplicates(t *testing.T) {
	repo := seededUserRepo()
	svc := newAuthService(repo)

	dupUsername := dto.SignupRequest{
		Name:            "Impostor",
		ExternalID:      "9999",
		Username:        "Paul_mhs",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		RoleID:          1,
	}
	_, err := svc.Register(context.Background(), dupUsername)
	require.ErrorIs(t, err, ErrUsernameTaken)
	require.ErrorIs(t, err, repository.ErrDuplicateKey)

	dupExternal := dupUsername
	dupExternal.Username = "fresh_name"
	dupExternal.ExternalID = "2025"
	_, err = svc.Register(context.Background(), dupExternal)
	require.ErrorIs(t, err, ErrExternalIDTaken)
	require.ErrorIs(t, err, repository.ErrDuplicateKey)

	require.Len(t, repo.users, 1)
}

func TestAuthServiceRegisterAssignsNextID(t *testing.T) {
	repo := seededUserRepo()
	svc := newAuthService(repo)

	id, err := svc.Register(context.Background(), dto.SignupRequest{
		Name:            "Dr. Zhafier",
		ExternalID:      "705",
		Username:        "Zhafier_dsn",
		Password:        "ZHAFPASS",
		ConfirmPassword: "ZHAFPASS",
		RoleID:          2,
	})
	require.NoError(t, err)
	require.Equal(t, 102, id, "new id is max existing id + 1")

	created := repo.users[len(repo.users)-1]
	require.Equal(t, "Zhafier_dsn", created.Username)
	require.NotNil(t, created.RoleID)
	require.Equal(t, 2, *created.RoleID)
}
