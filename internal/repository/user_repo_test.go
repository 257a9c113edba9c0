package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtei-informatika/kegiatan-app/internal/models"
)

func TestUserRepositoryFindByCredentialsExactMatch(t *testing.T) {
	db := setupTestDB(t)
	seedResponsible(t, db)
	repo := NewUserRepository(db)

	user, err := repo.FindByCredentials(context.Background(), "Paul_mhs", "PAULPASS")
	require.NoError(t, err)
	require.Equal(t, 101, user.ID)

	_, err = repo.FindByCredentials(context.Background(), "Paul_mhs", "wrong")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindByCredentials(context.Background(), "Paul_mhs", "paulpass")
	require.ErrorIs(t, err, ErrNotFound, "password comparison is exact string equality")
}

func TestUserRepositoryMaxID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	max, err := repo.MaxID(context.Background())
	require.NoError(t, err)
	require.Zero(t, max)

	seedResponsible(t, db)
	max, err = repo.MaxID(context.Background())
	require.NoError(t, err)
	require.Equal(t, 101, max)
}

func TestUserRepositoryExistenceChecks(t *testing.T) {
	db := setupTestDB(t)
	seedResponsible(t, db)
	repo := NewUserRepository(db)

	taken, err := repo.UsernameExists(context.Background(), "Paul_mhs")
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = repo.UsernameExists(context.Background(), "nobody")
	require.NoError(t, err)
	require.False(t, taken)

	taken, err = repo.ExternalIDExists(context.Background(), "2025")
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = repo.ExternalIDExists(context.Background(), "9999")
	require.NoError(t, err)
	require.False(t, taken)
}

func TestUserRepositoryListOrderedByName(t *testing.T) {
	db := setupTestDB(t)
	seedResponsible(t, db)
	repo := NewUserRepository(db)

	zhafier := models.User{ID: 102, Name: "Dr. Zhafier", ExternalID: "705", Username: "Zhafier_dsn", Password: "ZHAFPASS"}
	require.NoError(t, repo.Create(context.Background(), &zhafier))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "Dr. Zhafier", users[0].Name)
	require.Equal(t, "Paul Fajar", users[1].Name)
}
