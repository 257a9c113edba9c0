package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtei-informatika/kegiatan-app/internal/models"
)

type roleRepoStub struct {
	roles []models.Role
}

func (r *roleRepoStub) List(ctx context.Context) ([]models.Role, error) {
	return append([]models.Role(nil), r.roles...), nil
}

func (r *roleRepoStub) Count(ctx context.Context) (int64, error) {
	return int64(len(r.roles)), nil
}

func (r *roleRepoStub) CreateBatch(ctx context.Context, roles []models.Role) error {
	r.roles = append(r.roles, roles...)
	return nil
}

func TestSeedServiceSeedsEmptyStore(t *testing.T) {
	roles := &roleRepoStub{}
	users := &userRepoStub{}
	activities := newActivityRepoStub()
	svc := NewSeedService(roles, users, activities, testLogger())

	require.NoError(t, svc.Run(context.Background()))

	require.Len(t, roles.roles, 3)
	require.Len(t, users.users, 3)
	require.Len(t, activities.activities, 3)
	require.Contains(t, activities.activities, "K001")

	paul, err := users.FindByCredentials(context.Background(), "Paul_mhs", "PAULPASS")
	require.NoError(t, err)
	require.Equal(t, 101, paul.ID)
}

func TestSeedServiceIsIdempotent(t *testing.T) {
	roles := &roleRepoStub{}
	users := &userRepoStub{}
	activities := newActivityRepoStub()
	svc := NewSeedService(roles, users, activities, testLogger())

	require.NoError(t, svc.Run(context.Background()))
	require.NoError(t, svc.Run(context.Background()))

	require.Len(t, roles.roles, 3)
	require.Len(t, users.users, 3)
	require.Len(t, activities.activities, 3)
}

func TestSeedServiceSkipsPopulatedTables(t *testing.T) {
	roles := &roleRepoStub{roles: []models.Role{{ID: 9, Name: "Custom"}}}
	users := &userRepoStub{users: []models.User{{ID: 1, Name: "Existing", Username: "existing", Password: "secret1"}}}
	activities := newActivityRepoStub()
	activities.activities["X001"] = models.Activity{ID: "X001", Name: "Existing", Date: "01-01-2025"}
	svc := NewSeedService(roles, users, activities, testLogger())

	require.NoError(t, svc.Run(context.Background()))

	require.Len(t, roles.roles, 1)
	require.Len(t, users.users, 1)
	require.Len(t, activities.activities, 1)
}
