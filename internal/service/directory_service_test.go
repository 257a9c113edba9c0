package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dtei-informatika/kegiatan-app/internal/models"
)

func TestDirectoryServiceOptions(t *testing.T) {
	one, two := 1, 2
	roles := &roleRepoStub{roles: []models.Role{{ID: 1, Name: "Mahasiswa"}, {ID: 2, Name: "Dosen"}}}
	users := &userRepoStub{users: []models.User{
		{ID: 101, Name: "Paul Fajar", RoleID: &one, Username: "Paul_mhs", Password: "PAULPASS"},
		{ID: 102, Name: "Dr. Zhafier", RoleID: &two, Username: "Zhafier_dsn", Password: "ZHAFPASS"},
	}}
	svc := NewDirectoryService(roles, users, testLogger())

	roleOptions, err := svc.ListRoles(context.Background())
	require.NoError(t, err)
	require.Len(t, roleOptions, 2)
	require.Equal(t, "Mahasiswa", roleOptions[0].Name)

	userOptions, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, userOptions, 2)
	require.Equal(t, 101, userOptions[0].ID)
}
