package repositories

import (
	"testing"

	"warehouse-app/database"
	"warehouse-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserListSeedsAdmin(t *testing.T) {
	repo := NewUserRepository(database.NewMemoryStore())

	users, err := repo.List()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.User{ID: "1", Username: "admin", Password: "admin123", Role: models.RoleAdmin}, users[0])
}

func TestUserRemoveKeepsLastUser(t *testing.T) {
	repo := NewUserRepository(database.NewMemoryStore())

	removed, err := repo.Remove("1")
	require.NoError(t, err)
	assert.False(t, removed)

	users, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserAddUpdateRemove(t *testing.T) {
	repo := NewUserRepository(database.NewMemoryStore())

	staff, err := repo.Add(models.UserInput{Username: "budi", Password: "rahasia", Role: models.RoleStaff})
	require.NoError(t, err)

	role := models.RoleAdmin
	require.NoError(t, repo.Update(staff.ID, models.UserPatch{Role: &role}))

	got, err := repo.Find(staff.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.RoleAdmin, got.Role)
	assert.Equal(t, "rahasia", got.Password)

	removed, err := repo.Remove("1")
	require.NoError(t, err)
	assert.True(t, removed)

	users, err := repo.List()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "budi", users[0].Username)
}

func TestUserFindByCredentials(t *testing.T) {
	repo := NewUserRepository(database.NewMemoryStore())

	u, err := repo.FindByCredentials("admin", "admin123")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "1", u.ID)

	u, err = repo.FindByCredentials("admin", "salah")
	require.NoError(t, err)
	assert.Nil(t, u)
}
