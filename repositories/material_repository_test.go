package repositories

import (
	"testing"

	"warehouse-app/database"
	"warehouse-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialListSeedsOnce(t *testing.T) {
	store := database.NewMemoryStore()
	repo := NewMaterialRepository(store)

	first, err := repo.List()
	require.NoError(t, err)
	require.Len(t, first, 5)
	assert.Equal(t, "MTR-001", first[0].MaterialNumber)
	assert.Equal(t, 1200, first[0].CurrentStock)
	assert.Equal(t, "5", first[4].ID)

	_, ok, err := store.Get(database.KeyMaterials)
	require.NoError(t, err)
	assert.True(t, ok)

	second, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMaterialListDoesNotReseedEmptyCatalog(t *testing.T) {
	store := database.NewMemoryStore()
	require.NoError(t, store.Put(database.KeyMaterials, []byte(`[]`)))

	materials, err := NewMaterialRepository(store).List()
	require.NoError(t, err)
	assert.Empty(t, materials)
}

func TestMaterialAddUpdateRemove(t *testing.T) {
	repo := NewMaterialRepository(database.NewMemoryStore())

	added, err := repo.Add(models.MaterialInput{MaterialNumber: "MTR-006", MaterialName: "Kabel NYY", Unit: "Meter", CurrentStock: 40})
	require.NoError(t, err)
	assert.Len(t, added.ID, 36)

	name := "Kabel NYY 4x16"
	require.NoError(t, repo.Update(added.ID, models.MaterialPatch{MaterialName: &name}))

	found, err := repo.Find(added.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Kabel NYY 4x16", found.MaterialName)
	assert.Equal(t, 40, found.CurrentStock)

	require.NoError(t, repo.Update("missing", models.MaterialPatch{MaterialName: &name}))
	require.NoError(t, repo.Remove("missing"))

	require.NoError(t, repo.Remove(added.ID))
	found, err = repo.Find(added.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	all, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestMaterialAddAllowsDuplicateNumber(t *testing.T) {
	repo := NewMaterialRepository(database.NewMemoryStore())

	_, err := repo.Add(models.MaterialInput{MaterialNumber: "MTR-001", MaterialName: "Kabel lain"})
	require.NoError(t, err)

	all, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestMaterialBulkAdd(t *testing.T) {
	repo := NewMaterialRepository(database.NewMemoryStore())

	added, err := repo.BulkAdd([]models.MaterialInput{
		{MaterialNumber: "A-1", MaterialName: "Satu", Unit: "BH"},
		{MaterialNumber: "A-2", MaterialName: "Dua", Unit: "BH", CurrentStock: 7},
	})
	require.NoError(t, err)
	require.Len(t, added, 2)
	assert.NotEqual(t, added[0].ID, added[1].ID)

	all, err := repo.List()
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, "A-2", all[6].MaterialNumber)
}

func TestMaterialSearch(t *testing.T) {
	repo := NewMaterialRepository(database.NewMemoryStore())

	byName, err := repo.Search("trafo")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "3", byName[0].ID)

	byNumber, err := repo.Search("mtr-00")
	require.NoError(t, err)
	assert.Len(t, byNumber, 5)

	none, err := repo.Search("xyz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCorruptCollectionReturnsError(t *testing.T) {
	store := database.NewMemoryStore()
	require.NoError(t, store.Put(database.KeyMaterials, []byte(`{not json`)))

	_, err := NewMaterialRepository(store).List()
	assert.Error(t, err)
}
