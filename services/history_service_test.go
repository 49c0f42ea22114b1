package services

import (
	"testing"

	"warehouse-app/database"
	"warehouse-app/models"
	"warehouse-app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryForMergesNewestFirst(t *testing.T) {
	store := database.NewMemoryStore()
	require.NoError(t, repositories.NewInboundRepository(store).SaveAll([]models.InboundTransaction{
		{ID: 1, Date: "2024-01-01", ContractNumber: "K-1", Source: models.SourceSTO, MaterialID: "1", VolumeIn: 50},
		{ID: 2, Date: "2024-03-01", ContractNumber: "K-2", Source: models.SourceKontrakUID, MaterialID: "1", VolumeIn: 20},
		{ID: 3, Date: "2024-03-01", ContractNumber: "K-3", Source: models.SourceSTO, MaterialID: "2", VolumeIn: 9},
	}))
	require.NoError(t, repositories.NewOutboundRepository(store).SaveAll([]models.OutboundTransaction{
		{ID: 4, Date: "2024-03-01", RequestNumber: "00001", Purpose: "Gangguan", MaterialID: "1", VolumeOut: 5},
		{ID: 5, Date: "2024-02-01", RequestNumber: "00002", Purpose: "Pemeliharaan", MaterialID: "1", VolumeOut: 3},
		{ID: 6, Date: "??", RequestNumber: "00003", Purpose: "Rusak", MaterialID: "1", VolumeOut: 1},
	}))

	items, err := NewHistoryService(store).HistoryFor("1")
	require.NoError(t, err)
	require.Len(t, items, 5)

	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	assert.Equal(t, []string{"2", "4", "5", "1", "6"}, ids)

	assert.Equal(t, models.TransactionHistoryItem{ID: "2", Date: "2024-03-01", Type: models.HistoryIn, Reference: "K-2", Info: "Kontrak UID", Volume: 20}, items[0])
	assert.Equal(t, models.TransactionHistoryItem{ID: "4", Date: "2024-03-01", Type: models.HistoryOut, Reference: "00001", Info: "Gangguan", Volume: 5}, items[1])
}

func TestHistoryForUnknownMaterialIsEmpty(t *testing.T) {
	items, err := NewHistoryService(database.NewMemoryStore()).HistoryFor("nope")
	require.NoError(t, err)
	assert.Empty(t, items)
}
