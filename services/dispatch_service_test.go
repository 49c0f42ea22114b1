package services

import (
	"testing"

	"warehouse-app/database"
	"warehouse-app/models"
	"warehouse-app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchNote(t *testing.T) {
	store := database.NewMemoryStore()
	require.NoError(t, repositories.NewOutboundRepository(store).SaveAll([]models.OutboundTransaction{
		{ID: 1, Date: "2024-03-05", RequestNumber: "00001", RecipientName: "Yanto", Purpose: "Gangguan", K7Number: "K7", ReservationNumber: "R", MaterialID: "1", VolumeOut: 1200, DriverName: "Asep", VehicleType: models.VehiclePickup, LicensePlate: "E 1234 AB"},
		{ID: 2, Date: "2024-03-05", RequestNumber: "00002", MaterialID: "2", VolumeOut: 1},
		{ID: 3, Date: "2024-03-05", RequestNumber: "00001", MaterialID: "deleted", VolumeOut: 3},
	}))

	note, err := NewDispatchService(store, "LOG.CRB").Note("00001")
	require.NoError(t, err)

	assert.Equal(t, "00001/LOG.CRB/III/2024", note.Reference)
	assert.Equal(t, "Yanto", note.RecipientName)
	assert.Equal(t, models.VehiclePickup, note.VehicleType)
	require.Len(t, note.Lines, 2)
	assert.Equal(t, models.DispatchNoteLine{No: 1, MaterialID: "1", MaterialNumber: "MTR-001", MaterialName: "Kabel Twisted AL 3x70+1x50 mm2", Unit: "Meter", Volume: 1200, VolumeText: "1.200"}, note.Lines[0])
	assert.Equal(t, "N/A", note.Lines[1].MaterialNumber)
	assert.Equal(t, "", note.Lines[1].Unit)
}

func TestDispatchNoteNotFound(t *testing.T) {
	_, err := NewDispatchService(database.NewMemoryStore(), "LOG.CRB").Note("00009")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestNoteForPostedBatchAfterYearRollover(t *testing.T) {
	store := database.NewMemoryStore()
	ledger := NewLedgerService(store)
	dispatch := NewDispatchService(store, "LOG.CRB")

	ledger.SetClock(fixedClock(2024))
	first, err := ledger.PostOutbound(models.OutboundHeader{Date: "2024-03-05", RecipientName: "A", Purpose: "P", K7Number: "K7", ReservationNumber: "R"},
		[]models.OutboundLine{{MaterialID: "1", VolumeOut: 1}})
	require.NoError(t, err)

	ledger.SetClock(fixedClock(2025))
	second, err := ledger.PostOutbound(models.OutboundHeader{Date: "2025-01-10", RecipientName: "B", Purpose: "P", K7Number: "K7", ReservationNumber: "R"},
		[]models.OutboundLine{{MaterialID: "2", VolumeOut: 1}})
	require.NoError(t, err)
	require.Equal(t, first[0].RequestNumber, second[0].RequestNumber)

	note, err := dispatch.NoteFor(second)
	require.NoError(t, err)
	assert.Equal(t, "00001/LOG.CRB/I/2025", note.Reference)
	assert.Equal(t, "B", note.RecipientName)
	require.Len(t, note.Lines, 1)
	assert.Equal(t, "2", note.Lines[0].MaterialID)

	_, err = dispatch.NoteFor(nil)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}
