package services

import (
	"testing"

	"warehouse-app/models"

	"github.com/stretchr/testify/assert"
)

func TestFilterOutbound(t *testing.T) {
	materials := []models.Material{
		{ID: "1", MaterialNumber: "MTR-001", MaterialName: "Kabel Twisted"},
		{ID: "2", MaterialNumber: "MTR-002", MaterialName: "Isolator"},
	}
	txs := []models.OutboundTransaction{
		{ID: 1, Date: "2024-03-05", RequestNumber: "00001", RecipientName: "Yanto", K7Number: "K7-A", ReservationNumber: "RES-1", MaterialID: "1"},
		{ID: 2, Date: "2024-04-10", RequestNumber: "00002", RecipientName: "Budi", Tug9Number: "TUG-9", K7Number: "K7-B", MaterialID: "2"},
		{ID: 3, Date: "2024-04-11", RequestNumber: "00003", RecipientName: "budiman", MaterialID: "gone"},
	}

	ids := func(got []models.OutboundTransaction) []string {
		out := []string{}
		for _, tx := range got {
			out = append(out, tx.ID.String())
		}
		return out
	}

	assert.Equal(t, []string{"1", "2", "3"}, ids(FilterOutbound(txs, materials, OutboundFilter{})))
	assert.Equal(t, []string{"2", "3"}, ids(FilterOutbound(txs, materials, OutboundFilter{Recipient: "BUDI"})))
	assert.Equal(t, []string{"2", "3"}, ids(FilterOutbound(txs, materials, OutboundFilter{Date: "2024-04"})))
	assert.Equal(t, []string{"1", "3"}, ids(FilterOutbound(txs, materials, OutboundFilter{Material: "kabel"})))
	assert.Equal(t, []string{"2", "3"}, ids(FilterOutbound(txs, materials, OutboundFilter{Material: "mtr-002"})))
	assert.Equal(t, []string{"1", "3"}, ids(FilterOutbound(txs, materials, OutboundFilter{OnlyEmptyTug9: true})))
	assert.Equal(t, []string{"2"}, ids(FilterOutbound(txs, materials, OutboundFilter{Tug9: "tug"})))
	assert.Equal(t, []string{"1"}, ids(FilterOutbound(txs, materials, OutboundFilter{Reservation: "res"})))
	assert.Equal(t, []string{"1"}, ids(FilterOutbound(txs, materials, OutboundFilter{K7: "k7-a"})))
}
