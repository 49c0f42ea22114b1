package services

import (
	"strings"

	"warehouse-app/models"
)

// OutboundFilter holds the monitoring search boxes. Empty fields match all.
type OutboundFilter struct {
	Request       string `query:"request"`
	Tug9          string `query:"tug9"`
	K7            string `query:"k7"`
	Reservation   string `query:"reservation"`
	Recipient     string `query:"recipient"`
	Date          string `query:"date"`
	Material      string `query:"material"`
	OnlyEmptyTug9 bool   `query:"only_empty_tug9"`
}

// FilterOutbound keeps stored order. Lines whose material no longer exists
// pass the material filter.
func FilterOutbound(txs []models.OutboundTransaction, materials []models.Material, f OutboundFilter) []models.OutboundTransaction {
	byID := make(map[string]models.Material, len(materials))
	for _, m := range materials {
		if _, ok := byID[m.ID]; !ok {
			byID[m.ID] = m
		}
	}

	result := []models.OutboundTransaction{}
	for _, tx := range txs {
		if f.OnlyEmptyTug9 && tx.Tug9Number != "" {
			continue
		}
		if !containsFold(tx.RequestNumber, f.Request) ||
			!containsFold(tx.Tug9Number, f.Tug9) ||
			!containsFold(tx.K7Number, f.K7) ||
			!containsFold(tx.ReservationNumber, f.Reservation) ||
			!containsFold(tx.RecipientName, f.Recipient) ||
			!strings.Contains(tx.Date, f.Date) {
			continue
		}
		if m, ok := byID[tx.MaterialID]; ok {
			if !containsFold(m.MaterialName, f.Material) && !containsFold(m.MaterialNumber, f.Material) {
				continue
			}
		}
		result = append(result, tx)
	}
	return result
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
