package services

import (
	"warehouse-app/database"
	"warehouse-app/models"
	"warehouse-app/repositories"
	"warehouse-app/utils"

	"golang.org/x/exp/slices"
)

type HistoryService struct {
	inbound  *repositories.InboundRepository
	outbound *repositories.OutboundRepository
}

func NewHistoryService(store database.Store) *HistoryService {
	return &HistoryService{
		inbound:  repositories.NewInboundRepository(store),
		outbound: repositories.NewOutboundRepository(store),
	}
}

// HistoryFor merges the inbound and outbound lines of one material, newest
// first. Lines on the same date keep inbound before outbound, each in
// stored order. Lines with an unreadable date go last.
func (s *HistoryService) HistoryFor(materialID string) ([]models.TransactionHistoryItem, error) {
	inbound, err := s.inbound.List()
	if err != nil {
		return nil, err
	}
	outbound, err := s.outbound.List()
	if err != nil {
		return nil, err
	}

	items := []models.TransactionHistoryItem{}
	for _, tx := range inbound {
		if tx.MaterialID != materialID {
			continue
		}
		items = append(items, models.TransactionHistoryItem{
			ID:        tx.ID.String(),
			Date:      tx.Date,
			Type:      models.HistoryIn,
			Reference: tx.ContractNumber,
			Info:      string(tx.Source),
			Volume:    tx.VolumeIn,
		})
	}
	for _, tx := range outbound {
		if tx.MaterialID != materialID {
			continue
		}
		items = append(items, models.TransactionHistoryItem{
			ID:        tx.ID.String(),
			Date:      tx.Date,
			Type:      models.HistoryOut,
			Reference: tx.RequestNumber,
			Info:      tx.Purpose,
			Volume:    tx.VolumeOut,
		})
	}

	slices.SortStableFunc(items, newestFirst)
	return items, nil
}

func newestFirst(a, b models.TransactionHistoryItem) int {
	dateA, errA := utils.ParseDate(a.Date)
	dateB, errB := utils.ParseDate(b.Date)
	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	}
	return dateB.Compare(dateA)
}
