package repositories

import (
	"warehouse-app/database"
	"warehouse-app/models"
)

type OutboundRepository struct {
	store database.Store
}

func NewOutboundRepository(store database.Store) *OutboundRepository {
	return &OutboundRepository{store: store}
}

func (r *OutboundRepository) List() ([]models.OutboundTransaction, error) {
	txs, _, err := loadCollection[models.OutboundTransaction](r.store, database.KeyOutbound)
	return txs, err
}

func (r *OutboundRepository) SaveAll(txs []models.OutboundTransaction) error {
	return saveCollection(r.store, database.KeyOutbound, txs)
}

// FindByRequestNumber returns the lines of one dispatch in stored order.
func (r *OutboundRepository) FindByRequestNumber(requestNumber string) ([]models.OutboundTransaction, error) {
	txs, err := r.List()
	if err != nil {
		return nil, err
	}

	lines := []models.OutboundTransaction{}
	for _, tx := range txs {
		if tx.RequestNumber == requestNumber {
			lines = append(lines, tx)
		}
	}
	return lines, nil
}
