package repositories

import (
	"warehouse-app/database"
	"warehouse-app/models"
)

type InboundRepository struct {
	store database.Store
}

func NewInboundRepository(store database.Store) *InboundRepository {
	return &InboundRepository{store: store}
}

func (r *InboundRepository) List() ([]models.InboundTransaction, error) {
	txs, _, err := loadCollection[models.InboundTransaction](r.store, database.KeyInbound)
	return txs, err
}

func (r *InboundRepository) SaveAll(txs []models.InboundTransaction) error {
	return saveCollection(r.store, database.KeyInbound, txs)
}
