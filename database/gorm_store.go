package database

import (
	"errors"
	"fmt"
	"time"

	"warehouse-app/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps one row per collection key in the collections table.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Get(key string) ([]byte, bool, error) {
	var row models.Collection
	err := s.DB.Where("collection_key = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load collection %s: %w", key, err)
	}
	return []byte(row.Payload), true, nil
}

func (s *GormStore) Put(key string, payload []byte) error {
	row := models.Collection{
		Key:       key,
		Payload:   datatypes.JSON(payload),
		UpdatedAt: time.Now(),
	}

	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save collection %s: %w", key, err)
	}
	return nil
}
