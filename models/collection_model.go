package models

import (
	"time"

	"gorm.io/datatypes"
)

// Collection holds one whole serialized collection per key.
type Collection struct {
	Key       string         `gorm:"column:collection_key;primaryKey;size:64"`
	Payload   datatypes.JSON `gorm:"column:payload"`
	UpdatedAt time.Time
}
