package repositories

import (
	"encoding/json"
	"fmt"

	"warehouse-app/database"
)

// loadCollection decodes the collection under key. ok is false when nothing
// has been persisted yet.
func loadCollection[T any](store database.Store, key string) ([]T, bool, error) {
	payload, ok, err := store.Get(key)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return []T{}, false, nil
	}

	items := []T{}
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, true, nil
}

func saveCollection[T any](store database.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Put(key, payload); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
