package database

import "errors"

// Keys of the four persisted collections.
const (
	KeyMaterials = "warehouse_materials"
	KeyInbound   = "warehouse_inbound"
	KeyOutbound  = "warehouse_outbound"
	KeyUsers     = "warehouse_users"
)

// DriverMemory keeps collections in process memory only.
const DriverMemory = "memory"

var ErrUnsupportedDriver = errors.New("unsupported DB_DRIVER")

// Store holds whole serialized collections by key. A missing key reports
// ok == false with a nil error.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, payload []byte) error
}
