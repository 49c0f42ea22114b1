package idgen

import (
	"log"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
)

// Init sets the snowflake node number. Calling GenerateID before Init
// falls back to node 1.
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	nodeOnce.Do(func() {})
	node = n
	return nil
}

func GenerateID() int64 {
	nodeOnce.Do(func() {
		if node != nil {
			return
		}
		var err error
		node, err = snowflake.NewNode(1)
		if err != nil {
			log.Fatalf("Failed to init Snowflake: %v", err)
		}
	})
	return node.Generate().Int64()
}

// NewUUID is used for catalog and user ids.
func NewUUID() string {
	return uuid.NewString()
}
