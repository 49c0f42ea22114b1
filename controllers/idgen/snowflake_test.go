package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIDIsUniqueAndIncreasing(t *testing.T) {
	require.NoError(t, Init(3))

	prev := GenerateID()
	for i := 0; i < 100; i++ {
		next := GenerateID()
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestInitRejectsOutOfRangeNode(t *testing.T) {
	assert.Error(t, Init(-1))
}

func TestNewUUID(t *testing.T) {
	a, b := NewUUID(), NewUUID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
