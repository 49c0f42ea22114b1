package database

import (
	"testing"

	"warehouse-app/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreMissingKey(t *testing.T) {
	s := NewMemoryStore()

	payload, ok, err := s.Get(KeyMaterials)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, payload)
}

func TestMemoryStoreCopiesPayload(t *testing.T) {
	s := NewMemoryStore()
	in := []byte(`[1,2]`)
	require.NoError(t, s.Put(KeyInbound, in))

	in[0] = 'x'
	got, ok, err := s.Get(KeyInbound)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[1,2]`, string(got))

	got[0] = 'y'
	again, _, _ := s.Get(KeyInbound)
	assert.Equal(t, `[1,2]`, string(again))
}

func withDriver(t *testing.T, driver string) {
	t.Helper()
	prev := config.DBDriver
	config.DBDriver = driver
	config.DBHost, config.DBPort, config.DBUser, config.DBPassword = "db", "5432", "wh", "secret"
	t.Cleanup(func() { config.DBDriver = prev })
}

func TestDSNPerDriver(t *testing.T) {
	withDriver(t, "postgres")
	dsn, dialector, err := getDSNAndDialector("warehouse")
	require.NoError(t, err)
	assert.NotNil(t, dialector)
	assert.Equal(t, "host=db user=wh password=secret dbname=warehouse port=5432 sslmode=disable", dsn)

	withDriver(t, "mysql")
	dsn, _, err = getDSNAndDialector("warehouse")
	require.NoError(t, err)
	assert.Equal(t, "wh:secret@tcp(db:5432)/warehouse?charset=utf8mb4&parseTime=True&loc=Local", dsn)

	withDriver(t, "mssql")
	dsn, _, err = getDSNAndDialector("warehouse")
	require.NoError(t, err)
	assert.Equal(t, "sqlserver://wh:secret@db:5432?database=warehouse", dsn)
}

func TestUnsupportedDriver(t *testing.T) {
	withDriver(t, "oracle")

	_, _, err := getDSNAndDialector("warehouse")
	assert.ErrorIs(t, err, ErrUnsupportedDriver)

	_, err = OpenStore()
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestOpenStoreMemory(t *testing.T) {
	withDriver(t, "memory")

	s, err := OpenStore()
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
}
