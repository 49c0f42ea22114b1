package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterialPatchApplyOnlySetFields(t *testing.T) {
	m := Material{ID: "1", MaterialNumber: "MTR-001", MaterialName: "Kabel", Unit: "Meter", CurrentStock: 10}
	stock := -5
	name := "Kabel Twisted"

	got := MaterialPatch{MaterialName: &name, CurrentStock: &stock}.Apply(m)

	assert.Equal(t, "1", got.ID)
	assert.Equal(t, "MTR-001", got.MaterialNumber)
	assert.Equal(t, "Kabel Twisted", got.MaterialName)
	assert.Equal(t, "Meter", got.Unit)
	assert.Equal(t, -5, got.CurrentStock)
}

func TestUserPatchEmptyPasswordKeepsStored(t *testing.T) {
	u := User{ID: "1", Username: "admin", Password: "admin123", Role: RoleAdmin}
	role := RoleStaff

	got := UserPatch{Role: &role}.Apply(u)
	assert.Equal(t, "admin123", got.Password)
	assert.Equal(t, RoleStaff, got.Role)

	got = UserPatch{Password: "baru"}.Apply(u)
	assert.Equal(t, "baru", got.Password)
}

func TestStockLevelBands(t *testing.T) {
	assert.Equal(t, StockLevelLow, StockLevel(-3))
	assert.Equal(t, StockLevelLow, StockLevel(19))
	assert.Equal(t, StockLevelMedium, StockLevel(20))
	assert.Equal(t, StockLevelMedium, StockLevel(99))
	assert.Equal(t, StockLevelNormal, StockLevel(100))
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, SourceSTO.Valid())
	assert.False(t, InboundSource("Gudang").Valid())
	assert.True(t, VehicleLainnya.Valid())
	assert.False(t, VehicleType("Kapal").Valid())
	assert.True(t, RoleStaff.Valid())
	assert.False(t, Role("root").Valid())
}
