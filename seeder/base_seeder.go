package seed

import "warehouse-app/models"

// DefaultMaterials is written on the first catalog read of an empty store.
func DefaultMaterials() []models.Material {
	return []models.Material{
		{ID: "1", MaterialNumber: "MTR-001", MaterialName: "Kabel Twisted AL 3x70+1x50 mm2", Unit: "Meter", CurrentStock: 1200},
		{ID: "2", MaterialNumber: "MTR-002", MaterialName: "Isolator Tumpu 20kV", Unit: "Pcs", CurrentStock: 450},
		{ID: "3", MaterialNumber: "MTR-003", MaterialName: "Trafo Distribusi 200kVA", Unit: "Unit", CurrentStock: 12},
		{ID: "4", MaterialNumber: "MTR-004", MaterialName: "Tiang Beton 9 Meter", Unit: "Batang", CurrentStock: 85},
		{ID: "5", MaterialNumber: "MTR-005", MaterialName: "Circuit Breaker 100A", Unit: "Set", CurrentStock: 30},
	}
}

func DefaultUsers() []models.User {
	return []models.User{
		{ID: "1", Username: "admin", Password: "admin123", Role: models.RoleAdmin},
	}
}
