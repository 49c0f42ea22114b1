package repositories

import (
	"strings"

	"warehouse-app/controllers/idgen"
	"warehouse-app/database"
	"warehouse-app/models"
	seed "warehouse-app/seeder"
)

type MaterialRepository struct {
	store database.Store
}

func NewMaterialRepository(store database.Store) *MaterialRepository {
	return &MaterialRepository{store: store}
}

// List returns the catalog, writing the default materials first when the
// store has none.
func (r *MaterialRepository) List() ([]models.Material, error) {
	materials, ok, err := loadCollection[models.Material](r.store, database.KeyMaterials)
	if err != nil {
		return nil, err
	}
	if ok {
		return materials, nil
	}

	materials = seed.DefaultMaterials()
	if err := r.SaveAll(materials); err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *MaterialRepository) SaveAll(materials []models.Material) error {
	return saveCollection(r.store, database.KeyMaterials, materials)
}

func (r *MaterialRepository) Find(id string) (*models.Material, error) {
	materials, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range materials {
		if materials[i].ID == id {
			return &materials[i], nil
		}
	}
	return nil, nil
}

// Search matches q case-insensitively against material name or number.
func (r *MaterialRepository) Search(q string) ([]models.Material, error) {
	materials, err := r.List()
	if err != nil {
		return nil, err
	}

	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return materials, nil
	}

	result := []models.Material{}
	for _, m := range materials {
		if strings.Contains(strings.ToLower(m.MaterialName), q) ||
			strings.Contains(strings.ToLower(m.MaterialNumber), q) {
			result = append(result, m)
		}
	}
	return result, nil
}

func (r *MaterialRepository) Add(input models.MaterialInput) (models.Material, error) {
	materials, err := r.List()
	if err != nil {
		return models.Material{}, err
	}

	material := newMaterial(input)
	if err := r.SaveAll(append(materials, material)); err != nil {
		return models.Material{}, err
	}
	return material, nil
}

// Update merges patch into the material with id. Unknown ids are ignored.
func (r *MaterialRepository) Update(id string, patch models.MaterialPatch) error {
	materials, err := r.List()
	if err != nil {
		return err
	}
	for i := range materials {
		if materials[i].ID == id {
			materials[i] = patch.Apply(materials[i])
		}
	}
	return r.SaveAll(materials)
}

func (r *MaterialRepository) Remove(id string) error {
	materials, err := r.List()
	if err != nil {
		return err
	}

	kept := make([]models.Material, 0, len(materials))
	for _, m := range materials {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	return r.SaveAll(kept)
}

// BulkAdd appends every input with a fresh id in a single write.
func (r *MaterialRepository) BulkAdd(inputs []models.MaterialInput) ([]models.Material, error) {
	materials, err := r.List()
	if err != nil {
		return nil, err
	}

	added := make([]models.Material, 0, len(inputs))
	for _, in := range inputs {
		added = append(added, newMaterial(in))
	}
	if err := r.SaveAll(append(materials, added...)); err != nil {
		return nil, err
	}
	return added, nil
}

func newMaterial(in models.MaterialInput) models.Material {
	return models.Material{
		ID:             idgen.NewUUID(),
		MaterialNumber: in.MaterialNumber,
		MaterialName:   in.MaterialName,
		Unit:           in.Unit,
		CurrentStock:   in.CurrentStock,
	}
}
