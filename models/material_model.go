package models

type Material struct {
	ID             string `json:"id"`
	MaterialNumber string `json:"material_number"`
	MaterialName   string `json:"material_name"`
	Unit           string `json:"unit"`
	CurrentStock   int    `json:"current_stock"`
}

// MaterialInput is a catalog entry before an id is assigned.
type MaterialInput struct {
	MaterialNumber string `json:"material_number" validate:"required"`
	MaterialName   string `json:"material_name" validate:"required"`
	Unit           string `json:"unit"`
	CurrentStock   int    `json:"current_stock"`
}

// MaterialPatch carries the fields an admin edit changes; nil means keep.
type MaterialPatch struct {
	MaterialNumber *string `json:"material_number"`
	MaterialName   *string `json:"material_name"`
	Unit           *string `json:"unit"`
	CurrentStock   *int    `json:"current_stock"`
}

func (p MaterialPatch) Apply(m Material) Material {
	if p.MaterialNumber != nil {
		m.MaterialNumber = *p.MaterialNumber
	}
	if p.MaterialName != nil {
		m.MaterialName = *p.MaterialName
	}
	if p.Unit != nil {
		m.Unit = *p.Unit
	}
	if p.CurrentStock != nil {
		m.CurrentStock = *p.CurrentStock
	}
	return m
}

const (
	StockLevelLow    = "low"
	StockLevelMedium = "medium"
	StockLevelNormal = "normal"
)

// StockLevel is the colour band shown next to a stock figure.
func StockLevel(stock int) string {
	switch {
	case stock < 20:
		return StockLevelLow
	case stock < 100:
		return StockLevelMedium
	default:
		return StockLevelNormal
	}
}
