package models

import "warehouse-app/types"

type InboundSource string

const (
	SourceKontrakUID InboundSource = "Kontrak UID"
	SourceKontrakUP3 InboundSource = "Kontrak UP3"
	SourceSTO        InboundSource = "STO"
	SourceLainLain   InboundSource = "Lain-Lain"
)

var InboundSources = []InboundSource{SourceKontrakUID, SourceKontrakUP3, SourceSTO, SourceLainLain}

func (s InboundSource) Valid() bool {
	for _, src := range InboundSources {
		if s == src {
			return true
		}
	}
	return false
}

// InboundTransaction is one posted line of an inbound batch. Lines are never
// edited or removed once written.
type InboundTransaction struct {
	ID             types.SnowflakeID `json:"id"`
	Date           string            `json:"date"`
	ContractNumber string            `json:"contract_number"`
	Source         InboundSource     `json:"source"`
	MaterialID     string            `json:"material_id"`
	VolumeIn       int               `json:"volume_in"`
}

type InboundHeader struct {
	Date           string        `json:"date" validate:"required"`
	ContractNumber string        `json:"contract_number" validate:"required"`
	Source         InboundSource `json:"source" validate:"required"`
}

type InboundLine struct {
	MaterialID string `json:"material_id" validate:"required"`
	VolumeIn   int    `json:"volume_in" validate:"gt=0"`
}
