package controllers

import (
	"fmt"

	"warehouse-app/models"
	"warehouse-app/utils"

	"github.com/go-playground/validator"
)

var validate = validator.New()

type inboundRequest struct {
	models.InboundHeader
	Items []models.InboundLine `json:"items" validate:"required,min=1,dive"`
}

type outboundRequest struct {
	models.OutboundHeader
	Items []models.OutboundLine `json:"items" validate:"required,min=1,dive"`
}

func validateInbound(req inboundRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	if _, err := utils.ParseDate(req.Date); err != nil {
		return fmt.Errorf("invalid date %q", req.Date)
	}
	if !req.Source.Valid() {
		return fmt.Errorf("invalid source %q", req.Source)
	}

	seen := map[string]bool{}
	for _, item := range req.Items {
		if seen[item.MaterialID] {
			return fmt.Errorf("material %s listed more than once", item.MaterialID)
		}
		seen[item.MaterialID] = true
	}
	return nil
}

// validateOutbound also checks every line against current stock.
func validateOutbound(req outboundRequest, materials []models.Material) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	if _, err := utils.ParseDate(req.Date); err != nil {
		return fmt.Errorf("invalid date %q", req.Date)
	}
	if req.VehicleType != "" && !req.VehicleType.Valid() {
		return fmt.Errorf("invalid vehicle type %q", req.VehicleType)
	}

	stock := map[string]models.Material{}
	for _, m := range materials {
		if _, ok := stock[m.ID]; !ok {
			stock[m.ID] = m
		}
	}

	seen := map[string]bool{}
	for _, item := range req.Items {
		if seen[item.MaterialID] {
			return fmt.Errorf("material %s listed more than once", item.MaterialID)
		}
		seen[item.MaterialID] = true

		m, ok := stock[item.MaterialID]
		if !ok {
			return fmt.Errorf("material %s not found", item.MaterialID)
		}
		if item.VolumeOut > m.CurrentStock {
			return fmt.Errorf("volume %d exceeds stock %d for %s", item.VolumeOut, m.CurrentStock, m.MaterialNumber)
		}
	}
	return nil
}

func validateUserInput(in models.UserInput) error {
	if err := validate.Struct(in); err != nil {
		return err
	}
	if !in.Role.Valid() {
		return fmt.Errorf("invalid role %q", in.Role)
	}
	return nil
}

const emptyImportMessage = "Format CSV tidak valid atau file kosong. Pastikan menggunakan pemisah titik koma (;)"
