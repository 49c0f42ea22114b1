package models

import "warehouse-app/types"

type VehicleType string

const (
	VehiclePickup  VehicleType = "Pickup"
	VehicleMinibus VehicleType = "Minibus"
	VehicleTruck   VehicleType = "Truck"
	VehicleMotor   VehicleType = "Motor"
	VehicleLainnya VehicleType = "Lainnya"
)

var VehicleTypes = []VehicleType{VehiclePickup, VehicleMinibus, VehicleTruck, VehicleMotor, VehicleLainnya}

func (v VehicleType) Valid() bool {
	for _, vt := range VehicleTypes {
		if v == vt {
			return true
		}
	}
	return false
}

// OutboundTransaction is one line of a dispatch. All lines of one posted
// batch share RequestNumber.
type OutboundTransaction struct {
	ID                types.SnowflakeID `json:"id"`
	Date              string            `json:"date"`
	RequestNumber     string            `json:"request_number"`
	Tug9Number        string            `json:"tug9_number,omitempty"`
	K7Number          string            `json:"k7_number"`
	ReservationNumber string            `json:"reservation_number"`
	Purpose           string            `json:"purpose"`
	RecipientName     string            `json:"recipient_name"`
	MaterialID        string            `json:"material_id"`
	VolumeOut         int               `json:"volume_out"`
	DriverName        string            `json:"driver_name,omitempty"`
	VehicleType       VehicleType       `json:"vehicle_type,omitempty"`
	LicensePlate      string            `json:"license_plate,omitempty"`
}

type OutboundHeader struct {
	Date              string      `json:"date" validate:"required"`
	Purpose           string      `json:"purpose" validate:"required"`
	RecipientName     string      `json:"recipient_name" validate:"required"`
	ReservationNumber string      `json:"reservation_number" validate:"required"`
	K7Number          string      `json:"k7_number" validate:"required"`
	Tug9Number        string      `json:"tug9_number"`
	DriverName        string      `json:"driver_name"`
	VehicleType       VehicleType `json:"vehicle_type"`
	LicensePlate      string      `json:"license_plate"`
}

type OutboundLine struct {
	MaterialID string `json:"material_id" validate:"required"`
	VolumeOut  int    `json:"volume_out" validate:"gt=0"`
}

// OutboundField names the reference fields that may be corrected after posting.
type OutboundField string

const (
	FieldTug9Number        OutboundField = "tug9_number"
	FieldK7Number          OutboundField = "k7_number"
	FieldReservationNumber OutboundField = "reservation_number"
)
