package models

// DispatchNote is the data behind a printed Surat Jalan.
type DispatchNote struct {
	Reference         string             `json:"reference"`
	RequestNumber     string             `json:"request_number"`
	Date              string             `json:"date"`
	RecipientName     string             `json:"recipient_name"`
	Purpose           string             `json:"purpose"`
	K7Number          string             `json:"k7_number"`
	ReservationNumber string             `json:"reservation_number"`
	Tug9Number        string             `json:"tug9_number,omitempty"`
	DriverName        string             `json:"driver_name,omitempty"`
	VehicleType       VehicleType        `json:"vehicle_type,omitempty"`
	LicensePlate      string             `json:"license_plate,omitempty"`
	Lines             []DispatchNoteLine `json:"lines"`
}

type DispatchNoteLine struct {
	No             int    `json:"no"`
	MaterialID     string `json:"material_id"`
	MaterialNumber string `json:"material_number"`
	MaterialName   string `json:"material_name"`
	Unit           string `json:"unit"`
	Volume         int    `json:"volume"`
	VolumeText     string `json:"volume_text"`
}
