package services

import (
	"errors"
	"fmt"

	"warehouse-app/database"
	"warehouse-app/models"
	"warehouse-app/repositories"
	"warehouse-app/utils"
)

var ErrDocumentNotFound = errors.New("dispatch document not found")

const missingMaterial = "N/A"

// DispatchService assembles the Surat Jalan for one request number.
type DispatchService struct {
	materials *repositories.MaterialRepository
	outbound  *repositories.OutboundRepository
	unitCode  string
}

func NewDispatchService(store database.Store, unitCode string) *DispatchService {
	return &DispatchService{
		materials: repositories.NewMaterialRepository(store),
		outbound:  repositories.NewOutboundRepository(store),
		unitCode:  unitCode,
	}
}

func (s *DispatchService) Note(requestNumber string) (models.DispatchNote, error) {
	lines, err := s.outbound.FindByRequestNumber(requestNumber)
	if err != nil {
		return models.DispatchNote{}, err
	}
	if len(lines) == 0 {
		return models.DispatchNote{}, fmt.Errorf("%w: %s", ErrDocumentNotFound, requestNumber)
	}

	return s.NoteFor(lines)
}

// NoteFor builds the note for lines that were just posted. Request numbers
// restart every year, so a freshly posted batch must not be looked up again.
func (s *DispatchService) NoteFor(lines []models.OutboundTransaction) (models.DispatchNote, error) {
	if len(lines) == 0 {
		return models.DispatchNote{}, ErrDocumentNotFound
	}
	materials, err := s.materials.List()
	if err != nil {
		return models.DispatchNote{}, err
	}
	return BuildNote(lines, materials, s.unitCode), nil
}

// BuildNote takes header fields from the first line. lines must not be empty.
func BuildNote(lines []models.OutboundTransaction, materials []models.Material, unitCode string) models.DispatchNote {
	first := lines[0]

	reference := first.RequestNumber + "/" + unitCode
	if date, err := utils.ParseDate(first.Date); err == nil {
		reference = utils.DocumentNumber(first.RequestNumber, unitCode, date)
	}

	byID := make(map[string]models.Material, len(materials))
	for _, m := range materials {
		if _, ok := byID[m.ID]; !ok {
			byID[m.ID] = m
		}
	}

	note := models.DispatchNote{
		Reference:         reference,
		RequestNumber:     first.RequestNumber,
		Date:              first.Date,
		RecipientName:     first.RecipientName,
		Purpose:           first.Purpose,
		K7Number:          first.K7Number,
		ReservationNumber: first.ReservationNumber,
		Tug9Number:        first.Tug9Number,
		DriverName:        first.DriverName,
		VehicleType:       first.VehicleType,
		LicensePlate:      first.LicensePlate,
		Lines:             make([]models.DispatchNoteLine, 0, len(lines)),
	}

	for i, tx := range lines {
		line := models.DispatchNoteLine{
			No:             i + 1,
			MaterialID:     tx.MaterialID,
			MaterialNumber: missingMaterial,
			MaterialName:   missingMaterial,
			Volume:         tx.VolumeOut,
			VolumeText:     utils.FormatVolume(tx.VolumeOut),
		}
		if m, ok := byID[tx.MaterialID]; ok {
			line.MaterialNumber = m.MaterialNumber
			line.MaterialName = m.MaterialName
			line.Unit = m.Unit
		}
		note.Lines = append(note.Lines, line)
	}
	return note
}
