package services

import (
	"errors"
	"fmt"
	"time"

	"warehouse-app/controllers/idgen"
	"warehouse-app/database"
	"warehouse-app/models"
	"warehouse-app/repositories"
	"warehouse-app/types"
	"warehouse-app/utils"
)

var ErrUnsupportedField = errors.New("unsupported outbound field")

// LedgerService posts inbound and outbound batches against the catalog.
// It trusts its input: batches are validated by the caller.
type LedgerService struct {
	materials *repositories.MaterialRepository
	inbound   *repositories.InboundRepository
	outbound  *repositories.OutboundRepository
	now       func() time.Time
}

func NewLedgerService(store database.Store) *LedgerService {
	return &LedgerService{
		materials: repositories.NewMaterialRepository(store),
		inbound:   repositories.NewInboundRepository(store),
		outbound:  repositories.NewOutboundRepository(store),
		now:       time.Now,
	}
}

// SetClock replaces the wall clock used for sequence numbering.
func (s *LedgerService) SetClock(now func() time.Time) {
	s.now = now
}

// PostInbound writes one record per line and raises stock. The transaction
// collection is written before the catalog; if the catalog write fails the
// records stay and are returned together with the error.
func (s *LedgerService) PostInbound(header models.InboundHeader, lines []models.InboundLine) ([]models.InboundTransaction, error) {
	materials, err := s.materials.List()
	if err != nil {
		return nil, err
	}
	existing, err := s.inbound.List()
	if err != nil {
		return nil, err
	}

	created := make([]models.InboundTransaction, 0, len(lines))
	deltas := map[string]int{}
	for _, line := range lines {
		created = append(created, models.InboundTransaction{
			ID:             types.SnowflakeID(idgen.GenerateID()),
			Date:           header.Date,
			ContractNumber: header.ContractNumber,
			Source:         header.Source,
			MaterialID:     line.MaterialID,
			VolumeIn:       line.VolumeIn,
		})
		if _, seen := deltas[line.MaterialID]; !seen {
			deltas[line.MaterialID] = line.VolumeIn
		}
	}

	if err := s.inbound.SaveAll(append(existing, created...)); err != nil {
		return nil, fmt.Errorf("commit inbound transactions: %w", err)
	}
	if err := s.commitMaterials(materials, deltas); err != nil {
		return created, err
	}
	return created, nil
}

// PostOutbound allocates the next request number, writes one record per
// line under it and lowers stock. Stock is not floored at zero.
func (s *LedgerService) PostOutbound(header models.OutboundHeader, lines []models.OutboundLine) ([]models.OutboundTransaction, error) {
	materials, err := s.materials.List()
	if err != nil {
		return nil, err
	}
	existing, err := s.outbound.List()
	if err != nil {
		return nil, err
	}
	sequence := nextSequence(existing, s.now())

	created := make([]models.OutboundTransaction, 0, len(lines))
	deltas := map[string]int{}
	for _, line := range lines {
		created = append(created, models.OutboundTransaction{
			ID:                types.SnowflakeID(idgen.GenerateID()),
			Date:              header.Date,
			RequestNumber:     sequence,
			Tug9Number:        header.Tug9Number,
			K7Number:          header.K7Number,
			ReservationNumber: header.ReservationNumber,
			Purpose:           header.Purpose,
			RecipientName:     header.RecipientName,
			MaterialID:        line.MaterialID,
			VolumeOut:         line.VolumeOut,
			DriverName:        header.DriverName,
			VehicleType:       header.VehicleType,
			LicensePlate:      header.LicensePlate,
		})
		if _, seen := deltas[line.MaterialID]; !seen {
			deltas[line.MaterialID] = -line.VolumeOut
		}
	}

	if err := s.outbound.SaveAll(append(existing, created...)); err != nil {
		return nil, fmt.Errorf("commit outbound transactions: %w", err)
	}
	if err := s.commitMaterials(materials, deltas); err != nil {
		return created, err
	}
	return created, nil
}

// commitMaterials applies at most one delta per material. A batch listing
// the same material twice only counts its first line.
func (s *LedgerService) commitMaterials(materials []models.Material, deltas map[string]int) error {
	for i := range materials {
		if d, ok := deltas[materials[i].ID]; ok {
			materials[i].CurrentStock += d
		}
	}
	if err := s.materials.SaveAll(materials); err != nil {
		return fmt.Errorf("commit materials: %w", err)
	}
	return nil
}

// NextSequence previews the request number the next outbound batch gets.
func (s *LedgerService) NextSequence() (string, error) {
	txs, err := s.outbound.List()
	if err != nil {
		return "", err
	}
	return nextSequence(txs, s.now()), nil
}

// nextSequence counts distinct request numbers among lines dated in the
// year of now. The batch date itself plays no part.
func nextSequence(txs []models.OutboundTransaction, now time.Time) string {
	year := now.Year()
	seen := map[string]struct{}{}
	for _, tx := range txs {
		d, err := utils.ParseDate(tx.Date)
		if err != nil || d.Year() != year {
			continue
		}
		seen[tx.RequestNumber] = struct{}{}
	}
	return fmt.Sprintf("%05d", len(seen)+1)
}

// PatchOutboundField corrects one reference field on one outbound line.
// An unknown id leaves the collection as it was.
func (s *LedgerService) PatchOutboundField(id types.SnowflakeID, field models.OutboundField, value string) error {
	var set func(*models.OutboundTransaction)
	switch field {
	case models.FieldTug9Number:
		set = func(tx *models.OutboundTransaction) { tx.Tug9Number = value }
	case models.FieldK7Number:
		set = func(tx *models.OutboundTransaction) { tx.K7Number = value }
	case models.FieldReservationNumber:
		set = func(tx *models.OutboundTransaction) { tx.ReservationNumber = value }
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedField, field)
	}

	txs, err := s.outbound.List()
	if err != nil {
		return err
	}
	for i := range txs {
		if txs[i].ID == id {
			set(&txs[i])
		}
	}
	return s.outbound.SaveAll(txs)
}

func (s *LedgerService) Inbound() ([]models.InboundTransaction, error) {
	return s.inbound.List()
}

func (s *LedgerService) Outbound() ([]models.OutboundTransaction, error) {
	return s.outbound.List()
}
