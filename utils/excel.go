package utils

import (
	"fmt"
	"io"
	"strings"

	"warehouse-app/models"

	"github.com/xuri/excelize/v2"
)

const stockSheet = "Stock"

var stockHeader = []interface{}{"Material Number", "Material Name", "Unit", "Stock Level"}

// WriteStockWorkbook writes the catalog as a single-sheet xlsx workbook.
func WriteStockWorkbook(w io.Writer, materials []models.Material) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), stockSheet); err != nil {
		return err
	}

	if err := f.SetSheetRow(stockSheet, "A1", &stockHeader); err != nil {
		return err
	}

	for i, m := range materials {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{m.MaterialNumber, m.MaterialName, m.Unit, m.CurrentStock}
		if err := f.SetSheetRow(stockSheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(stockSheet, "B", "B", 40); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}

// ReadMaterialWorkbook reads the first sheet of an uploaded workbook using
// the CSV column order. The first row is a header.
func ReadMaterialWorkbook(r io.Reader) ([]models.MaterialInput, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	items := []models.MaterialInput{}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		for j := range row {
			row[j] = strings.TrimSpace(row[j])
		}
		if item, ok := materialFromRow(row); ok {
			items = append(items, item)
		}
	}
	return items, nil
}
