package controllers

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"warehouse-app/models"
	"warehouse-app/repositories"
	"warehouse-app/services"
	"warehouse-app/utils"

	"github.com/gofiber/fiber/v2"
)

type MaterialController struct {
	materials *repositories.MaterialRepository
	history   *services.HistoryService
}

func NewMaterialController(materials *repositories.MaterialRepository, history *services.HistoryService) *MaterialController {
	return &MaterialController{materials: materials, history: history}
}

type materialView struct {
	models.Material
	StockLevel string `json:"stock_level"`
}

func toMaterialViews(materials []models.Material) []materialView {
	views := make([]materialView, 0, len(materials))
	for _, m := range materials {
		views = append(views, materialView{Material: m, StockLevel: models.StockLevel(m.CurrentStock)})
	}
	return views
}

func (c *MaterialController) GetAllMaterials(ctx *fiber.Ctx) error {
	materials, err := c.materials.Search(ctx.Query("q"))
	if err != nil {
		return err
	}

	total := 0
	for _, m := range materials {
		total += m.CurrentStock
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":     true,
		"data":        toMaterialViews(materials),
		"total":       len(materials),
		"total_stock": total,
	})
}

func (c *MaterialController) CreateMaterial(ctx *fiber.Ctx) error {
	var input models.MaterialInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid payload", "error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Validation failed", "error": err.Error()})
	}

	material, err := c.materials.Add(input)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Material created successfully",
		"data":    material,
	})
}

func (c *MaterialController) UpdateMaterial(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var patch models.MaterialPatch
	if err := ctx.BodyParser(&patch); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid payload", "error": err.Error()})
	}
	if (patch.MaterialNumber != nil && *patch.MaterialNumber == "") || (patch.MaterialName != nil && *patch.MaterialName == "") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Material number and name cannot be empty"})
	}

	existing, err := c.materials.Find(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Material not found"})
	}

	if err := c.materials.Update(id, patch); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Material updated successfully",
		"data":    patch.Apply(*existing),
	})
}

func (c *MaterialController) DeleteMaterial(ctx *fiber.Ctx) error {
	if err := c.materials.Remove(ctx.Params("id")); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Material deleted successfully",
	})
}

// PreviewImport parses an uploaded .csv or .xlsx file without saving it.
func (c *MaterialController) PreviewImport(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "File is required", "error": err.Error()})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	var items []models.MaterialInput
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".csv", ".txt":
		raw, err := io.ReadAll(file)
		if err != nil {
			return err
		}
		items = utils.ParseMaterialCSV(string(raw))
	case ".xlsx":
		items, err = utils.ReadMaterialWorkbook(file)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid workbook", "error": err.Error()})
		}
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Only .csv and .xlsx files are supported"})
	}

	if len(items) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": emptyImportMessage})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    items,
		"total":   len(items),
	})
}

// ConfirmImport saves the rows the client accepted from the preview.
func (c *MaterialController) ConfirmImport(ctx *fiber.Ctx) error {
	var payload struct {
		Items []models.MaterialInput `json:"items" validate:"required,min=1,dive"`
	}
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid payload", "error": err.Error()})
	}
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Validation failed", "error": err.Error()})
	}

	added, err := c.materials.BulkAdd(payload.Items)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("%d materials imported", len(added)),
		"data":    added,
	})
}

func (c *MaterialController) ExportStock(ctx *fiber.Ctx) error {
	materials, err := c.materials.List()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := utils.WriteStockWorkbook(&buf, materials); err != nil {
		return err
	}

	filename := fmt.Sprintf("Stock_Materials_%s.xlsx", time.Now().Format(utils.DateLayout))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Send(buf.Bytes())
}

func (c *MaterialController) GetMaterialHistory(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	material, err := c.materials.Find(id)
	if err != nil {
		return err
	}
	items, err := c.history.HistoryFor(id)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"material": material,
			"history":  items,
		},
	})
}
