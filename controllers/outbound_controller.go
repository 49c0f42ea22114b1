package controllers

import (
	"errors"
	"log"

	"warehouse-app/models"
	"warehouse-app/notification"
	"warehouse-app/repositories"
	"warehouse-app/services"
	"warehouse-app/types"

	"github.com/gofiber/fiber/v2"
)

type OutboundController struct {
	ledger    *services.LedgerService
	dispatch  *services.DispatchService
	materials *repositories.MaterialRepository
	notifier  notification.Notifier
}

func NewOutboundController(ledger *services.LedgerService, dispatch *services.DispatchService, materials *repositories.MaterialRepository, notifier notification.Notifier) *OutboundController {
	return &OutboundController{ledger: ledger, dispatch: dispatch, materials: materials, notifier: notifier}
}

func (c *OutboundController) CreateOutbound(ctx *fiber.Ctx) error {
	var payload outboundRequest

	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payload",
			"error":   err.Error(),
		})
	}

	materials, err := c.materials.List()
	if err != nil {
		return err
	}

	if err := validateOutbound(payload, materials); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	created, err := c.ledger.PostOutbound(payload.OutboundHeader, payload.Items)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to post outbound",
			"error":   err.Error(),
			"data":    created,
		})
	}

	note, err := c.dispatch.NoteFor(created)
	if err != nil {
		return err
	}
	log.Printf("Outbound %s posted with %d lines", note.Reference, len(created))
	c.notifier.DispatchPosted(note)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Outbound posted successfully",
		"data": fiber.Map{
			"transactions": created,
			"document":     note,
		},
	})
}

// GetAllOutbound serves the monitoring table with its search filters.
func (c *OutboundController) GetAllOutbound(ctx *fiber.Ctx) error {
	var filter services.OutboundFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid filter", "error": err.Error()})
	}

	txs, err := c.ledger.Outbound()
	if err != nil {
		return err
	}
	materials, err := c.materials.List()
	if err != nil {
		return err
	}

	result := services.FilterOutbound(txs, materials, filter)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    result,
		"total":   len(result),
	})
}

func (c *OutboundController) GetNextSequence(ctx *fiber.Ctx) error {
	seq, err := c.ledger.NextSequence()
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true, "data": seq})
}

func (c *OutboundController) UpdateOutboundField(ctx *fiber.Ctx) error {
	id, err := types.ParseSnowflakeID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid ID", "error": err.Error()})
	}

	var payload struct {
		Field models.OutboundField `json:"field" validate:"required"`
		Value string               `json:"value"`
	}
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid payload", "error": err.Error()})
	}
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Validation failed", "error": err.Error()})
	}

	err = c.ledger.PatchOutboundField(id, payload.Field, payload.Value)
	if errors.Is(err, services.ErrUnsupportedField) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Field cannot be edited", "error": err.Error()})
	}
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Outbound updated successfully",
	})
}

func (c *OutboundController) GetDocument(ctx *fiber.Ctx) error {
	note, err := c.dispatch.Note(ctx.Params("request_number"))
	if errors.Is(err, services.ErrDocumentNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Document not found"})
	}
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true, "data": note})
}
