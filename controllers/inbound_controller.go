package controllers

import (
	"warehouse-app/services"

	"github.com/gofiber/fiber/v2"
)

type InboundController struct {
	ledger *services.LedgerService
}

func NewInboundController(ledger *services.LedgerService) *InboundController {
	return &InboundController{ledger: ledger}
}

func (c *InboundController) CreateInbound(ctx *fiber.Ctx) error {
	var payload inboundRequest

	// Parse JSON payload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payload",
			"error":   err.Error(),
		})
	}

	if err := validateInbound(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	created, err := c.ledger.PostInbound(payload.InboundHeader, payload.Items)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to post inbound",
			"error":   err.Error(),
			"data":    created,
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Inbound posted successfully",
		"data":    created,
	})
}

func (c *InboundController) GetAllInbound(ctx *fiber.Ctx) error {
	txs, err := c.ledger.Inbound()
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    txs,
		"total":   len(txs),
	})
}
