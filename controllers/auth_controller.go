package controllers

import (
	"errors"

	"warehouse-app/services"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	// Parsing request body
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request",
		})
	}

	if input.Username == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Missing required fields",
		})
	}

	token, user, err := c.auth.Login(input.Username, input.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid username or password",
		})
	}
	if err != nil {
		return err
	}

	user.Password = ""
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data": fiber.Map{
			"access_token": token,
			"user":         user,
		},
	})
}

func (c *AuthController) Me(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"user_id":  ctx.Locals("userID"),
			"username": ctx.Locals("username"),
			"role":     ctx.Locals("role"),
		},
	})
}
