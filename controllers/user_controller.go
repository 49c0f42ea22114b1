package controllers

import (
	"warehouse-app/models"
	"warehouse-app/services"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func withoutPasswords(users []models.User) []models.User {
	out := make([]models.User, len(users))
	for i, u := range users {
		u.Password = ""
		out[i] = u
	}
	return out
}

func (c *UserController) CreateUser(ctx *fiber.Ctx) error {
	var userInput models.UserInput

	// Parse Body
	if err := ctx.BodyParser(&userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	// Validasi input
	if err := validateUserInput(userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	user, err := c.users.CreateUser(userInput)
	if err != nil {
		return err
	}
	user.Password = ""

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"data":    user,
	})
}

func (c *UserController) GetUserByID(ctx *fiber.Ctx) error {
	user, err := c.users.GetUserByID(ctx.Params("id"))
	if err != nil {
		return err
	}
	if user == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "User not found"})
	}
	user.Password = ""

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    user,
		"success": true,
	})
}

func (c *UserController) GetAllUsers(ctx *fiber.Ctx) error {
	users, err := c.users.GetAllUsers()
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    withoutPasswords(users),
		"total":   len(users),
		"success": true,
	})
}

func (c *UserController) UpdateUser(ctx *fiber.Ctx) error {
	id := ctx.Params("id") // Ambil ID user dari route parameter

	var patch models.UserPatch
	if err := ctx.BodyParser(&patch); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if patch.Username != nil && *patch.Username == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "username cannot be empty"})
	}
	if patch.Role != nil && !patch.Role.Valid() {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid role"})
	}

	// Cek apakah user dengan ID ini ada
	user, err := c.users.GetUserByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	// Password kosong berarti tidak diubah
	if err := c.users.UpdateUser(id, patch); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User updated successfully",
	})
}

// Delete user
func (c *UserController) DeleteUser(ctx *fiber.Ctx) error {
	deleted, err := c.users.DeleteUser(ctx.Params("id"))
	if err != nil {
		return err
	}

	users, err := c.users.GetAllUsers()
	if err != nil {
		return err
	}

	message := "User deleted successfully"
	if !deleted {
		message = "Cannot delete the last remaining user"
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": deleted,
		"message": message,
		"data":    withoutPasswords(users),
	})
}
