package middleware

import (
	"sync"

	"github.com/gofiber/fiber/v2"
)

// SingleWriter lets one mutating request run at a time.
func SingleWriter() fiber.Handler {
	var mu sync.Mutex
	return func(ctx *fiber.Ctx) error {
		switch ctx.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return ctx.Next()
		}
		mu.Lock()
		defer mu.Unlock()
		return ctx.Next()
	}
}
