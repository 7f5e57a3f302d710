package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id assigned to every request.
	RequestIDHeader = "X-Request-Id"
	// RequestIDContextKey is the key under which the id is stored in the
	// Fiber context.
	RequestIDContextKey = "request_id"
)

// RequestID assigns a UUID to each request unless the caller supplied one.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(RequestIDContextKey, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}
