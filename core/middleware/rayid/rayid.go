package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the request's ray id.
const Header = "X-Ray-Id"

// New returns a middleware that assigns every request a unique ray id,
// stored in locals for log correlation and echoed in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals("ray_id", id)
		c.Set(Header, id)
		return c.Next()
	}
}
