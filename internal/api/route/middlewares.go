package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/api/response"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/domain"
)

// IdentifyUser builds the session identity from the gateway-verified
// headers. Authentication itself happens upstream; this service only
// consumes the resulting identity snapshot.
func IdentifyUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-Id")
		if userID == "" {
			return response.SendError(c, fiber.StatusUnauthorized, "user not identified")
		}
		c.Locals("userInfo", domain.User{
			ID:            userID,
			DisplayName:   c.Get("X-User-Name"),
			PhotoURL:      c.Get("X-User-Photo"),
			Role:          c.Get("X-User-Role"),
			CommunityID:   c.Get("X-Community-Id"),
			CommunityName: c.Get("X-Community-Name"),
		})
		return c.Next()
	}
}

// RequestID tags every request with an id for log correlation.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("requestId", id)
		c.Set("X-Request-Id", id)
		return c.Next()
	}
}

// RecoverPanic turns a handler panic into a 500 instead of killing the
// worker.
func RecoverPanic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				logrus.Error(r)
				_ = response.SendError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
		}()
		return c.Next()
	}
}
