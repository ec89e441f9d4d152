package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/docstore"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/domain"
)

// GetUserFromReq returns the identity placed in locals by the IdentifyUser
// middleware.
func GetUserFromReq(c *fiber.Ctx) (domain.User, error) {
	user, ok := c.Locals("userInfo").(domain.User)
	if !ok {
		return domain.User{}, errors.New("user not found in request")
	}
	return user, nil
}

// StatusFromErr maps service errors onto HTTP statuses.
func StatusFromErr(err error) int {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return fiber.StatusBadRequest
	}
	switch errors.Cause(err) {
	case docstore.ErrNotFound:
		return fiber.StatusNotFound
	case docstore.ErrConflict:
		return fiber.StatusConflict
	case domain.ErrNotReviewer:
		return fiber.StatusForbidden
	}
	return fiber.StatusInternalServerError
}
