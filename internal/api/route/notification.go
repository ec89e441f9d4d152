package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/api/controller"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/notification"
)

func RegisterNotificationRoutes(app *fiber.App, svc *notification.Service) error {
	authMiddleware := IdentifyUser()
	notificationC := controller.NewNotificationController(svc)

	api := app.Group("/notifications")
	api.Get("/", authMiddleware, notificationC.List)
	api.Get("/feed", authMiddleware, notificationC.Feed)
	api.Post("/read-all", authMiddleware, notificationC.MarkAllAsRead)
	api.Post("/:id/read", authMiddleware, notificationC.MarkAsRead)

	return nil
}
