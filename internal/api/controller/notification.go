package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/api/response"
	"github.com/alexeykadochnik0v/nextlevel-backend/internal/notification"
)

type notificationController struct {
	Notifications *notification.Service
}

func NewNotificationController(svc *notification.Service) *notificationController {
	return &notificationController{Notifications: svc}
}

// List returns the current user's notifications from the store, newest
// first.
func (nc notificationController) List(c *fiber.Ctx) error {
	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}
	records, err := nc.Notifications.List(c.Context(), user.ID)
	if err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, records, "")
}

type FeedRes struct {
	Notifications interface{} `json:"notifications"`
	UnreadCount   int         `json:"unreadCount"`
}

// Feed returns the live mirror for the current user: the cached list and the
// unread count, without a store round trip once subscribed.
func (nc notificationController) Feed(c *fiber.Ctx) error {
	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}
	// The subscription outlives this request; it belongs to the session,
	// not to the handler.
	feed, err := nc.Notifications.Feed(context.Background(), user.ID)
	if err != nil {
		return response.SendError(c, StatusFromErr(err), err.Error())
	}
	return response.SendSuccess(c, FeedRes{
		Notifications: feed.Notifications(),
		UnreadCount:   feed.UnreadCount(),
	}, "")
}

// MarkAsRead flips the read flag. Always succeeds from the caller's point of
// view; a store failure is logged by the service and the next snapshot
// corrects the cache.
func (nc notificationController) MarkAsRead(c *fiber.Ctx) error {
	if _, err := GetUserFromReq(c); err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}
	nc.Notifications.MarkAsRead(c.Context(), c.Params("id"))
	return response.SendSuccess(c, nil, "notification marked as read")
}

// MarkAllAsRead marks every cached unread notification of the current user.
func (nc notificationController) MarkAllAsRead(c *fiber.Ctx) error {
	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusUnauthorized, err.Error())
	}
	nc.Notifications.MarkAllAsRead(context.Background(), user.ID)
	return response.SendSuccess(c, nil, "notifications marked as read")
}
