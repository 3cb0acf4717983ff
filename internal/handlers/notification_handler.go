package handlers

import (
	"github.com/gofiber/fiber/v2"

	"intranet-backend/dto"
	"intranet-backend/internal/repositories"
)

type NotificationHandler struct {
	Notifications repositories.NotificationRepository
}

func NewNotificationHandler(notifications repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{Notifications: notifications}
}

// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	uid := uidFrom(c)
	q := parsePage(c)
	items, total, err := h.Notifications.ListByRecipient(c.Context(), uid, q)
	if err != nil {
		return err
	}
	unread, err := h.Notifications.CountUnread(c.Context(), uid)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(dto.NotificationList{Notifications: items, Unread: unread}, q.Paginate(total)))
}

// @Summary Get a notification
// @Tags notifications
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /notifications/{id} [get]
func (h *NotificationHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.Notifications.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if item.Recipient != uidFrom(c) {
		return fiber.NewError(fiber.StatusForbidden, "Not authorized to access this notification")
	}
	return c.JSON(dto.OK(item))
}

// @Summary Mark a notification read
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.Notifications.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if item.Recipient != uidFrom(c) {
		return fiber.NewError(fiber.StatusForbidden, "Not authorized to access this notification")
	}

	updated, err := h.Notifications.MarkRead(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(updated))
}

// @Summary Mark all notifications read
// @Tags notifications
// @Accept json
// @Produce json
// @Success 200 {object} dto.Response
// @Router /notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.Notifications.MarkAllRead(c.Context(), uidFrom(c)); err != nil {
		return err
	}
	return c.JSON(dto.OKMessage("All notifications marked as read", nil))
}

// @Summary Delete a notification
// @Tags notifications
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.Notifications.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if item.Recipient != uidFrom(c) {
		return fiber.NewError(fiber.StatusForbidden, "Not authorized to access this notification")
	}

	if err := h.Notifications.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.OKMessage("Notification deleted", nil))
}
