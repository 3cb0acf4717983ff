package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"intranet-backend/dto"
	"intranet-backend/internal/models"
	"intranet-backend/internal/repositories"
)

// galleryApps is the static catalogue of predefined shortcuts.
var galleryApps = []dto.GalleryApp{
	{Name: "Mail", Icon: "mail", URL: "https://mail.example.gov", Category: "communication"},
	{Name: "Calendar", Icon: "calendar", URL: "/events", Category: "productivity"},
	{Name: "Documents", Icon: "folder", URL: "/files", Category: "productivity"},
	{Name: "Directory", Icon: "users", URL: "/departments", Category: "organization"},
	{Name: "News", Icon: "newspaper", URL: "/news", Category: "communication"},
	{Name: "Helpdesk", Icon: "life-buoy", URL: "https://helpdesk.example.gov", Category: "support"},
}

type QuickAccessHandler struct {
	Items repositories.QuickAccessRepository
}

func NewQuickAccessHandler(items repositories.QuickAccessRepository) *QuickAccessHandler {
	return &QuickAccessHandler{Items: items}
}

// @Summary List own shortcuts
// @Tags quick-access
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /quick-access [get]
func (h *QuickAccessHandler) List(c *fiber.Ctx) error {
	items, err := h.Items.ListByUser(c.Context(), uidFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OKList(items, len(items)))
}

// @Summary List the shortcut gallery
// @Tags quick-access
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /quick-access/gallery [get]
func (h *QuickAccessHandler) Gallery(c *fiber.Ctx) error {
	return c.JSON(dto.OKList(galleryApps, len(galleryApps)))
}

// @Summary Create a shortcut
// @Tags quick-access
// @Accept json
// @Produce json
// @Success 201 {object} dto.Response
// @Router /quick-access [post]
func (h *QuickAccessHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateQuickAccessRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	uid := uidFrom(c)
	max, err := h.Items.MaxOrder(c.Context(), uid)
	if err != nil {
		return err
	}

	item := models.QuickAccessItem{
		Name:      body.Name,
		Icon:      body.Icon,
		URL:       body.URL,
		Category:  body.Category,
		User:      uid,
		Order:     max + 1,
		IsCustom:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	id, err := h.Items.Insert(c.Context(), item)
	if err != nil {
		return err
	}
	item.ID = id
	return c.Status(fiber.StatusCreated).JSON(dto.OK(item))
}

// @Summary Update a shortcut
// @Tags quick-access
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /quick-access/{id} [put]
func (h *QuickAccessHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.Items.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if item.User != uidFrom(c) {
		return fiber.NewError(fiber.StatusForbidden, "Not authorized to modify this shortcut")
	}

	var body dto.UpdateQuickAccessRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	set := bson.M{"updated_at": time.Now()}
	if body.Name != "" {
		set["name"] = body.Name
	}
	if body.Icon != "" {
		set["icon"] = body.Icon
	}
	if body.URL != "" {
		set["url"] = body.URL
	}
	if body.Category != "" {
		set["category"] = body.Category
	}

	updated, err := h.Items.Update(c.Context(), id, set)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(updated))
}

// @Summary Delete a shortcut
// @Tags quick-access
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /quick-access/{id} [delete]
//
// Remaining shortcuts are re-compacted into a dense order sequence.
func (h *QuickAccessHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.Items.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	uid := uidFrom(c)
	if item.User != uid {
		return fiber.NewError(fiber.StatusForbidden, "Not authorized to modify this shortcut")
	}

	if err := h.Items.Delete(c.Context(), id); err != nil {
		return err
	}

	remaining, err := h.Items.ListByUser(c.Context(), uid)
	if err != nil {
		return err
	}
	for i, rest := range remaining {
		if rest.Order != i {
			if err := h.Items.SetOrder(c.Context(), rest.ID, uid, i); err != nil {
				return err
			}
		}
	}
	return c.JSON(dto.OKMessage("Shortcut deleted", nil))
}

// @Summary Reorder shortcuts
// @Tags quick-access
// @Accept json
// @Produce json
// @Success 200 {object} dto.Response
// @Router /quick-access/order [post]
func (h *QuickAccessHandler) Reorder(c *fiber.Ctx) error {
	var body dto.ReorderRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	uid := uidFrom(c)
	for _, entry := range body.Order {
		id, err := bson.ObjectIDFromHex(entry.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid shortcut id")
		}
		item, err := h.Items.FindByID(c.Context(), id)
		if err != nil {
			return err
		}
		if item.User != uid {
			return fiber.NewError(fiber.StatusForbidden, "Not authorized to modify this shortcut")
		}
		if err := h.Items.SetOrder(c.Context(), id, uid, entry.Order); err != nil {
			return err
		}
	}

	items, err := h.Items.ListByUser(c.Context(), uid)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKList(items, len(items)))
}
