package handlers

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"intranet-backend/dto"
	"intranet-backend/internal/repositories"
)

type AdminHandler struct {
	Users  repositories.UserRepository
	Posts  repositories.PostRepository
	Groups repositories.GroupRepository
	Events repositories.EventRepository
	News   repositories.NewsRepository
	Audit  repositories.ActivityLogRepository

	mu       sync.RWMutex
	settings dto.SystemSettings
}

func NewAdminHandler(users repositories.UserRepository, posts repositories.PostRepository, groups repositories.GroupRepository, events repositories.EventRepository, news repositories.NewsRepository, logs repositories.ActivityLogRepository) *AdminHandler {
	return &AdminHandler{
		Users:  users,
		Posts:  posts,
		Groups: groups,
		Events: events,
		News:   news,
		Audit:  logs,
		settings: dto.SystemSettings{
			SiteName:          "Municipal Intranet",
			Theme:             "light",
			AllowRegistration: true,
			MaxFileSizeMB:     20,
			AllowedFileTypes:  []string{"image", "video", "audio", "document"},
		},
	}
}

// @Summary Get dashboard counters
// @Tags admin
// @Produce json
// @Success 200 {object} dto.Response
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	ctx := c.Context()
	now := time.Now()

	data := dto.DashboardData{}
	var err error
	if data.UserCount, err = h.Users.Count(ctx, bson.M{}); err != nil {
		return err
	}
	if data.ActiveUserCount, err = h.Users.Count(ctx, bson.M{"last_active": bson.M{"$gte": now.AddDate(0, 0, -30)}}); err != nil {
		return err
	}
	if data.PostCount, err = h.Posts.Count(ctx, bson.M{}); err != nil {
		return err
	}
	if data.RecentPostCount, err = h.Posts.Count(ctx, bson.M{"created_at": bson.M{"$gte": now.AddDate(0, 0, -7)}}); err != nil {
		return err
	}
	if data.GroupCount, err = h.Groups.Count(ctx, bson.M{}); err != nil {
		return err
	}
	if data.EventCount, err = h.Events.Count(ctx, bson.M{}); err != nil {
		return err
	}
	if data.UpcomingEventCount, err = h.Events.Count(ctx, bson.M{"start_date": bson.M{"$gte": now}}); err != nil {
		return err
	}
	if data.NewsCount, err = h.News.Count(ctx, bson.M{}); err != nil {
		return err
	}
	if data.RecentActivity, err = h.Audit.Recent(ctx, 10); err != nil {
		return err
	}

	return c.JSON(dto.OK(data))
}

// @Summary List activity logs
// @Tags admin
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /admin/logs [get]
func (h *AdminHandler) Logs(c *fiber.Ctx) error {
	q := parsePage(c)
	filter := bson.M{}
	if action := c.Query("action"); action != "" {
		filter["action"] = action
	}
	if raw := c.Query("user"); raw != "" {
		user, err := bson.ObjectIDFromHex(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
		}
		filter["user"] = user
	}

	entries, total, err := h.Audit.List(c.Context(), filter, q)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(entries, q.Paginate(total)))
}

// @Summary Get system settings
// @Tags admin
// @Produce json
// @Success 200 {object} dto.Response
// @Router /admin/settings [get]
func (h *AdminHandler) Settings(c *fiber.Ctx) error {
	h.mu.RLock()
	settings := h.settings
	h.mu.RUnlock()
	return c.JSON(dto.OK(settings))
}

// Settings are held in memory only. A restart restores the defaults.
//
// @Summary Update system settings
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} dto.Response
// @Router /admin/settings [put]
func (h *AdminHandler) UpdateSettings(c *fiber.Ctx) error {
	var body dto.SystemSettings
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	h.mu.Lock()
	h.settings = body
	h.mu.Unlock()
	return c.JSON(dto.OK(body))
}
