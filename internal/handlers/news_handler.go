package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"intranet-backend/dto"
	"intranet-backend/internal/middleware"
	"intranet-backend/internal/models"
	"intranet-backend/internal/notify"
	"intranet-backend/internal/repositories"
)

type NewsHandler struct {
	News     repositories.NewsRepository
	Users    repositories.UserRepository
	Uploader *middleware.Uploader
	Notifier *notify.Notifier
}

func NewNewsHandler(news repositories.NewsRepository, users repositories.UserRepository, uploader *middleware.Uploader, notifier *notify.Notifier) *NewsHandler {
	return &NewsHandler{News: news, Users: users, Uploader: uploader, Notifier: notifier}
}

// @Summary List published news
// @Tags news
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /news [get]
func (h *NewsHandler) List(c *fiber.Ctx) error {
	q := parsePage(c)
	filter := bson.M{"is_published": true}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	items, total, err := h.News.List(c.Context(), filter, q)
	if err != nil {
		return err
	}

	views := make([]dto.NewsView, 0, len(items))
	for _, item := range items {
		views = append(views, h.view(c, item))
	}
	return c.JSON(dto.OKPage(views, q.Paginate(total)))
}

// @Summary Get an article
// @Tags news
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /news/{id} [get]
func (h *NewsHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.News.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(h.view(c, item)))
}

// @Summary List news categories
// @Tags news
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /news/categories [get]
func (h *NewsHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.News.Categories(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.OKList(categories, len(categories)))
}

// @Summary List featured news
// @Tags news
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /news/featured [get]
func (h *NewsHandler) Featured(c *fiber.Ctx) error {
	items, err := h.News.ListFeatured(c.Context(), 5)
	if err != nil {
		return err
	}
	views := make([]dto.NewsView, 0, len(items))
	for _, item := range items {
		views = append(views, h.view(c, item))
	}
	return c.JSON(dto.OKList(views, len(views)))
}

// @Summary Publish an article (admin)
// @Tags news
// @Accept json
// @Produce json
// @Success 201 {object} dto.Response
// @Router /news [post]
func (h *NewsHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateNewsRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	uploads, err := h.Uploader.SaveAll(c, "media", middleware.CategoryImage)
	if err != nil {
		return err
	}
	body.Media = append(body.Media, uploads...)

	published := true
	if body.IsPublished != nil {
		published = *body.IsPublished
	}

	item := models.News{
		Title:       body.Title,
		Content:     body.Content,
		Summary:     body.Summary,
		Author:      uidFrom(c),
		Media:       body.Media,
		Category:    body.Category,
		Tags:        body.Tags,
		IsFeatured:  body.IsFeatured,
		IsPublished: published,
		PublishDate: time.Now(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	id, err := h.News.Insert(c.Context(), item)
	if err != nil {
		return err
	}
	item.ID = id

	if item.IsFeatured && item.IsPublished {
		h.fanoutAll(c, item)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(item))
}

// @Summary Update an article
// @Tags news
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /news/{id} [put]
func (h *NewsHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.News.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	user := userFrom(c)
	if item.Author != user.ID && !user.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Not authorized to update this article")
	}

	var body dto.UpdateNewsRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	uploads, err := h.Uploader.SaveAll(c, "media", middleware.CategoryImage)
	if err != nil {
		return err
	}
	if len(uploads) > 0 {
		body.Media = append(body.Media, uploads...)
	}

	set := bson.M{"updated_at": time.Now()}
	if body.Title != "" {
		set["title"] = body.Title
	}
	if body.Content != "" {
		set["content"] = body.Content
	}
	if body.Summary != "" {
		set["summary"] = body.Summary
	}
	if body.Category != "" {
		set["category"] = body.Category
	}
	if body.Media != nil {
		set["media"] = body.Media
	}
	if body.Tags != nil {
		set["tags"] = body.Tags
	}
	if body.IsFeatured != nil {
		set["is_featured"] = *body.IsFeatured
	}
	if body.IsPublished != nil {
		set["is_published"] = *body.IsPublished
	}

	updated, err := h.News.Update(c.Context(), id, set)
	if err != nil {
		return err
	}

	// Fan out only on the false -> true featured transition.
	if !item.IsFeatured && updated.IsFeatured && updated.IsPublished {
		h.fanoutAll(c, updated)
	}
	return c.JSON(dto.OK(updated))
}

// @Summary Delete an article
// @Tags news
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /news/{id} [delete]
func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.News.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	user := userFrom(c)
	if item.Author != user.ID && !user.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Not authorized to delete this article")
	}

	if err := h.News.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.OKMessage("Article deleted", nil))
}

func (h *NewsHandler) fanoutAll(c *fiber.Ctx, item models.News) {
	users, err := h.Users.ListAll(c.Context())
	if err != nil {
		return
	}
	recipients := make([]bson.ObjectID, 0, len(users))
	for _, user := range users {
		recipients = append(recipients, user.ID)
	}
	h.Notifier.Fanout(c.Context(), item.Author, recipients, notify.TypeNews,
		"Featured news: "+item.Title,
		models.EntityRef{Type: "news", ID: item.ID})
}

func (h *NewsHandler) view(c *fiber.Ctx, item models.News) dto.NewsView {
	view := dto.NewsView{News: item}
	if author, err := h.Users.FindByID(c.Context(), item.Author); err == nil {
		brief := dto.BriefOf(author)
		view.AuthorInfo = &brief
	}
	return view
}
