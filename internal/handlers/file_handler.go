package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"intranet-backend/dto"
	"intranet-backend/internal/middleware"
	"intranet-backend/internal/models"
	"intranet-backend/internal/notify"
	"intranet-backend/internal/repositories"
)

type FileHandler struct {
	Files    repositories.FileRepository
	Users    repositories.UserRepository
	Uploader *middleware.Uploader
	Notifier *notify.Notifier
	Log      *zap.Logger
}

func NewFileHandler(files repositories.FileRepository, users repositories.UserRepository, uploader *middleware.Uploader, notifier *notify.Notifier, log *zap.Logger) *FileHandler {
	return &FileHandler{Files: files, Users: users, Uploader: uploader, Notifier: notifier, Log: log}
}

// @Summary List own files
// @Tags files
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /files [get]
func (h *FileHandler) List(c *fiber.Ctx) error {
	q := parsePage(c)
	files, total, err := h.Files.List(c.Context(), bson.M{"owner": uidFrom(c)}, q)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(files, q.Paginate(total)))
}

// @Summary List files shared with the caller
// @Tags files
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /files/shared [get]
func (h *FileHandler) ListShared(c *fiber.Ctx) error {
	q := parsePage(c)
	files, total, err := h.Files.List(c.Context(), bson.M{"shared_with": uidFrom(c)}, q)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(files, q.Paginate(total)))
}

// @Summary Get file metadata
// @Tags files
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /files/{id} [get]
func (h *FileHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	file, err := h.Files.FindByID(c.Context(), id)
	if err != nil {
		return err
	}

	user := userFrom(c)
	if file.Owner != user.ID && !file.SharedTo(user.ID) && !user.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Not authorized to access this file")
	}

	view := dto.FileView{File: file}
	if owner, err := h.Users.FindByID(c.Context(), file.Owner); err == nil {
		brief := dto.BriefOf(owner)
		view.OwnerInfo = &brief
	}
	return c.JSON(dto.OK(view))
}

// @Summary Upload documents
// @Tags files
// @Accept mpfd
// @Produce json
// @Success 201 {object} dto.Response
// @Router /files [post]
func (h *FileHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No files uploaded")
	}
	headers := form.File["documents"]
	if len(headers) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No files uploaded")
	}

	uid := uidFrom(c)
	var group, department *bson.ObjectID
	if raw := c.FormValue("group"); raw != "" {
		id, err := bson.ObjectIDFromHex(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid group id")
		}
		group = &id
	}
	if raw := c.FormValue("department"); raw != "" {
		id, err := bson.ObjectIDFromHex(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid department id")
		}
		department = &id
	}

	var files []models.File
	for _, fh := range headers {
		url, err := h.Uploader.Save(c, fh, "documents", middleware.CategoryDocument)
		if err != nil {
			return err
		}
		file := models.File{
			Name:       fh.Filename,
			Type:       fh.Header.Get("Content-Type"),
			Size:       fh.Size,
			URL:        url,
			Owner:      uid,
			Group:      group,
			Department: department,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		id, err := h.Files.Insert(c.Context(), file)
		if err != nil {
			return err
		}
		file.ID = id
		files = append(files, file)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKList(files, len(files)))
}

// @Summary Delete a file
// @Tags files
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /files/{id} [delete]
func (h *FileHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	file, err := h.Files.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	user := userFrom(c)
	if file.Owner != user.ID && !user.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Not authorized to delete this file")
	}

	if err := h.Files.Delete(c.Context(), id); err != nil {
		return err
	}
	// Disk cleanup is best effort. The document is already gone.
	if err := h.Uploader.Remove(file.URL); err != nil {
		h.Log.Warn("stored file unlink failed", zap.String("url", file.URL), zap.Error(err))
	}
	return c.JSON(dto.OKMessage("File deleted", nil))
}

// @Summary Share a file with a user
// @Tags files
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /files/{id}/share [post]
func (h *FileHandler) Share(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	file, err := h.Files.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	uid := uidFrom(c)
	if file.Owner != uid {
		return fiber.NewError(fiber.StatusForbidden, "Only the owner can share a file")
	}

	var body dto.ShareFileRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	target, err := bson.ObjectIDFromHex(body.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}
	if file.SharedTo(target) {
		return fiber.NewError(fiber.StatusBadRequest, "File already shared with this user")
	}
	if _, err := h.Users.FindByID(c.Context(), target); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	if err := h.Files.Share(c.Context(), id, []bson.ObjectID{target}); err != nil {
		return err
	}

	h.Notifier.Notify(c.Context(), target, notify.TypeFileShare,
		userFrom(c).Name+" shared a file with you: "+file.Name,
		models.EntityRef{Type: "file", ID: id})
	return c.JSON(dto.OKMessage("File shared", nil))
}

// @Summary Revoke a file share
// @Tags files
// @Produce json
// @Param id path string true "Object id"
// @Param userId path string true "User id"
// @Success 200 {object} dto.Response
// @Router /files/{id}/share/{userId} [delete]
func (h *FileHandler) Unshare(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	target, err := paramID(c, "userId")
	if err != nil {
		return err
	}
	file, err := h.Files.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if file.Owner != uidFrom(c) {
		return fiber.NewError(fiber.StatusForbidden, "Only the owner can manage sharing")
	}
	if !file.SharedTo(target) {
		return fiber.NewError(fiber.StatusBadRequest, "File is not shared with this user")
	}

	remaining := make([]bson.ObjectID, 0, len(file.SharedWith))
	for _, uid := range file.SharedWith {
		if uid != target {
			remaining = append(remaining, uid)
		}
	}
	if _, err := h.Files.Update(c.Context(), id, bson.M{"shared_with": remaining}); err != nil {
		return err
	}
	return c.JSON(dto.OKMessage("Sharing revoked", nil))
}
