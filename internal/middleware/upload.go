package middleware

import (
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadCategory binds an upload field to its destination directory,
// size ceiling, and MIME allow-list.
type UploadCategory struct {
	Dir      string
	MaxBytes int64
	MIME     map[string]bool
}

var imageMIME = mimeSet(
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
)

var (
	// Avatars, post media, news media and group imagery are images only.
	CategoryImage = UploadCategory{
		Dir:      "images",
		MaxBytes: 5 << 20,
		MIME:     imageMIME,
	}

	// Chat attachments also allow video, audio and PDF.
	CategoryMessage = UploadCategory{
		Dir:      "messages",
		MaxBytes: 10 << 20,
		MIME: merge(imageMIME, mimeSet(
			"video/mp4",
			"video/quicktime",
			"audio/mpeg",
			"audio/wav",
			"application/pdf",
		)),
	}

	// The document library accepts office formats on top of everything else.
	CategoryDocument = UploadCategory{
		Dir:      "documents",
		MaxBytes: 20 << 20,
		MIME: merge(imageMIME, mimeSet(
			"video/mp4",
			"audio/mpeg",
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"application/vnd.ms-excel",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			"application/vnd.ms-powerpoint",
			"application/vnd.openxmlformats-officedocument.presentationml.presentation",
			"text/plain",
			"text/csv",
		)),
	}
)

func mimeSet(types ...string) map[string]bool {
	set := make(map[string]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}

func merge(maps ...map[string]bool) map[string]bool {
	out := map[string]bool{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// Uploader saves multipart files under a root directory using
// collision-free generated names.
type Uploader struct {
	Root string
}

func NewUploader(root string) *Uploader {
	return &Uploader{Root: root}
}

// Save validates one file against the category and writes it to disk.
// It returns the public URL path of the stored file.
func (u *Uploader) Save(c *fiber.Ctx, fh *multipart.FileHeader, field string, cat UploadCategory) (string, error) {
	if fh.Size > cat.MaxBytes {
		return "", fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("File too large. Maximum size is %dMB", cat.MaxBytes>>20))
	}
	contentType := fh.Header.Get("Content-Type")
	if !cat.MIME[contentType] {
		return "", fiber.NewError(fiber.StatusBadRequest, "File type not allowed: "+contentType)
	}

	dir := filepath.Join(u.Root, cat.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), uuid.NewString(), ext)
	if err := c.SaveFile(fh, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return "/" + strings.Join([]string{u.Root, cat.Dir, name}, "/"), nil
}

// SaveAll stores every file under the form field, failing fast on the
// first invalid one.
func (u *Uploader) SaveAll(c *fiber.Ctx, field string, cat UploadCategory) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	files := form.File[field]

	var urls []string
	for _, fh := range files {
		url, err := u.Save(c, fh, field, cat)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// Remove unlinks a previously stored file given its public URL path.
// The path is cleaned before the root check so traversal segments
// cannot escape the upload directory.
func (u *Uploader) Remove(url string) error {
	rel := path.Clean(strings.TrimPrefix(url, "/"))
	if !strings.HasPrefix(rel, u.Root+"/") {
		return fmt.Errorf("refusing to remove file outside upload root: %s", url)
	}
	return os.Remove(filepath.FromSlash(rel))
}
