package middleware

import (
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: name, Header: header, Size: size}
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	u := NewUploader(t.TempDir())

	_, err := u.Save(nil, fileHeader("huge.png", "image/png", CategoryImage.MaxBytes+1), "avatar", CategoryImage)
	require.Error(t, err)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestSaveRejectsDisallowedMIME(t *testing.T) {
	u := NewUploader(t.TempDir())

	_, err := u.Save(nil, fileHeader("script.sh", "application/x-sh", 100), "avatar", CategoryImage)
	require.Error(t, err)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "File type not allowed: application/x-sh", fe.Message)
}

func TestRemoveRefusesPathsOutsideRoot(t *testing.T) {
	u := NewUploader("uploads")

	require.Error(t, u.Remove("/etc/passwd"))
	require.Error(t, u.Remove("/uploads/../secret"))
}

func TestRemoveDeletesStoredFile(t *testing.T) {
	root := "uploads-test"
	require.NoError(t, os.MkdirAll(filepath.Join(root, "documents"), 0o755))
	t.Cleanup(func() { os.RemoveAll(root) })

	target := filepath.Join(root, "documents", "report.pdf")
	require.NoError(t, os.WriteFile(target, []byte("stub"), 0o644))

	u := NewUploader(root)
	require.NoError(t, u.Remove("/"+root+"/documents/report.pdf"))
	_, err := os.Stat(target)
	require.True(t, os.IsNotExist(err))
}

func TestDocumentCategoryAcceptsOfficeFormats(t *testing.T) {
	require.True(t, CategoryDocument.MIME["application/pdf"])
	require.True(t, CategoryDocument.MIME["application/vnd.openxmlformats-officedocument.wordprocessingml.document"])
	require.False(t, CategoryDocument.MIME["application/x-sh"])
}
