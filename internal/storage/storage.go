package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxImageSize = 5 << 20

var (
	ErrFileTooBig      = errors.New("file size exceeds 5MB limit")
	ErrInvalidFileType = errors.New("only JPEG, PNG, GIF and WEBP images are allowed")
)

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Object is a file to upload.
type Object struct {
	Prefix      string // "profile", "cover", "post"
	ContentType string
	Size        int64
	Body        io.Reader
}

// Uploader кладёт объект и возвращает публичный URL.
type Uploader interface {
	Upload(ctx context.Context, obj Object) (string, error)
}

// ValidateImage checks size and content type before any upload happens.
func ValidateImage(contentType string, size int64) error {
	if size > MaxImageSize {
		return ErrFileTooBig
	}
	if _, ok := allowedContentTypes[normalize(contentType)]; !ok {
		return ErrInvalidFileType
	}
	return nil
}

func normalize(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}

// objectKey: <prefix>/<yyyy>/<mm>/<uuid>.<ext>
func objectKey(obj Object, now time.Time) string {
	prefix := strings.Trim(obj.Prefix, "/")
	if prefix == "" {
		prefix = "uploads"
	}
	ext := allowedContentTypes[normalize(obj.ContentType)]
	return fmt.Sprintf("%s/%d/%02d/%s%s", prefix, now.Year(), int(now.Month()), uuid.New().String(), ext)
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
