package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bloghub/internal/middleware"
	"bloghub/internal/services"
	"bloghub/internal/storage"
)

// principalID достаёт id из claims; без AuthMiddleware отвечает 401.
func principalID(c *gin.Context) (int64, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok || id <= 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return 0, false
	}
	return id, true
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondValidation(c, services.NewValidationError(name, "must be a positive integer"))
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		respondValidation(c, services.NewValidationError(name, "must be a positive integer"))
		return 0, false
	}
	return n, true
}

type imageFile struct {
	obj  *storage.Object
	file multipart.File
}

func (f *imageFile) Close() {
	if f != nil && f.file != nil {
		_ = f.file.Close()
	}
}

// formImage reads an optional image from a multipart field and validates it.
// Returns nil when the field is absent.
func formImage(c *gin.Context, field string) (*imageFile, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, services.NewValidationError(field, "could not read file")
	}

	contentType := header.Header.Get("Content-Type")
	if err := storage.ValidateImage(contentType, header.Size); err != nil {
		return nil, services.NewValidationError(field, err.Error())
	}
	file, err := header.Open()
	if err != nil {
		return nil, services.NewValidationError(field, "could not read file")
	}
	return &imageFile{
		obj:  &storage.Object{ContentType: contentType, Size: header.Size, Body: file},
		file: file,
	}, nil
}

func (f *imageFile) object() *storage.Object {
	if f == nil {
		return nil
	}
	return f.obj
}
