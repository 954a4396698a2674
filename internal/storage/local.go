package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// LocalUploader пишет файлы в RootDir, раздаются по PublicURL (/files).
type LocalUploader struct {
	RootDir   string
	PublicURL string
	now       func() time.Time
}

func NewLocalUploader(rootDir, publicURL string) *LocalUploader {
	return &LocalUploader{
		RootDir:   filepath.Clean(rootDir),
		PublicURL: publicURL,
		now:       time.Now,
	}
}

func (u *LocalUploader) Upload(ctx context.Context, obj Object) (string, error) {
	if err := ValidateImage(obj.ContentType, obj.Size); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key := objectKey(obj, u.now())
	abs := filepath.Join(u.RootDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}

	f, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	// +1 чтобы заметить тело больше заявленного размера
	n, err := io.Copy(f, io.LimitReader(obj.Body, MaxImageSize+1))
	if err != nil {
		_ = os.Remove(abs)
		return "", fmt.Errorf("write file: %w", err)
	}
	if n > MaxImageSize {
		_ = os.Remove(abs)
		return "", ErrFileTooBig
	}
	return joinURL(u.PublicURL, key), nil
}
