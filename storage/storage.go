// Package storage persists uploaded photos on local disk. Files are served
// back by the HTTP server under /uploads and referenced by public URL.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Store struct {
	Dir     string
	BaseURL string // e.g. http://localhost:8080
}

func New(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

// SavePhoto writes an uploaded file as <prefix>-<uuid>.<ext> and returns its
// public URL.
func (s *Store) SavePhoto(fh *multipart.FileHeader, prefix string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	name := fmt.Sprintf("%s-%s%s", sanitize(prefix), uuid.NewString(), ext)

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return s.BaseURL + "/uploads/" + name, nil
}

// sanitize keeps file names path-safe; anything odd collapses to "photo".
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "photo"
	}
	return b.String()
}
