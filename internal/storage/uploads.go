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

// Store writes uploaded images under a local directory and hands back the
// public URL they are served from.
type Store struct {
	Dir string
}

func New(dir string) *Store {
	return &Store{Dir: dir}
}

// EnsureDir creates the uploads directory if it does not exist yet.
func (s *Store) EnsureDir() error {
	return os.MkdirAll(s.Dir, 0o755)
}

// SaveUpload stores the uploaded file as
// {prefix}_{userID}_{title}_{shortid}{ext}, keeping the original extension.
// The random suffix keeps two uploads with the same title from overwriting
// each other.
func (s *Store) SaveUpload(prefix string, userID uint, title string, fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(fh.Filename)))
	name := fmt.Sprintf("%s_%d_%s_%s%s", prefix, userID, slugify(title), uuid.NewString()[:8], ext)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}

// slugify keeps letters, digits, dashes and underscores; everything else
// (spaces, path separators) becomes an underscore.
func slugify(title string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, title)
}
