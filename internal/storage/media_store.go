package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/Skylark/config"
	"github.com/lshigami/Skylark/internal/apperrors"
)

// PublicPrefix is the URL path under which stored media is served.
const PublicPrefix = "/uploads"

// allowedAudioTypes is the fixed allow-list of upload content types.
var allowedAudioTypes = map[string]bool{
	"audio/flac":   true,
	"audio/x-flac": true,
	"audio/m4a":    true,
	"audio/x-m4a":  true,
	"audio/mp3":    true,
	"audio/mpeg":   true,
	"audio/mpga":   true,
	"audio/mp4":    true,
	"video/mp4":    true,
	"audio/ogg":    true,
	"audio/oga":    true,
	"audio/webm":   true,
	"video/webm":   true,
	"audio/wav":    true,
	"audio/x-wav":  true,
	"audio/wave":   true,
}

// MediaStore writes uploaded blobs under a fixed public directory and hands
// out the server-relative paths used as references by the database.
type MediaStore struct {
	dir string
}

func NewMediaStore(cfg *config.Config) (*MediaStore, error) {
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", cfg.Upload.Dir, err)
	}
	return &MediaStore{dir: cfg.Upload.Dir}, nil
}

func (s *MediaStore) Dir() string {
	return s.dir
}

// Save validates the declared content type against the audio allow-list and
// writes the file under a timestamp-prefixed name. It returns the public
// server-relative path.
func (s *MediaStore) Save(fh *multipart.FileHeader) (string, error) {
	if err := checkContentType(fh); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(fh.Filename))
	if err := s.write(fh, name); err != nil {
		return "", err
	}
	return PublicPrefix + "/" + name, nil
}

// SaveAll stores a batch of uploads. Every file is type-checked before any
// byte is written, so a single rejected file fails the whole batch with
// nothing persisted.
func (s *MediaStore) SaveAll(fhs []*multipart.FileHeader) ([]string, error) {
	for _, fh := range fhs {
		if err := checkContentType(fh); err != nil {
			return nil, err
		}
	}
	paths := make([]string, 0, len(fhs))
	for _, fh := range fhs {
		name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(fh.Filename))
		if err := s.write(fh, name); err != nil {
			return nil, err
		}
		paths = append(paths, PublicPrefix+"/"+name)
	}
	return paths, nil
}

// SaveScratch stores a transient audio file for transcription and returns its
// filesystem path. Scratch files are deleted by the caller once the
// transcription attempt completes.
func (s *MediaStore) SaveScratch(fh *multipart.FileHeader) (string, error) {
	if err := checkContentType(fh); err != nil {
		return "", err
	}
	name := uuid.NewString() + filepath.Ext(fh.Filename)
	if err := s.write(fh, name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}

// Remove deletes a stored file, accepting either a public path or a
// filesystem path.
func (s *MediaStore) Remove(path string) error {
	if rel, ok := strings.CutPrefix(path, PublicPrefix+"/"); ok {
		path = filepath.Join(s.dir, rel)
	}
	return os.Remove(path)
}

func (s *MediaStore) write(fh *multipart.FileHeader, name string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func checkContentType(fh *multipart.FileHeader) error {
	ct := fh.Header.Get("Content-Type")
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if !allowedAudioTypes[strings.ToLower(ct)] {
		return fmt.Errorf("%w: unsupported content type %q for %s", apperrors.ErrValidation, ct, fh.Filename)
	}
	return nil
}
