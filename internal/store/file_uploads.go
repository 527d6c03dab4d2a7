package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/models"
)

const (
	// ProductUploadsSubdir is the directory under the upload root holding
	// product images.
	ProductUploadsSubdir = "products"

	// UploadsURLPrefix is the URL path the upload root is served from.
	UploadsURLPrefix = "/uploads"

	maxUploadNameAttempts = 8
	maxBaseNameLength     = 100
	maxExtLength          = 10
)

// Stamper hands out strictly increasing unix-millisecond stamps. When the
// clock stalls or goes backwards the stamp keeps advancing by one.
type Stamper struct {
	now  func() time.Time
	last atomic.Int64
}

// NewStamper creates a Stamper reading the wall clock.
func NewStamper() *Stamper {
	return &Stamper{now: time.Now}
}

// Next returns a stamp greater than every stamp returned before.
func (s *Stamper) Next() int64 {
	for {
		last := s.last.Load()
		next := max(s.now().UnixMilli(), last+1)
		if s.last.CompareAndSwap(last, next) {
			return next
		}
	}
}

// fileUploadStorage stores uploads below root/products.
type fileUploadStorage struct {
	root   string
	dir    string
	stamps *Stamper
	logger *logger.Logger
}

// NewFileUploadStorage creates the product upload directory under root when
// missing and returns an [UploadStorage] writing into it.
func NewFileUploadStorage(root string, log *logger.Logger) (UploadStorage, error) {
	dir := filepath.Join(root, ProductUploadsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}
	log.Debug().Str("dir", dir).Msg("creating file upload storage")

	return &fileUploadStorage{
		root:   root,
		dir:    dir,
		stamps: NewStamper(),
		logger: log,
	}, nil
}

func (s *fileUploadStorage) Root() string {
	return s.root
}

// Save writes r to a new file named {stamp}-{sanitized-base}{ext}. Existing
// files are never overwritten: a name collision retries with the next stamp.
func (s *fileUploadStorage) Save(ctx context.Context, originalName, contentType string, r io.Reader) (models.UploadArtifact, error) {
	log := logger.FromContext(ctx)
	base, ext := SanitizeFileName(originalName)

	for range maxUploadNameAttempts {
		if err := ctx.Err(); err != nil {
			return models.UploadArtifact{}, err
		}

		name := strconv.FormatInt(s.stamps.Next(), 10) + "-" + base + ext
		target := filepath.Join(s.dir, name)

		file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			log.Warn().Str("name", name).Msg("upload name collision, retrying")
			continue
		}
		if err != nil {
			return models.UploadArtifact{}, fmt.Errorf("error creating upload file: %w", err)
		}

		size, err := io.Copy(file, r)
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(target)
			return models.UploadArtifact{}, fmt.Errorf("error writing upload file: %w", err)
		}

		return models.UploadArtifact{
			OriginalName: originalName,
			StoredName:   name,
			Path:         target,
			PublicPath:   path.Join(UploadsURLPrefix, ProductUploadsSubdir, name),
			ContentType:  contentType,
			Size:         size,
		}, nil
	}

	return models.UploadArtifact{}, ErrUploadNameExhausted
}

// SanitizeFileName splits a client supplied file name into a safe base name
// and extension. Directory components are dropped, whitespace runs become
// "-", every character outside [A-Za-z0-9._-] is removed and ".." sequences
// are collapsed. The extension keeps its case. The base is never empty.
func SanitizeFileName(name string) (base, ext string) {
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Base(name)
	if name == "." || name == "/" {
		name = ""
	}

	ext = path.Ext(name)
	base = strings.TrimSuffix(name, ext)

	base = strings.Join(strings.Fields(base), "-")
	base = keepSafe(base)
	for strings.Contains(base, "..") {
		base = strings.ReplaceAll(base, "..", ".")
	}
	if len(base) > maxBaseNameLength {
		base = base[:maxBaseNameLength]
	}
	base = strings.Trim(base, ".")
	if base == "" {
		base = "file"
	}

	ext = keepSafe(strings.TrimPrefix(ext, "."))
	ext = strings.ReplaceAll(ext, ".", "")
	if ext == "" || len(ext) > maxExtLength {
		return base, ""
	}
	return base, "." + ext
}

func keepSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		}
		return -1
	}, s)
}
