package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"slices"

	"github.com/MKhiriev/billiard-pos/internal/logger"
)

const (
	uploadField     = "image"
	sniffLen        = 512
	multipartSlack  = 64 << 10
	defaultMaxImage = 5 << 20
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

type uploadResponse struct {
	Path string `json:"path"`
}

// uploadImage stores the file sent in the "image" field of a multipart form
// and answers with its public path.
func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromRequest(r)

	maxSize := h.options.UploadMaxSize
	if maxSize <= 0 {
		maxSize = defaultMaxImage
	}

	if !isMultipart(r) {
		return ErrNoFileUploaded
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartSlack)

	reader, err := r.MultipartReader()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoFileUploaded, err)
	}

	part, err := findFilePart(reader, uploadField)
	if err != nil {
		return err
	}
	defer part.Close()

	content, contentType, err := sniffImage(&sizeLimitedReader{r: part, remaining: maxSize})
	if err != nil {
		return err
	}

	artifact, err := h.services.UploadService.UploadProductImage(r.Context(), part.FileName(), contentType, content)
	if err != nil {
		return err
	}

	log.Debug().Str("original_name", artifact.OriginalName).Str("path", artifact.PublicPath).Msg("upload stored")
	return writeOK(w, r, "Image uploaded", uploadResponse{Path: artifact.PublicPath})
}

// findFilePart skips to the first file part named field.
func findFilePart(reader *multipart.Reader, field string) (*multipart.Part, error) {
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, ErrNoFileUploaded
		}
		if err != nil {
			return nil, err
		}
		if part.FormName() == field && part.FileName() != "" {
			return part, nil
		}
		part.Close()
	}
}

// sniffImage detects the content type from the first bytes of r and returns
// a reader replaying the whole stream.
func sniffImage(r io.Reader) (io.Reader, string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, "", err
	}
	if n == 0 {
		return nil, "", ErrNoFileUploaded
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if !slices.Contains(allowedImageTypes, contentType) {
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, contentType)
	}
	return io.MultiReader(bytes.NewReader(head), r), contentType, nil
}

// sizeLimitedReader fails with ErrUploadTooLarge once more than remaining
// bytes are read.
type sizeLimitedReader struct {
	r         io.Reader
	remaining int64
}

func (l *sizeLimitedReader) Read(p []byte) (int, error) {
	if l.remaining < 0 {
		return 0, ErrUploadTooLarge
	}
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		return n, ErrUploadTooLarge
	}
	return n, err
}
