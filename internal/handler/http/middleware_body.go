package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/MKhiriev/billiard-pos/internal/app"
	"github.com/MKhiriev/billiard-pos/internal/utils"
)

const (
	mimeJSON       = "application/json"
	mimeForm       = "application/x-www-form-urlencoded"
	mimeMultipart  = "multipart/form-data"
	defaultBodyCap = 2 << 20
)

// withBody reads JSON and URL-encoded bodies eagerly under the configured
// limit and stores the decoded object in the request context. The raw bytes
// are restored on r.Body. Multipart bodies are left to the upload decoder.
func (h *Handler) withBody(next http.Handler) http.Handler {
	limit := h.options.BodyLimit
	if limit <= 0 {
		limit = defaultBodyCap
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if mediaType != mimeJSON && mediaType != mimeForm {
			next.ServeHTTP(w, r)
			return
		}

		if r.ContentLength > limit {
			h.fail(w, r, app.New(app.KindPayloadTooLarge, app.MsgPayloadTooLarge))
			return
		}

		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
		if err != nil {
			h.fail(w, r, err)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(raw))

		if len(bytes.TrimSpace(raw)) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		var body map[string]any
		if mediaType == mimeJSON {
			body, err = decodeJSONObject(raw)
		} else {
			body, err = decodeForm(raw)
		}
		if err != nil {
			h.fail(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithBody(r.Context(), body)))
	})
}

func decodeJSONObject(raw []byte) (map[string]any, error) {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, app.Wrap(app.KindBadRequest, app.MsgInvalidJSON, err)
	}
	body, ok := decoded.(map[string]any)
	if !ok {
		return nil, ErrBodyNotObject
	}
	return body, nil
}

// decodeForm maps every form key to its value, or to the list of values
// when the key repeats.
func decodeForm(raw []byte) (map[string]any, error) {
	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, app.Wrap(app.KindBadRequest, "Invalid form data", err)
	}

	body := make(map[string]any, len(values))
	for key, vs := range values {
		if len(vs) == 1 {
			body[key] = vs[0]
			continue
		}
		list := make([]any, len(vs))
		for i, v := range vs {
			list[i] = v
		}
		body[key] = list
	}
	return body, nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == mimeMultipart
}
