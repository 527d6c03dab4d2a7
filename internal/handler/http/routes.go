package http

import (
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/MKhiriev/billiard-pos/internal/config"
	"github.com/MKhiriev/billiard-pos/internal/store"
	"github.com/go-chi/chi/v5"
)

// Init builds the router: the middleware chain, the static and metrics
// mounts, the enabled route tables and the not-found handlers.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withRequestContext, h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	router.Use(h.withRecover)
	if h.options.Features.Enabled(config.FeatureSecurityHeaders) {
		router.Use(withSecurityHeaders)
	}
	if h.options.Features.Enabled(config.FeatureCompression) {
		router.Use(h.withGZip)
	}
	if h.options.Features.Enabled(config.FeatureCORS) {
		router.Use(h.withCORS)
	}
	if h.limiter != nil {
		router.Use(h.withRateLimit)
	}
	router.Use(h.withTimeout, h.withBody)

	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.handler())
	}
	if h.options.UploadsDir != "" {
		router.Method(http.MethodGet, store.UploadsURLPrefix+"/*", h.uploadsHandler())
	}

	tables := h.tables()

	router.Route(apiPrefix, func(api chi.Router) {
		api.NotFound(h.notFound)
		api.MethodNotAllowed(h.methodNotAllowed)
		if table, ok := tables[apiV1Prefix]; ok {
			api.Route(apiV1Prefix[len(apiPrefix):], table.Register)
		}
	})

	if table, ok := tables["/"]; ok {
		table.Register(router)
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}

// uploadsHandler serves stored uploads. Missing files and directories fall
// through to the not-found page like any other unmatched path.
func (h *Handler) uploadsHandler() http.Handler {
	files := noListingFS{http.Dir(h.options.UploadsDir)}
	server := http.StripPrefix(store.UploadsURLPrefix, http.FileServer(files))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + strings.TrimPrefix(r.URL.Path, store.UploadsURLPrefix))
		f, err := files.Open(name)
		if err != nil {
			h.notFound(w, r)
			return
		}
		f.Close()

		server.ServeHTTP(w, r)
	})
}

// noListingFS hides directory listings of the upload mount.
type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}

