// Package api assembles the Catalog Service HTTP surface: huma operations
// on a chi mux for the JSON endpoints, plus plain chi routes for the two
// raw-bytes paths (the index asset and screenshot serving).
package api

import (
	_ "embed"
	"mime"
	"net/http"
	"path/filepath"

	favoritesAPI "librarydesk/internal/app/server/api/http/favorites"
	healthAPI "librarydesk/internal/app/server/api/http/health"
	mediaAPI "librarydesk/internal/app/server/api/http/media"
	loggerMW "librarydesk/internal/app/server/api/http/middleware/logger"
	statsAPI "librarydesk/internal/app/server/api/http/stats"
	"librarydesk/internal/domain/favorite"
	"librarydesk/internal/domain/media"
	"librarydesk/internal/infrastructure/screenshots"
	"librarydesk/internal/infrastructure/storage/jsonfile"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

//go:embed index.html
var indexPage []byte

// New creates the chi mux with all operations registered.
func New(store *jsonfile.Storage, shots *screenshots.Dir, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Library Desk API", "1.0.0")
	API := humachi.New(mux, config)

	mws := huma.Middlewares{loggerMW.New(log).Middleware()}

	mediaService := media.NewService(store, log)
	favoriteService := favorite.NewService(store, log)

	mediaAPI.NewHandler(mediaService, shots, log, mws).SetupRoutes(API)
	favoritesAPI.NewHandler(favoriteService, log, mws).SetupRoutes(API)
	statsAPI.NewHandler(mediaService, log, mws).SetupRoutes(API)
	healthAPI.NewHandler(log, mws).SetupRoutes(API)

	mux.Get("/", serveIndex)
	mux.Get("/screenshot/{name}", serveScreenshot(shots))

	return mux
}

func serveIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexPage)
}

// serveScreenshot streams the raw image bytes for a stored screenshot
// filename. The name is sanitized before it touches the filesystem.
func serveScreenshot(shots *screenshots.Dir) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		path, ok := shots.Path(name)
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": "Screenshot not found"}`))
			return
		}

		if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		http.ServeFile(w, r, path)
	}
}
