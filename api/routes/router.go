package routes

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/mrtribble/brewlist/api/controllers"
	"github.com/mrtribble/brewlist/api/middleware"
	"github.com/mrtribble/brewlist/internal/shops"
	"github.com/mrtribble/brewlist/pkg/config"
	"github.com/mrtribble/brewlist/pkg/db"
	"github.com/mrtribble/brewlist/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	shopService shops.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Get("/health/live", controllers.HealthLive(cfg))
	r.Get("/health/ready", controllers.HealthReady(cfg, dbP))

	r.Route("/api/shop", func(r chi.Router) {
		r.Get("/", controllers.ListShops(shopService, logg))
		r.Post("/", controllers.CreateShop(shopService, logg))
		r.Put("/{id}/favorite", controllers.ToggleFavorite(shopService, logg))
		r.Delete("/{id}", controllers.DeleteShop(shopService, logg))
	})

	if dir := cfg.Client.Dir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			mountClient(r, dir)
		} else if logg != nil {
			ctx := logg.WithField(context.Background(), "dir", dir)
			logg.Warn(ctx, "client dir not found, static assets disabled")
		}
	}

	return r
}

// mountClient serves the static browser client, with index.html at /.
func mountClient(r chi.Router, dir string) {
	fs := http.FileServer(http.Dir(dir))
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, filepath.Join(dir, "index.html"))
	})
	r.Get("/resources/*", fs.ServeHTTP)
}
