package getGallery

import (
	"log/slog"
	"net/http"

	"everlight/internal/lib/logger/sl"
	"everlight/internal/models"
	"everlight/internal/web"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GalleryProvider
type GalleryProvider interface {
	GalleryItems(category string) ([]models.GalleryItem, error)
}

// New renders the gallery, optionally filtered by the category query
// parameter. "all" and an absent parameter both mean everything.
func New(log *slog.Logger, ren *web.Renderer, provider GalleryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.gallery.getGallery.New"

		log := log.With(slog.String("op", op))

		category := r.URL.Query().Get("category")
		if category == "" {
			category = "all"
		}

		items, err := provider.GalleryItems(category)
		if err != nil {
			log.Error("failed to get gallery items", sl.Err(err))
			ren.ServerError(w)
			return
		}

		log.Info("gallery retrieved", slog.String("category", category), slog.Int("count", len(items)))

		ren.Render(w, http.StatusOK, "gallery.html", map[string]any{
			"Items":           items,
			"CurrentCategory": category,
		})
	}
}
