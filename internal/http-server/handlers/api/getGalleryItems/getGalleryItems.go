package getGalleryItems

import (
	"log/slog"
	"net/http"

	"everlight/internal/lib/api/response"
	"everlight/internal/lib/logger/sl"
	"everlight/internal/models"

	"github.com/go-chi/render"
)

type GalleryResponse struct {
	response.Response
	Items []models.GalleryItem `json:"items"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GalleryProvider
type GalleryProvider interface {
	GalleryItems(category string) ([]models.GalleryItem, error)
}

func New(log *slog.Logger, provider GalleryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.api.getGalleryItems.New"

		log := log.With(slog.String("op", op))

		category := r.URL.Query().Get("category")
		if category == "" {
			category = "all"
		}

		items, err := provider.GalleryItems(category)
		if err != nil {
			log.Error("failed to get gallery items", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get gallery items"))
			return
		}

		log.Info("gallery retrieved", slog.String("category", category), slog.Int("count", len(items)))

		render.JSON(w, r, GalleryResponse{
			Response: response.OK(),
			Items:    items,
		})
	}
}
