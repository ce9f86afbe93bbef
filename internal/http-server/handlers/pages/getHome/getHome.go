package getHome

import (
	"log/slog"
	"net/http"

	"everlight/internal/config"
	"everlight/internal/lib/logger/sl"
	"everlight/internal/models"
	"everlight/internal/web"
)

const (
	featuredLimit    = 6
	testimonialLimit = 3
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ShowcaseProvider
type ShowcaseProvider interface {
	FeaturedGalleryItems(limit int) ([]models.GalleryItem, error)
	ApprovedTestimonials(limit int) ([]models.Testimonial, error)
}

// New renders the landing page. The featured-work and testimonial
// sections are only queried when the matching feature is enabled.
func New(log *slog.Logger, ren *web.Renderer, provider ShowcaseProvider, features config.Features) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.pages.getHome.New"

		log := log.With(slog.String("op", op))

		var (
			featured     []models.GalleryItem
			testimonials []models.Testimonial
			err          error
		)

		if features.Gallery {
			featured, err = provider.FeaturedGalleryItems(featuredLimit)
			if err != nil {
				log.Error("failed to get featured gallery items", sl.Err(err))
				ren.ServerError(w)
				return
			}
		}

		if features.Testimonials {
			testimonials, err = provider.ApprovedTestimonials(testimonialLimit)
			if err != nil {
				log.Error("failed to get testimonials", sl.Err(err))
				ren.ServerError(w)
				return
			}
		}

		ren.Render(w, http.StatusOK, "index.html", map[string]any{
			"FeaturedItems": featured,
			"Testimonials":  testimonials,
		})
	}
}
