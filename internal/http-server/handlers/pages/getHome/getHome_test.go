package getHome

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"everlight/internal/config"
	"everlight/internal/http-server/handlers/pages/getHome/mocks"
	"everlight/internal/lib/logger/handlers/slogdiscard"
	"everlight/internal/models"
	"everlight/internal/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHomeHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	ren, err := web.NewRenderer(logger)
	require.NoError(t, err)

	t.Run("All features enabled", func(t *testing.T) {
		t.Parallel()

		provider := mocks.NewShowcaseProvider(t)
		provider.On("FeaturedGalleryItems", featuredLimit).Return([]models.GalleryItem{
			{ID: 1, Title: "First Dance", Category: "wedding", ImagePath: "uploads/dance.jpg", IsFeatured: true, CreatedAt: time.Now()},
		}, nil)
		provider.On("ApprovedTestimonials", testimonialLimit).Return([]models.Testimonial{
			{ID: 1, ClientName: "Jane Doe", Content: "Wonderful photos!", Rating: 5, IsApproved: true, CreatedAt: time.Now()},
		}, nil)

		features := config.Features{Gallery: true, Testimonials: true}

		rr := httptest.NewRecorder()
		New(logger, ren, provider, features).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "First Dance")
		assert.Contains(t, rr.Body.String(), "Wonderful photos!")
	})

	t.Run("All features disabled queries nothing", func(t *testing.T) {
		t.Parallel()

		// No expectations set; any provider call fails the test.
		provider := mocks.NewShowcaseProvider(t)

		features := config.Features{}

		rr := httptest.NewRecorder()
		New(logger, ren, provider, features).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "Featured Work")
		assert.NotContains(t, rr.Body.String(), "What Clients Say")
	})
}
