package getAllBookings

import (
	"log/slog"
	"net/http"

	"everlight/internal/lib/logger/sl"
	"everlight/internal/models"
	"everlight/internal/web"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsProvider
type BookingsProvider interface {
	Bookings() ([]models.Booking, error)
}

// New lists every booking request, newest first.
func New(log *slog.Logger, ren *web.Renderer, provider BookingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getAllBookings.New"

		log := log.With(slog.String("op", op))

		bookings, err := provider.Bookings()
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			ren.ServerError(w)
			return
		}

		log.Info("bookings retrieved", slog.Int("count", len(bookings)))

		ren.Render(w, http.StatusOK, "bookings.html", map[string]any{
			"Bookings": bookings,
		})
	}
}
