package submitBooking

import (
	"log/slog"
	"net/http"
	"time"

	"everlight/internal/lib/logger/sl"
	"everlight/internal/models"
	"everlight/internal/web"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

type BookingRequest struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"required"`
	Service string `validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingSaver
type BookingSaver interface {
	SaveBooking(b *models.Booking) (int, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ConfirmationSender
type ConfirmationSender interface {
	SendBookingConfirmation(b *models.Booking) error
}

// New handles the contact form submission. The booking is persisted
// first; the confirmation mail is best-effort and never affects the
// outcome. The submitter only ever sees a generic success or failure
// flash, causes go to the log.
func New(log *slog.Logger, flash *web.Flash, saver BookingSaver, sender ConfirmationSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.submitBooking.New"

		log := log.With(slog.String("op", op))

		fail := func(msg string, err error) {
			log.Error(msg, sl.Err(err))
			flash.Add(w, r, web.FlashDanger, "Error processing your request")
			http.Redirect(w, r, "/contact", http.StatusSeeOther)
		}

		if err := r.ParseForm(); err != nil {
			fail("failed to parse form", err)
			return
		}

		req := BookingRequest{
			Name:    r.PostFormValue("name"),
			Email:   r.PostFormValue("email"),
			Phone:   r.PostFormValue("phone"),
			Service: r.PostFormValue("service"),
		}

		if err := validator.New().Struct(req); err != nil {
			fail("invalid booking request", err)
			return
		}

		var eventDate *time.Time
		if dateStr := r.PostFormValue("date"); dateStr != "" {
			date, err := time.Parse(dateLayout, dateStr)
			if err != nil {
				fail("invalid event date", err)
				return
			}
			eventDate = &date
		}

		booking := &models.Booking{
			Name:            req.Name,
			Email:           req.Email,
			Phone:           req.Phone,
			ServiceType:     req.Service,
			EventDate:       eventDate,
			Message:         r.PostFormValue("message"),
			SpecialRequests: r.PostFormValue("special_requests"),
		}

		id, err := saver.SaveBooking(booking)
		if err != nil {
			fail("failed to save booking", err)
			return
		}

		log.Info("booking saved", slog.Int("id", id), slog.String("service", booking.ServiceType))

		if err = sender.SendBookingConfirmation(booking); err != nil {
			log.Error("failed to send confirmation", sl.Err(err))
		}

		flash.Add(w, r, web.FlashSuccess, "Booking request submitted successfully!")
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
	}
}
