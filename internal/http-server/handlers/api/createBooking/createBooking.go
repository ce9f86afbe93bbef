package createBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"everlight/internal/lib/api/response"
	"everlight/internal/lib/logger/sl"
	"everlight/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

type BookingRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	Service         string `json:"service" validate:"required"`
	Date            string `json:"date,omitempty"`
	Message         string `json:"message,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type BookingResponse struct {
	response.Response
	BookingID int `json:"booking_id,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingSaver
type BookingSaver interface {
	SaveBooking(b *models.Booking) (int, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ConfirmationSender
type ConfirmationSender interface {
	SendBookingConfirmation(b *models.Booking) error
}

func New(log *slog.Logger, saver BookingSaver, sender ConfirmationSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.api.createBooking.New"

		log := log.With(slog.String("op", op))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			log.Error("invalid request", sl.Err(err))

			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid request"))
			return
		}

		var eventDate *time.Time
		if req.Date != "" {
			date, err := time.Parse(dateLayout, req.Date)
			if err != nil {
				log.Error("invalid event date", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid date, expected YYYY-MM-DD"))
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
			Message:         req.Message,
			SpecialRequests: req.SpecialRequests,
		}

		id, err := saver.SaveBooking(booking)
		if err != nil {
			log.Error("failed to save booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save booking"))
			return
		}

		log.Info("booking saved", slog.Int("id", id))

		// Best-effort; the booking is already committed.
		if err = sender.SendBookingConfirmation(booking); err != nil {
			log.Error("failed to send confirmation", sl.Err(err))
		}

		responseOK(w, r, id)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, id int) {
	render.JSON(w, r, BookingResponse{
		Response:  response.OK(),
		BookingID: id,
	})
}
