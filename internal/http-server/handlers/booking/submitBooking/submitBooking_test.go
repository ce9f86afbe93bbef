package submitBooking

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"everlight/internal/http-server/handlers/booking/submitBooking/mocks"
	"everlight/internal/lib/logger/handlers/slogdiscard"
	"everlight/internal/models"
	"everlight/internal/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitBookingHandler(t *testing.T) {
	logger := slogdiscard.NewDiscardLogger()

	validForm := url.Values{
		"name":    {"Jane Doe"},
		"email":   {"jane@example.com"},
		"phone":   {"555-1234"},
		"service": {"Wedding"},
		"date":    {"2025-06-01"},
		"message": {"Outdoor ceremony"},
	}

	testCases := []struct {
		name          string
		form          url.Values
		mockSetup     func(saver *mocks.BookingSaver, sender *mocks.ConfirmationSender)
		expectedFlash string
	}{
		{
			name: "Success",
			form: validForm,
			mockSetup: func(saver *mocks.BookingSaver, sender *mocks.ConfirmationSender) {
				saver.On("SaveBooking", mock.MatchedBy(func(b *models.Booking) bool {
					return b.Name == "Jane Doe" &&
						b.Email == "jane@example.com" &&
						b.Phone == "555-1234" &&
						b.ServiceType == "Wedding" &&
						b.EventDate != nil &&
						b.EventDate.Equal(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)) &&
						b.Message == "Outdoor ceremony"
				})).Return(1, nil)
				sender.On("SendBookingConfirmation", mock.AnythingOfType("*models.Booking")).Return(nil)
			},
			expectedFlash: web.FlashSuccess,
		},
		{
			name: "Empty date means no event date",
			form: url.Values{
				"name":    {"John Smith"},
				"email":   {"john@example.com"},
				"phone":   {"555-0000"},
				"service": {"Portrait"},
				"date":    {""},
			},
			mockSetup: func(saver *mocks.BookingSaver, sender *mocks.ConfirmationSender) {
				saver.On("SaveBooking", mock.MatchedBy(func(b *models.Booking) bool {
					return b.EventDate == nil
				})).Return(2, nil)
				sender.On("SendBookingConfirmation", mock.AnythingOfType("*models.Booking")).Return(nil)
			},
			expectedFlash: web.FlashSuccess,
		},
		{
			name: "Malformed date is rejected before persistence",
			form: url.Values{
				"name":    {"Jane Doe"},
				"email":   {"jane@example.com"},
				"phone":   {"555-1234"},
				"service": {"Wedding"},
				"date":    {"06/01/2025"},
			},
			mockSetup:     func(saver *mocks.BookingSaver, sender *mocks.ConfirmationSender) {},
			expectedFlash: web.FlashDanger,
		},
		{
			name: "Missing email is rejected",
			form: url.Values{
				"name":    {"Jane Doe"},
				"phone":   {"555-1234"},
				"service": {"Wedding"},
			},
			mockSetup:     func(saver *mocks.BookingSaver, sender *mocks.ConfirmationSender) {},
			expectedFlash: web.FlashDanger,
		},
		{
			name: "Invalid email is rejected",
			form: url.Values{
				"name":    {"Jane Doe"},
				"email":   {"not-an-email"},
				"phone":   {"555-1234"},
				"service": {"Wedding"},
			},
			mockSetup:     func(saver *mocks.BookingSaver, sender *mocks.ConfirmationSender) {},
			expectedFlash: web.FlashDanger,
		},
		{
			name: "Storage failure skips the notification",
			form: validForm,
			mockSetup: func(saver *mocks.BookingSaver, sender *mocks.ConfirmationSender) {
				saver.On("SaveBooking", mock.AnythingOfType("*models.Booking")).
					Return(0, errors.New("connection refused"))
			},
			expectedFlash: web.FlashDanger,
		},
		{
			name: "Notification failure does not fail the booking",
			form: validForm,
			mockSetup: func(saver *mocks.BookingSaver, sender *mocks.ConfirmationSender) {
				saver.On("SaveBooking", mock.AnythingOfType("*models.Booking")).Return(3, nil)
				sender.On("SendBookingConfirmation", mock.AnythingOfType("*models.Booking")).
					Return(errors.New("smtp authentication failed"))
			},
			expectedFlash: web.FlashSuccess,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			saver := mocks.NewBookingSaver(t)
			sender := mocks.NewConfirmationSender(t)
			tc.mockSetup(saver, sender)

			flash := web.NewFlash("test-secret")
			handler := New(logger, flash, saver, sender)

			req, err := http.NewRequest(http.MethodPost, "/contact", strings.NewReader(tc.form.Encode()))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusSeeOther, rr.Code, "every outcome redirects back to the form")
			assert.Equal(t, "/contact", rr.Header().Get("Location"))

			flashes := popFlashes(t, flash, rr)
			require.Len(t, flashes, 1)
			assert.Equal(t, tc.expectedFlash, flashes[0].Category)
		})
	}
}

// popFlashes replays the session cookie set by the handler and reads
// back the flash messages, the way the next page load would.
func popFlashes(t *testing.T, flash *web.Flash, rr *httptest.ResponseRecorder) []web.FlashMessage {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, "/contact", nil)
	require.NoError(t, err)

	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}

	return flash.Pop(httptest.NewRecorder(), req)
}
