package getContact

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"everlight/internal/lib/logger/handlers/slogdiscard"
	"everlight/internal/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetContactHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	ren, err := web.NewRenderer(logger)
	require.NoError(t, err)

	flash := web.NewFlash("test-secret")
	handler := New(logger, ren, flash)

	t.Run("Renders the form", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/contact", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `name="email"`)
	})

	t.Run("Shows a pending flash exactly once", func(t *testing.T) {
		seed := httptest.NewRecorder()
		flash.Add(seed, httptest.NewRequest(http.MethodPost, "/contact", nil), web.FlashSuccess, "Booking request submitted successfully!")

		req := httptest.NewRequest(http.MethodGet, "/contact", nil)
		for _, c := range seed.Result().Cookies() {
			req.AddCookie(c)
		}

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Booking request submitted successfully!")
	})
}
