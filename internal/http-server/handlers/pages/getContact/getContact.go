package getContact

import (
	"log/slog"
	"net/http"

	"everlight/internal/web"
)

// New renders the booking form together with any flash message left by
// a previous submission.
func New(log *slog.Logger, ren *web.Renderer, flash *web.Flash) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.pages.getContact.New"

		log := log.With(slog.String("op", op))

		flashes := flash.Pop(w, r)
		if len(flashes) > 0 {
			log.Debug("showing flash messages", slog.Int("count", len(flashes)))
		}

		ren.Render(w, http.StatusOK, "contact.html", map[string]any{
			"Flashes": flashes,
		})
	}
}
