package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"everlight/internal/config"
	apiCreateBooking "everlight/internal/http-server/handlers/api/createBooking"
	apiGetBookings "everlight/internal/http-server/handlers/api/getBookings"
	apiGetGalleryItems "everlight/internal/http-server/handlers/api/getGalleryItems"
	"everlight/internal/http-server/handlers/booking/getAllBookings"
	"everlight/internal/http-server/handlers/booking/submitBooking"
	"everlight/internal/http-server/handlers/gallery/getGallery"
	"everlight/internal/http-server/handlers/pages/getContact"
	"everlight/internal/http-server/handlers/pages/getHome"
	"everlight/internal/http-server/middleware/mwlogger"
	"everlight/internal/http-server/middleware/ratelimit"
	"everlight/internal/lib/logger/handlers/slogpretty"
	"everlight/internal/lib/logger/sl"
	"everlight/internal/mail"
	"everlight/internal/storage/postgres"
	"everlight/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting everlight", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	renderer, err := web.NewRenderer(log)
	if err != nil {
		log.Error("failed to init renderer", sl.Err(err))
		os.Exit(1)
	}

	flash := web.NewFlash(cfg.SecretKey)
	sender := mail.New(cfg.Mail)

	if err = os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		log.Error("failed to create upload dir", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(middleware.RequestSize(cfg.Uploads.MaxSize))

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	limited := ratelimit.New(1, 3)

	router.Get("/", getHome.New(log, renderer, storage, cfg.Features))
	router.Get("/about", renderer.Page("about.html"))
	router.Get("/contact", getContact.New(log, renderer, flash))
	router.With(limited).Post("/contact", submitBooking.New(log, flash, storage, sender))
	router.Get("/bookings", getAllBookings.New(log, renderer, storage))
	if cfg.Features.Gallery {
		router.Get("/gallery", getGallery.New(log, renderer, storage))
	}

	router.Route("/api", func(r chi.Router) {
		r.With(limited).Post("/bookings", apiCreateBooking.New(log, storage, sender))
		r.Get("/bookings", apiGetBookings.New(log, storage))
		if cfg.Features.Gallery {
			r.Get("/gallery", apiGetGalleryItems.New(log, storage))
		}
	})

	router.NotFound(renderer.NotFound())

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
