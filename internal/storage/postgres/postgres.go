package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"everlight/internal/config"
	"everlight/internal/models"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

const migrationsDir = "file://migrations"

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	db, err := sql.Open("postgres", dbCfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = runMigrations(db, dbCfg.DBName); err != nil {
		return nil, err
	}

	return &Storage{DB: db}, nil
}

func runMigrations(db *sql.DB, dbName string) error {
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsDir, dbName, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// SaveBooking inserts the booking as a single transaction and fills in
// the assigned id, the creation timestamp and the initial status.
// Nothing is persisted if the insert fails.
func (s *Storage) SaveBooking(b *models.Booking) (int, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO bookings (name, email, phone, service_type, event_date, message, special_requests, created_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), $8)
		RETURNING id, created_at`

	err = tx.QueryRow(query,
		b.Name,
		b.Email,
		b.Phone,
		b.ServiceType,
		b.EventDate,
		b.Message,
		b.SpecialRequests,
		models.StatusPending,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to save booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit booking: %w", err)
	}

	b.Status = models.StatusPending

	return b.ID, nil
}

func (s *Storage) Bookings() ([]models.Booking, error) {
	query := `
		SELECT id, name, email, phone, service_type, event_date,
		       COALESCE(message, ''), COALESCE(special_requests, ''), created_at, status
		FROM bookings
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		err = rows.Scan(
			&b.ID,
			&b.Name,
			&b.Email,
			&b.Phone,
			&b.ServiceType,
			&b.EventDate,
			&b.Message,
			&b.SpecialRequests,
			&b.CreatedAt,
			&b.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// GalleryItems returns gallery items newest first. An empty category or
// "all" returns every item.
func (s *Storage) GalleryItems(category string) ([]models.GalleryItem, error) {
	query := `
		SELECT id, title, COALESCE(description, ''), category, image_path,
		       COALESCE(animation_type, ''), is_featured, created_at
		FROM gallery_items`

	var args []interface{}
	if category != "" && category != "all" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get gallery items: %w", err)
	}
	defer rows.Close()

	return scanGalleryItems(rows)
}

func (s *Storage) FeaturedGalleryItems(limit int) ([]models.GalleryItem, error) {
	query := `
		SELECT id, title, COALESCE(description, ''), category, image_path,
		       COALESCE(animation_type, ''), is_featured, created_at
		FROM gallery_items
		WHERE is_featured = true
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := s.DB.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get featured gallery items: %w", err)
	}
	defer rows.Close()

	return scanGalleryItems(rows)
}

func scanGalleryItems(rows *sql.Rows) ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	for rows.Next() {
		var item models.GalleryItem
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&item.Category,
			&item.ImagePath,
			&item.AnimationType,
			&item.IsFeatured,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gallery item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gallery items: %w", err)
	}

	return items, nil
}

func (s *Storage) ApprovedTestimonials(limit int) ([]models.Testimonial, error) {
	query := `
		SELECT id, client_name, COALESCE(client_title, ''), content, rating, is_approved, created_at
		FROM testimonials
		WHERE is_approved = true
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := s.DB.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		err = rows.Scan(
			&t.ID,
			&t.ClientName,
			&t.ClientTitle,
			&t.Content,
			&t.Rating,
			&t.IsApproved,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating testimonials: %w", err)
	}

	return testimonials, nil
}
