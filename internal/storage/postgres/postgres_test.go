package postgres

import (
	"errors"
	"testing"
	"time"

	"everlight/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &Storage{DB: db}

	eventDate := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs("Jane Doe", "jane@example.com", "555-1234", "Wedding",
			sqlmock.AnyArg(), "Outdoor ceremony", "", models.StatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, createdAt))
	mock.ExpectCommit()

	booking := &models.Booking{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "555-1234",
		ServiceType: "Wedding",
		EventDate:   &eventDate,
		Message:     "Outdoor ceremony",
	}

	id, err := s.SaveBooking(booking)
	require.NoError(t, err)

	assert.Equal(t, 42, id)
	assert.Equal(t, 42, booking.ID)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.WithinDuration(t, createdAt, booking.CreatedAt, time.Second)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveBooking_InsertFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &Storage{DB: db}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(errors.New("null value in column \"email\" violates not-null constraint"))
	mock.ExpectRollback()

	_, err = s.SaveBooking(&models.Booking{Name: "Jane Doe", Phone: "555-1234", ServiceType: "Wedding"})
	require.Error(t, err)

	// Rollback must happen and commit must not; a failed insert leaves no row behind.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &Storage{DB: db}

	newer := time.Now()
	older := newer.Add(-24 * time.Hour)

	columns := []string{"id", "name", "email", "phone", "service_type", "event_date", "message", "special_requests", "created_at", "status"}
	mock.ExpectQuery("SELECT (.+) FROM bookings ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(2, "Jane Doe", "jane@example.com", "555-1234", "Wedding", nil, "Outdoor ceremony", "", newer, models.StatusPending).
			AddRow(1, "John Smith", "john@example.com", "555-0000", "Portrait", older, "", "Pets welcome", older, models.StatusPending))

	bookings, err := s.Bookings()
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, 2, bookings[0].ID)
	assert.Nil(t, bookings[0].EventDate)
	assert.Equal(t, 1, bookings[1].ID)
	require.NotNil(t, bookings[1].EventDate)
	assert.Equal(t, older.Truncate(time.Second), bookings[1].EventDate.Truncate(time.Second))
	assert.Equal(t, "Pets welcome", bookings[1].SpecialRequests)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryItems_CategoryFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &Storage{DB: db}

	columns := []string{"id", "title", "description", "category", "image_path", "animation_type", "is_featured", "created_at"}
	mock.ExpectQuery("SELECT (.+) FROM gallery_items WHERE category = (.+) ORDER BY created_at DESC").
		WithArgs("wedding").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "First Dance", "", "wedding", "uploads/dance.jpg", "", true, time.Now()))

	items, err := s.GalleryItems("wedding")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "wedding", items[0].Category)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryItems_AllSkipsFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &Storage{DB: db}

	columns := []string{"id", "title", "description", "category", "image_path", "animation_type", "is_featured", "created_at"}
	mock.ExpectQuery("SELECT (.+) FROM gallery_items ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "First Dance", "", "wedding", "uploads/dance.jpg", "", true, time.Now()).
			AddRow(2, "Headshot", "", "portrait", "uploads/headshot.jpg", "fade", false, time.Now()))

	items, err := s.GalleryItems("all")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprovedTestimonials(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &Storage{DB: db}

	columns := []string{"id", "client_name", "client_title", "content", "rating", "is_approved", "created_at"}
	mock.ExpectQuery("SELECT (.+) FROM testimonials WHERE is_approved = true ORDER BY created_at DESC LIMIT (.+)").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "Jane Doe", "Bride", "Wonderful photos!", 5, true, time.Now()))

	testimonials, err := s.ApprovedTestimonials(3)
	require.NoError(t, err)
	require.Len(t, testimonials, 1)
	assert.Equal(t, 5, testimonials[0].Rating)

	assert.NoError(t, mock.ExpectationsWereMet())
}
