package mail

import (
	"fmt"
	"strings"

	"everlight/internal/config"
	"everlight/internal/models"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

const (
	subject    = "Booking Confirmation - Everlight Photography"
	dateLayout = "January 02, 2006"
)

// Sender composes and sends booking confirmations over SMTP.
// It is best-effort by contract: callers log and ignore its errors,
// a stored booking never depends on the mail going out.
type Sender struct {
	cfg config.Mail
}

func New(cfg config.Mail) *Sender {
	return &Sender{cfg: cfg}
}

func (s *Sender) SendBookingConfirmation(b *models.Booking) error {
	if s.cfg.Host == "" {
		return fmt.Errorf("mail server is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", b.Email)
	m.SetHeader("Subject", subject)
	m.SetHeader("Message-ID", fmt.Sprintf("<%s@everlight>", uuid.NewString()))
	m.SetBody("text/plain", confirmationBody(b))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	d.SSL = implicitSSL(s.cfg)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send confirmation to %s: %w", b.Email, err)
	}

	return nil
}

// implicitSSL decides how the connection is secured. use_tls selects
// STARTTLS on the submission port; with it off, the SMTPS port gets
// implicit TLS and anything else stays plain.
func implicitSSL(cfg config.Mail) bool {
	return !cfg.UseTLS && cfg.Port == 465
}

func confirmationBody(b *models.Booking) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Dear %s,\n\n", b.Name)
	fmt.Fprintf(&sb, "Thank you for your booking request for %s photography.\n", b.ServiceType)
	sb.WriteString("We'll contact you soon to confirm details.\n\n")

	sb.WriteString("Booking Details:\n")
	fmt.Fprintf(&sb, "- Service: %s\n", b.ServiceType)
	fmt.Fprintf(&sb, "- Contact: %s\n", b.Phone)
	if b.EventDate != nil {
		fmt.Fprintf(&sb, "- Event Date: %s\n", b.EventDate.Format(dateLayout))
	}
	if b.SpecialRequests != "" {
		fmt.Fprintf(&sb, "- Special Requests: %s\n", b.SpecialRequests)
	}

	sb.WriteString("\nBest regards,\nEverlight Photography Team\n")

	return sb.String()
}
