package models

import "time"

// StatusPending is the status every booking is created with.
// No other status is written by this application.
const StatusPending = "pending"

type Booking struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	ServiceType     string     `json:"service_type"`
	EventDate       *time.Time `json:"event_date,omitempty"`
	Message         string     `json:"message,omitempty"`
	SpecialRequests string     `json:"special_requests,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	Status          string     `json:"status"`
}
