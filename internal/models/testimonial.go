package models

import "time"

type Testimonial struct {
	ID          int       `json:"id"`
	ClientName  string    `json:"client_name"`
	ClientTitle string    `json:"client_title,omitempty"`
	Content     string    `json:"content"`
	Rating      int       `json:"rating"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`
}
