package models

import "time"

type GalleryItem struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	ImagePath     string    `json:"image_path"`
	AnimationType string    `json:"animation_type,omitempty"`
	IsFeatured    bool      `json:"is_featured"`
	CreatedAt     time.Time `json:"created_at"`
}
