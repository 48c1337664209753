package entity

import "time"

// Category representa una clasificación de primer nivel del catálogo.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
