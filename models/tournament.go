package models

import "time"

type Tournament struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Edition     string    `json:"edition"`
	Year        int       `json:"year"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Description *string   `json:"description,omitempty"`
	LogoKey     *string   `json:"-"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
