package domain

import "time"

// Organization agrupa usuarios bajo un mismo tenant.
type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
