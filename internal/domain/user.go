package domain

import "time"

// Roles que puede tener un usuario dentro de la plataforma.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	EmailVerified  bool      `json:"email_verified"`
	OrganizationID string    `json:"organization_id,omitempty"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// OrganizationSummary es la vista reducida de una organizacion para joins.
type OrganizationSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserWithOrganization une un usuario con el resumen de su organizacion.
type UserWithOrganization struct {
	User
	Organization *OrganizationSummary `json:"organization,omitempty"`
}
