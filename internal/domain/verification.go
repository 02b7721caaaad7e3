package domain

import "time"

// Verification es un registro generico con expiracion; las invitaciones se
// guardan aqui con el email en Identifier y un payload JSON en Value.
type Verification struct {
	ID         string    `json:"id"`
	Identifier string    `json:"identifier"`
	Value      string    `json:"value"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// InvitePayload es el contenido serializado en Value para invitaciones.
type InvitePayload struct {
	Token          string `json:"token"`
	OrganizationID string `json:"organizationId"`
	Role           string `json:"role"`
}
