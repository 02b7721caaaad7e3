package domain

import "time"

// ProviderCredential identifica cuentas basadas en password.
const ProviderCredential = "credential"

// Account es un registro de autenticacion asociado a un usuario.
// Para cuentas por password el AccountID coincide con el id del usuario.
type Account struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ProviderID   string    `json:"provider_id"`
	AccountID    string    `json:"account_id"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
