package domain

import "time"

// LoginEvent registra un inicio de sesion exitoso.
type LoginEvent struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginStat agrega logins unicos por dia calendario.
type LoginStat struct {
	Date         string `json:"date"`
	UniqueLogins int    `json:"unique_logins"`
}
