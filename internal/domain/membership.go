package domain

import "time"

// CommunityMembership pertenece a otro subsistema; aqui solo se elimina en
// cascada cuando se borra el usuario duenio.
type CommunityMembership struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
