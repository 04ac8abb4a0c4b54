package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleOperario = "operario"
)

// User representa un usuario de la aplicación.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         string // admin | operario
	Active       bool
	CreatedAt    time.Time
}
