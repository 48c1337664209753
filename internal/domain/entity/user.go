package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinator"
)

// ValidRole indica si el rol pertenece al conjunto cerrado admin/coordinator.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCoordinator
}

// User representa una cuenta del sistema de administración.
type User struct {
	ID           string
	Name         string
	Email        string // único en todo el sistema
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, coordinator
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
