package models

import (
	"fmt"
	"time"
)

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleSuperUser UserRole = "super-user"
	RoleUser      UserRole = "user"
)

// ParseRole проверяет строку роли (например, взятую из сессии).
func ParseRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleAdmin, RoleSuperUser, RoleUser:
		return UserRole(s), true
	}
	return "", false
}

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	LastLogin    *time.Time // nil — ещё ни разу не входил
}

// Permissions — семь независимых возможностей, выводимых из роли.
type Permissions struct {
	ManageUsers     bool
	ImportData      bool
	AddEquipment    bool
	EditEquipment   bool
	DeleteEquipment bool
	FilterSort      bool
	ViewEquipment   bool
}

// PermissionsFor — чистая функция роль -> набор возможностей.
// Неизвестная роль — ошибка программиста, падаем сразу.
func PermissionsFor(role UserRole) Permissions {
	switch role {
	case RoleAdmin:
		return Permissions{
			ManageUsers:     true,
			ImportData:      true,
			AddEquipment:    true,
			EditEquipment:   true,
			DeleteEquipment: true,
			FilterSort:      true,
			ViewEquipment:   true,
		}
	case RoleSuperUser:
		return Permissions{
			AddEquipment:    true,
			EditEquipment:   true,
			DeleteEquipment: true,
			FilterSort:      true,
			ViewEquipment:   true,
		}
	case RoleUser:
		return Permissions{
			FilterSort:    true,
			ViewEquipment: true,
		}
	}
	panic(fmt.Sprintf("unknown role: %q", role))
}
