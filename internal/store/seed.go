package store

import (
	"log"
	"os"
	"time"

	"labtrack/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// seedDefaultUsers заводит три встроенные учётные записи (admin,
// super-user, user). Логин и пароль админа можно переопределить через
// окружение — остальное только из кода, это демо-аккаунты.
func (s *Store) seedDefaultUsers() {
	adminUsername := os.Getenv("ADMIN_USERNAME")
	if adminUsername == "" {
		adminUsername = "admin"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "password123"
	}

	type seedUser struct {
		Username string
		Password string
		Role     models.UserRole
	}

	users := []seedUser{
		{Username: adminUsername, Password: adminPassword, Role: models.RoleAdmin},
		{Username: "super", Password: "password456", Role: models.RoleSuperUser},
		{Username: "user", Password: "password789", Role: models.RoleUser},
	}

	now := time.Now().UTC()
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("failed to hash password for %s: %v", u.Username, err)
			continue
		}
		s.users = append(s.users, models.User{
			ID:           s.NextID(),
			Username:     u.Username,
			PasswordHash: string(hash),
			Role:         u.Role,
			CreatedAt:    now,
		})
		log.Printf("created seed user: %s (role=%s)", u.Username, u.Role)
	}
}
