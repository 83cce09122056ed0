package handlers

import (
	"labtrack/internal/models"
	"labtrack/internal/store"

	"github.com/gin-gonic/gin"
)

// Handlers держит ссылку на хранилище состояния — единственного владельца
// изменяемых данных приложения.
type Handlers struct {
	Store *store.Store
}

func New(st *store.Store) *Handlers {
	return &Handlers{Store: st}
}

// currentUser достаёт пользователя, положенного middleware.InjectUser.
func currentUser(c *gin.Context) (models.User, bool) {
	uVal, ok := c.Get("CurrentUser")
	if !ok {
		return models.User{}, false
	}
	user, ok := uVal.(models.User)
	return user, ok
}
