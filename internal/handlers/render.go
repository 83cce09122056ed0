package handlers

import (
	"labtrack/internal/models"

	"github.com/gin-gonic/gin"
)

// render — обёртка над c.HTML, прокидывающая во все шаблоны текущего
// пользователя и его таблицу прав.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if user, ok := currentUser(c); ok {
		data["CurrentUser"] = user
		data["CurrentUsername"] = user.Username
		data["CurrentUserRole"] = user.Role
		data["Perms"] = models.PermissionsFor(user.Role)
	}

	c.HTML(status, tmpl, data)
}
