package middleware

import (
	"net/http"

	"labtrack/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		userID := sess.Get("user_id")
		if userID == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePermission пропускает дальше только роли, у которых включена
// указанная возможность из таблицы прав.
func RequirePermission(allowed func(models.Permissions) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		roleVal := sess.Get("role")
		roleStr, ok := roleVal.(string)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		role, ok := models.ParseRole(roleStr)
		if !ok {
			// битая сессия — считаем неавторизованным
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if !allowed(models.PermissionsFor(role)) {
			c.String(http.StatusForbidden, "access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
