package middleware

import (
	"labtrack/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// InjectUser кладёт текущего пользователя в контекст запроса,
// если в сессии есть валидный user_id.
func InjectUser(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(int64); ok && uid > 0 {
				if user, err := st.UserByID(uid); err == nil {
					c.Set("CurrentUser", user)
				}
			}
		}

		c.Next()
	}
}
