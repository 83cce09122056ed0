package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handlers) IndexPage(c *gin.Context) {
	sess := sessions.Default(c)
	if _, ok := sess.Get("user_id").(int64); ok {
		c.Redirect(http.StatusFound, "/equipment")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}
