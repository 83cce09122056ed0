package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ЖУРНАЛ ДЕЙСТВИЙ (только admin; доступ ограничен в роутере)

func (h *Handlers) ListActivity(c *gin.Context) {
	entries := h.Store.Activity()
	if len(entries) > 200 {
		entries = entries[:200]
	}

	render(c, http.StatusOK, "activity_list.html", gin.H{
		"entries": entries,
	})
}
