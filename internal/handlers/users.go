package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"labtrack/internal/models"
	"labtrack/internal/store"

	"github.com/gin-gonic/gin"
)

// УПРАВЛЕНИЕ ПОЛЬЗОВАТЕЛЯМИ (только admin)

func (h *Handlers) ListUsers(c *gin.Context) {
	h.renderUsers(c, http.StatusOK, "")
}

func (h *Handlers) renderUsers(c *gin.Context, status int, errMsg string) {
	render(c, status, "users_list.html", gin.H{
		"users": h.Store.Users(),
		"roles": []models.UserRole{models.RoleAdmin, models.RoleSuperUser, models.RoleUser},
		"error": errMsg,
	})
}

func (h *Handlers) CreateUser(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	roleStr := c.PostForm("role")

	if username == "" || password == "" {
		h.renderUsers(c, http.StatusBadRequest, "Логин и пароль обязательны")
		return
	}
	role, ok := models.ParseRole(roleStr)
	if !ok {
		h.renderUsers(c, http.StatusBadRequest, "Неверная роль")
		return
	}

	user, err := h.Store.AddUser(username, password, role)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			h.renderUsers(c, http.StatusBadRequest, "Пользователь уже существует")
			return
		}
		h.renderUsers(c, http.StatusInternalServerError, "Ошибка сохранения пользователя")
		return
	}

	if actor, ok := currentUser(c); ok {
		h.Store.LogActivity(actor.Username, "user", user.ID, "create", "Создан пользователь "+user.Username)
	}

	c.Redirect(http.StatusFound, "/users")
}

// UpdateUserRole меняет только роль — другие поля учётки не редактируются.
func (h *Handlers) UpdateUserRole(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Пользователь не найден")
		return
	}
	role, roleOK := models.ParseRole(c.PostForm("role"))
	if !roleOK {
		h.renderUsers(c, http.StatusBadRequest, "Неверная роль")
		return
	}

	switch err := h.Store.UpdateUserRole(actor.ID, targetID, role); {
	case errors.Is(err, store.ErrSelfEdit):
		h.renderUsers(c, http.StatusBadRequest, "Нельзя редактировать собственную учётную запись")
		return
	case errors.Is(err, store.ErrUserNotFound):
		c.String(http.StatusNotFound, "Пользователь не найден")
		return
	case err != nil:
		h.renderUsers(c, http.StatusInternalServerError, "Ошибка сохранения пользователя")
		return
	}

	h.Store.LogActivity(actor.Username, "user", targetID, "role_change", "Роль изменена на "+string(role))
	c.Redirect(http.StatusFound, "/users")
}

func (h *Handlers) DeleteUser(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Пользователь не найден")
		return
	}

	switch err := h.Store.DeleteUser(actor.ID, targetID); {
	case errors.Is(err, store.ErrSelfDelete):
		h.renderUsers(c, http.StatusBadRequest, "Нельзя удалить собственную учётную запись")
		return
	case errors.Is(err, store.ErrUserNotFound):
		c.String(http.StatusNotFound, "Пользователь не найден")
		return
	case err != nil:
		h.renderUsers(c, http.StatusInternalServerError, "Ошибка удаления пользователя")
		return
	}

	h.Store.LogActivity(actor.Username, "user", targetID, "delete", "Удалён пользователь")
	c.Redirect(http.StatusFound, "/users")
}
