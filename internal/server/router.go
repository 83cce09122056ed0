package server

import (
	"html/template"
	"net/http"
	"time"

	"labtrack/internal/config"
	"labtrack/internal/handlers"
	"labtrack/internal/middleware"
	"labtrack/internal/models"
	"labtrack/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, st *store.Store) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")

	r.SetFuncMap(template.FuncMap{
		"eq": func(a, b interface{}) bool { return a == b },
		"fmtTime": func(t time.Time) string {
			return t.Local().Format("02.01.2006 15:04")
		},
		"fmtTimePtr": func(t *time.Time) string {
			if t == nil {
				return "—"
			}
			return t.Local().Format("02.01.2006 15:04")
		},
	})
	r.LoadHTMLGlob("web/templates/*.html")

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("labtrack_session", sessionStore))

	r.Use(middleware.InjectUser(st))

	h := handlers.New(st)

	// ГЛАВНАЯ
	r.GET("/", h.IndexPage)

	// AUTH
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// СПИСОК ОБОРУДОВАНИЯ — доступен всем ролям
	auth.GET("/equipment",
		middleware.RequirePermission(func(p models.Permissions) bool { return p.ViewEquipment }),
		h.ListEquipment,
	)
	auth.GET("/export",
		middleware.RequirePermission(func(p models.Permissions) bool { return p.ViewEquipment }),
		h.ExportEquipment,
	)

	// ДОБАВЛЕНИЕ — admin и super-user
	auth.GET("/equipment/new",
		middleware.RequirePermission(func(p models.Permissions) bool { return p.AddEquipment }),
		h.ShowNewEquipment,
	)
	auth.POST("/equipment/new",
		middleware.RequirePermission(func(p models.Permissions) bool { return p.AddEquipment }),
		h.CreateEquipment,
	)

	// РЕДАКТИРОВАНИЕ
	auth.GET("/equipment/:id/edit",
		middleware.RequirePermission(func(p models.Permissions) bool { return p.EditEquipment }),
		h.ShowEditEquipment,
	)
	auth.POST("/equipment/:id/edit",
		middleware.RequirePermission(func(p models.Permissions) bool { return p.EditEquipment }),
		h.UpdateEquipment,
	)

	// УДАЛЕНИЕ — поштучно и пачкой
	auth.POST("/equipment/:id/delete",
		middleware.RequirePermission(func(p models.Permissions) bool { return p.DeleteEquipment }),
		h.DeleteEquipment,
	)
	auth.POST("/equipment/delete-selected",
		middleware.RequirePermission(func(p models.Permissions) bool { return p.DeleteEquipment }),
		h.DeleteSelectedEquipment,
	)

	// ИМПОРТ — только admin
	auth.GET("/import",
		middleware.RequirePermission(func(p models.Permissions) bool { return p.ImportData }),
		h.ShowImport,
	)
	auth.POST("/import",
		middleware.RequirePermission(func(p models.Permissions) bool { return p.ImportData }),
		h.ImportEquipment,
	)

	// ПОЛЬЗОВАТЕЛИ — только admin
	auth.GET("/users",
		middleware.RequirePermission(func(p models.Permissions) bool { return p.ManageUsers }),
		h.ListUsers,
	)
	auth.POST("/users/new",
		middleware.RequirePermission(func(p models.Permissions) bool { return p.ManageUsers }),
		h.CreateUser,
	)
	auth.POST("/users/:id/role",
		middleware.RequirePermission(func(p models.Permissions) bool { return p.ManageUsers }),
		h.UpdateUserRole,
	)
	auth.POST("/users/:id/delete",
		middleware.RequirePermission(func(p models.Permissions) bool { return p.ManageUsers }),
		h.DeleteUser,
	)

	// ЖУРНАЛ ДЕЙСТВИЙ — только admin
	auth.GET("/activity",
		middleware.RequirePermission(func(p models.Permissions) bool { return p.ManageUsers }),
		h.ListActivity,
	)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
