package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"labtrack/internal/excel"
	"labtrack/internal/inventory"

	"github.com/gin-gonic/gin"
)

// ИМПОРТ ИЗ XLSX

func (h *Handlers) ShowImport(c *gin.Context) {
	render(c, http.StatusOK, "import.html", gin.H{"error": ""})
}

// ImportEquipment целиком заменяет коллекцию содержимым файла.
// Нечитаемый файл прерывает операцию, прежнее состояние не трогается.
func (h *Handlers) ImportEquipment(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		render(c, http.StatusBadRequest, "import.html", gin.H{"error": "Файл не выбран"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		render(c, http.StatusBadRequest, "import.html", gin.H{"error": "Не удалось открыть файл"})
		return
	}
	defer f.Close()

	items, err := excel.Read(f, h.Store.NextID)
	if err != nil {
		log.Printf("import error: %v", err)
		render(c, http.StatusBadRequest, "import.html",
			gin.H{"error": "Ошибка импорта. Проверьте формат файла."})
		return
	}

	h.Store.ReplaceEquipment(items)

	if user, ok := currentUser(c); ok {
		h.Store.LogActivity(user.Username, "import", 0, "replace",
			"Импортировано записей: "+strconv.Itoa(len(items)))
	}

	c.Redirect(http.StatusFound, "/equipment")
}

// ЭКСПОРТ В XLSX

// ExportEquipment выгружает именно текущий вид — с теми же фильтрами и
// сортировкой, что и на странице списка. Пустой вид даёт файл из одних
// заголовков.
func (h *Handlers) ExportEquipment(c *gin.Context) {
	now := time.Now()
	q := queryFromRequest(c)
	view := inventory.Apply(h.Store.Equipment(), q, now)

	f, err := excel.Write(view)
	if err != nil {
		log.Printf("export error: %v", err)
		c.String(http.StatusInternalServerError, "Не удалось сформировать файл")
		return
	}

	filename := excel.Filename(now)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		log.Printf("export write error: %v", err)
	}
}
