package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"labtrack/internal/excel"
	"labtrack/internal/inventory"
	"labtrack/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// СПИСОК ОБОРУДОВАНИЯ

// equipmentRow — запись плюс вычисленные пометки для таблицы.
type equipmentRow struct {
	models.Equipment
	Duplicate      bool
	NearExpiration bool
	StartDisplay   string
	EndDisplay     string
	CostDisplay    string
}

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

func formatCurrency(v float64) string {
	return currencyPrinter.Sprintf("$%.2f", v)
}

// queryFromRequest читает конфигурацию фильтров и сортировки из query-строки.
func queryFromRequest(c *gin.Context) inventory.Query {
	q := inventory.DefaultQuery()

	if field := c.Query("field"); field != "" {
		if _, ok := models.FieldByName(field); ok && field != "planner" && field != "site" {
			q.FilterField = field
		}
	}
	q.FilterValue = c.Query("value")
	q.Planner = c.Query("planner")
	q.Site = c.Query("site")
	q.NearExpiration = c.Query("near") == "1"

	if field := c.Query("sort"); field != "" {
		if _, ok := models.FieldByName(field); ok || field == "id" {
			q.SortField = field
		}
	}
	if c.Query("dir") == string(inventory.SortDesc) {
		q.SortDirection = inventory.SortDesc
	}
	return q
}

func (h *Handlers) ListEquipment(c *gin.Context) {
	user, _ := currentUser(c)
	now := time.Now()

	q := queryFromRequest(c)
	all := h.Store.Equipment()
	view := inventory.Apply(all, q, now)
	dups := inventory.DuplicateAssets(all)

	rows := make([]equipmentRow, len(view))
	for i, item := range view {
		rows[i] = equipmentRow{
			Equipment:      item,
			Duplicate:      dups[item.Asset] > 0,
			NearExpiration: inventory.NearExpiration(item.ContractEndDate, now),
			StartDisplay:   excel.FormatDate(item.ContractStartDate),
			EndDisplay:     excel.FormatDate(item.ContractEndDate),
			CostDisplay:    formatCurrency(item.ContractCost),
		}
	}

	// сводка продлений — только для admin и super-user, по всей коллекции
	var renewals []inventory.PlannerRenewals
	if user.Role == models.RoleAdmin || user.Role == models.RoleSuperUser {
		renewals = inventory.RenewalsByPlanner(all, now)
	}

	render(c, http.StatusOK, "equipment_list.html", gin.H{
		"rows":           rows,
		"total":          len(all),
		"query":          q,
		"filterFields":   models.FilterableFields(),
		"planners":       inventory.Planners(all),
		"sites":          inventory.Sites(all),
		"duplicateCount": len(dups),
		"renewals":       renewals,
	})
}

// СОЗДАНИЕ И РЕДАКТИРОВАНИЕ

// fieldInput — одно поле формы: спецификация плюс текущее значение.
type fieldInput struct {
	models.FieldSpec
	Value string
}

// formFields готовит значения для формы; даты приводятся к виду,
// который понимает <input type="date">.
func formFields(e models.Equipment) []fieldInput {
	dateInput := func(stored string) string {
		if stored == "" {
			return ""
		}
		if t, err := time.Parse("2006-01-02T15:04:05.000Z", stored); err == nil {
			return t.Format("2006-01-02")
		}
		return stored
	}

	values := map[string]string{
		"asset":             e.Asset,
		"parentAsset":       e.ParentAsset,
		"description":       e.Description,
		"model":             e.Model,
		"serialNumber":      e.SerialNumber,
		"manufacturer":      e.Manufacturer,
		"location":          e.Location,
		"currentCoverage":   e.CurrentCoverage,
		"endUser":           e.EndUser,
		"serviceProvider":   e.ServiceProvider,
		"status":            e.Status,
		"researchUnit":      e.ResearchUnit,
		"contractStartDate": dateInput(e.ContractStartDate),
		"contractEndDate":   dateInput(e.ContractEndDate),
		"contractCost":      strconv.FormatFloat(e.ContractCost, 'f', -1, 64),
		"planner":           e.Planner,
		"site":              e.Site,
	}

	out := make([]fieldInput, len(models.EquipmentFields))
	for i, spec := range models.EquipmentFields {
		out[i] = fieldInput{FieldSpec: spec, Value: values[spec.Name]}
	}
	return out
}

// equipmentFromForm собирает запись из полей формы. Отсутствующие поля
// становятся пустыми строками, кривая стоимость — нулём.
func equipmentFromForm(c *gin.Context) models.Equipment {
	field := func(name string) string { return strings.TrimSpace(c.PostForm(name)) }

	cost, err := strconv.ParseFloat(field("contractCost"), 64)
	if err != nil {
		cost = 0
	}

	return models.Equipment{
		Asset:             field("asset"),
		ParentAsset:       field("parentAsset"),
		Description:       field("description"),
		Model:             field("model"),
		SerialNumber:      field("serialNumber"),
		Manufacturer:      field("manufacturer"),
		Location:          field("location"),
		CurrentCoverage:   field("currentCoverage"),
		EndUser:           field("endUser"),
		ServiceProvider:   field("serviceProvider"),
		Status:            field("status"),
		ResearchUnit:      field("researchUnit"),
		ContractStartDate: excel.ParseDate(field("contractStartDate")),
		ContractEndDate:   excel.ParseDate(field("contractEndDate")),
		ContractCost:      cost,
		Planner:           field("planner"),
		Site:              field("site"),
	}
}

func (h *Handlers) ShowNewEquipment(c *gin.Context) {
	render(c, http.StatusOK, "equipment_new.html", gin.H{
		"fields": formFields(models.Equipment{}),
		"error":  "",
	})
}

func (h *Handlers) CreateEquipment(c *gin.Context) {
	item := equipmentFromForm(c)
	item = h.Store.AddEquipment(item)

	if user, ok := currentUser(c); ok {
		h.Store.LogActivity(user.Username, "equipment", item.ID, "create", "Добавлено оборудование: "+item.Asset)
	}

	c.Redirect(http.StatusFound, "/equipment")
}

func (h *Handlers) ShowEditEquipment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Оборудование не найдено")
		return
	}
	item, err := h.Store.EquipmentByID(id)
	if err != nil {
		c.String(http.StatusNotFound, "Оборудование не найдено")
		return
	}

	render(c, http.StatusOK, "equipment_edit.html", gin.H{
		"item":   item,
		"fields": formFields(item),
		"error":  "",
	})
}

func (h *Handlers) UpdateEquipment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Оборудование не найдено")
		return
	}

	item := equipmentFromForm(c)
	item.ID = id
	if err := h.Store.UpdateEquipment(item); err != nil {
		c.String(http.StatusNotFound, "Оборудование не найдено")
		return
	}

	if user, ok := currentUser(c); ok {
		h.Store.LogActivity(user.Username, "equipment", item.ID, "update", "Изменено оборудование: "+item.Asset)
	}

	c.Redirect(http.StatusFound, "/equipment")
}

// УДАЛЕНИЕ (подтверждение спрашивает форма в шаблоне)

func (h *Handlers) DeleteEquipment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Оборудование не найдено")
		return
	}
	if err := h.Store.DeleteEquipment(id); err != nil {
		c.String(http.StatusNotFound, "Оборудование не найдено")
		return
	}

	if user, ok := currentUser(c); ok {
		h.Store.LogActivity(user.Username, "equipment", id, "delete", "Удалено оборудование")
	}

	c.Redirect(http.StatusFound, "/equipment")
}

func (h *Handlers) DeleteSelectedEquipment(c *gin.Context) {
	ids := make([]int64, 0)
	for _, raw := range c.PostFormArray("ids") {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}

	deleted := h.Store.DeleteEquipmentMany(ids)

	if user, ok := currentUser(c); ok {
		h.Store.LogActivity(user.Username, "equipment", 0, "bulk_delete",
			"Удалено записей: "+strconv.Itoa(deleted))
	}

	c.Redirect(http.StatusFound, "/equipment")
}
