package inventory

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"labtrack/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Query — конфигурация фильтра и сортировки списка оборудования.
// Все активные фильтры объединяются по "И".
type Query struct {
	FilterField    string // имя поля из каталога (кроме planner/site)
	FilterValue    string // подстрока, без учёта регистра
	Planner        string
	Site           string
	NearExpiration bool // показывать только контракты с истекающим сроком
	SortField      string
	SortDirection  SortDirection
}

// DefaultQuery — состояние фильтров при первом открытии списка.
func DefaultQuery() Query {
	return Query{
		FilterField:   "asset",
		SortField:     "asset",
		SortDirection: SortAsc,
	}
}

// Apply применяет фильтры и сортировку к снимку коллекции и возвращает
// новый срез; входной срез не изменяется. Результат всегда подмножество items.
func Apply(items []models.Equipment, q Query, now time.Time) []models.Equipment {
	needle := strings.ToLower(q.FilterValue)
	planner := strings.ToLower(q.Planner)
	site := strings.ToLower(q.Site)

	out := make([]models.Equipment, 0, len(items))
	for _, item := range items {
		if needle != "" && !strings.Contains(strings.ToLower(fieldString(item, q.FilterField)), needle) {
			continue
		}
		if planner != "" && !strings.Contains(strings.ToLower(item.Planner), planner) {
			continue
		}
		if site != "" && !strings.Contains(strings.ToLower(item.Site), site) {
			continue
		}
		if q.NearExpiration && !NearExpiration(item.ContractEndDate, now) {
			continue
		}
		out = append(out, item)
	}

	sortItems(out, q.SortField, q.SortDirection)
	return out
}

// sortItems сортирует по одному ключу; порядок равных элементов не оговорён.
func sortItems(items []models.Equipment, field string, dir SortDirection) {
	if field == "" {
		return
	}
	sign := 1
	if dir == SortDesc {
		sign = -1
	}

	spec, ok := models.FieldByName(field)
	numeric := field == "id" || (ok && spec.Kind == models.FieldNumber)

	// Collator не потокобезопасен, поэтому свой на каждый вызов.
	collator := collate.New(language.English, collate.Loose)

	sort.Slice(items, func(i, j int) bool {
		if numeric {
			return numericField(items[i], field)*float64(sign) < numericField(items[j], field)*float64(sign)
		}
		return collator.CompareString(fieldString(items[i], field), fieldString(items[j], field))*sign < 0
	})
}

func numericField(e models.Equipment, field string) float64 {
	if field == "id" {
		return float64(e.ID)
	}
	return e.ContractCost
}

// fieldString — строковое представление поля для фильтрации и сортировки.
func fieldString(e models.Equipment, field string) string {
	switch field {
	case "id":
		return strconv.FormatInt(e.ID, 10)
	case "asset":
		return e.Asset
	case "parentAsset":
		return e.ParentAsset
	case "description":
		return e.Description
	case "model":
		return e.Model
	case "serialNumber":
		return e.SerialNumber
	case "manufacturer":
		return e.Manufacturer
	case "location":
		return e.Location
	case "currentCoverage":
		return e.CurrentCoverage
	case "endUser":
		return e.EndUser
	case "serviceProvider":
		return e.ServiceProvider
	case "status":
		return e.Status
	case "researchUnit":
		return e.ResearchUnit
	case "contractStartDate":
		return e.ContractStartDate
	case "contractEndDate":
		return e.ContractEndDate
	case "contractCost":
		return strconv.FormatFloat(e.ContractCost, 'f', -1, 64)
	case "planner":
		return e.Planner
	case "site":
		return e.Site
	}
	return ""
}
