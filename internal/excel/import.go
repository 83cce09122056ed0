package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"labtrack/internal/models"

	"github.com/xuri/excelize/v2"
)

// Headers — колонки импорта и экспорта, в порядке полей каталога.
var Headers = []string{
	"Asset",
	"Parent Asset",
	"Description",
	"Model",
	"Serial Number",
	"Manufacturer",
	"Location",
	"Current Coverage",
	"End User",
	"Service Provider",
	"Status",
	"Research Unit",
	"Contract Start Date",
	"Contract End Date",
	"Contract Cost",
	"Planner",
	"Site",
}

// isoMillis — формат хранения дат (UTC, с миллисекундами).
const isoMillis = "2006-01-02T15:04:05.000Z"

// Read разбирает книгу xlsx и возвращает записи оборудования.
// Берётся только первый лист; первая строка — заголовки. Нечитаемый файл —
// ошибка всей операции; кривое значение в отдельной ячейке — нет: оно
// молча заменяется значением по умолчанию.
func Read(r io.Reader, nextID func() int64) ([]models.Equipment, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return []models.Equipment{}, nil
	}

	// колонки ищем по заголовку, а не по позиции
	colIdx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		colIdx[strings.TrimSpace(h)] = i
	}

	items := make([]models.Equipment, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cell := func(header string) string {
			idx, ok := colIdx[header]
			if !ok || idx >= len(row) {
				return ""
			}
			return row[idx]
		}

		items = append(items, models.Equipment{
			ID:                nextID(),
			Asset:             cell("Asset"),
			ParentAsset:       cell("Parent Asset"),
			Description:       cell("Description"),
			Model:             cell("Model"),
			SerialNumber:      cell("Serial Number"),
			Manufacturer:      cell("Manufacturer"),
			Location:          cell("Location"),
			CurrentCoverage:   cell("Current Coverage"),
			EndUser:           cell("End User"),
			ServiceProvider:   cell("Service Provider"),
			Status:            cell("Status"),
			ResearchUnit:      cell("Research Unit"),
			ContractStartDate: ParseDate(cell("Contract Start Date")),
			ContractEndDate:   ParseDate(cell("Contract End Date")),
			ContractCost:      ParseCost(cell("Contract Cost")),
			Planner:           cell("Planner"),
			Site:              cell("Site"),
		})
	}
	return items, nil
}

// ParseCost вычищает из строки всё, кроме цифр, точки и минуса, и разбирает
// как число; при неудаче — 0. Ведущий минус сознательно переживает очистку
// (и даёт отрицательную стоимость) — так вели себя и исходные данные.
func ParseCost(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// текстовые форматы дат, встречающиеся в реальных выгрузках
var importDateLayouts = []string{
	"2006-01-02T15:04:05.000Z",
	time.RFC3339,
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"1/2/06",
	"01-02-2006",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// ParseDate принимает либо порядковую дату Excel, либо текстовую дату и
// нормализует к ISO-8601 (UTC). Если разобрать не удалось — пустая строка,
// импорт из-за одной ячейки не прерывается.
func ParseDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return t.UTC().Format(isoMillis)
		}
		return ""
	}

	for _, layout := range importDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(isoMillis)
		}
	}
	return ""
}
