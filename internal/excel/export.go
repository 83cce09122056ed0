package excel

import (
	"fmt"
	"time"

	"labtrack/internal/models"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Equipment List"

// Write собирает книгу xlsx из переданного (уже отфильтрованного и
// отсортированного) вида. Пустой вид даёт файл с одной строкой заголовков.
func Write(items []models.Equipment) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, item := range items {
		row := []interface{}{
			item.Asset,
			item.ParentAsset,
			item.Description,
			item.Model,
			item.SerialNumber,
			item.Manufacturer,
			item.Location,
			item.CurrentCoverage,
			item.EndUser,
			item.ServiceProvider,
			item.Status,
			item.ResearchUnit,
			FormatDate(item.ContractStartDate),
			FormatDate(item.ContractEndDate),
			item.ContractCost, // число как есть, без знака валюты
			item.Planner,
			item.Site,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	return f, nil
}

// Filename — имя файла выгрузки с текущей датой.
func Filename(now time.Time) string {
	return fmt.Sprintf("equipment_list_%s.xlsx", now.Format("2006-01-02"))
}

// FormatDate переводит хранимую ISO-дату в MM/DD/YYYY для выгрузки и таблиц.
// Неразбираемое значение возвращается как есть.
func FormatDate(stored string) string {
	if stored == "" {
		return ""
	}
	for _, layout := range importDateLayouts {
		if t, err := time.Parse(layout, stored); err == nil {
			return t.Format("01/02/2006")
		}
	}
	return stored
}
