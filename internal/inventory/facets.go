package inventory

import (
	"sort"

	"labtrack/internal/models"
)

// Planners — уникальные непустые значения поля planner, по алфавиту.
func Planners(items []models.Equipment) []string {
	return uniqueValues(items, func(e models.Equipment) string { return e.Planner })
}

// Sites — уникальные непустые значения поля site, по алфавиту.
func Sites(items []models.Equipment) []string {
	return uniqueValues(items, func(e models.Equipment) string { return e.Site })
}

func uniqueValues(items []models.Equipment, get func(models.Equipment) string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		v := get(item)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
