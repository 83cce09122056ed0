package inventory

import (
	"sort"
	"time"

	"labtrack/internal/models"
)

// UnassignedPlanner — метка для записей без планировщика в сводке продлений.
const UnassignedPlanner = "Unassigned"

// PlannerRenewals — количество контрактов на продление у одного планировщика.
type PlannerRenewals struct {
	Planner string
	Count   int
}

// RenewalsByPlanner строит сводку по ВСЕЙ коллекции (не по отфильтрованному
// виду): контракты в окне [0, 60] дней, сгруппированные по планировщику.
// Пустой результат означает, что сводку показывать не нужно.
func RenewalsByPlanner(items []models.Equipment, now time.Time) []PlannerRenewals {
	counts := make(map[string]int)
	for _, item := range items {
		if !InRenewalWindow(item.ContractEndDate, now) {
			continue
		}
		planner := item.Planner
		if planner == "" {
			planner = UnassignedPlanner
		}
		counts[planner]++
	}

	out := make([]PlannerRenewals, 0, len(counts))
	for planner, n := range counts {
		out = append(out, PlannerRenewals{Planner: planner, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Planner < out[j].Planner })
	return out
}
