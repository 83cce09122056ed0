package inventory

import (
	"math"
	"time"
)

// RenewalWindowDays — горизонт предупреждения о продлении контракта.
const RenewalWindowDays = 60

// дата может храниться как полный ISO-таймстамп или как голая дата
var storedDateLayouts = []string{
	"2006-01-02T15:04:05.000Z",
	time.RFC3339,
	"2006-01-02",
}

func parseStoredDate(s string) (time.Time, bool) {
	for _, layout := range storedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysUntil — количество дней до даты окончания, с округлением вверх.
func DaysUntil(endDate string, now time.Time) (int, bool) {
	if endDate == "" {
		return 0, false
	}
	end, ok := parseStoredDate(endDate)
	if !ok {
		return 0, false
	}
	return int(math.Ceil(end.Sub(now).Hours() / 24)), true
}

// NearExpiration — предикат списка: строго 0 < daysLeft <= 60.
// Контракт, истекающий сегодня, сюда уже НЕ попадает.
func NearExpiration(endDate string, now time.Time) bool {
	days, ok := DaysUntil(endDate, now)
	return ok && days > 0 && days <= RenewalWindowDays
}

// InRenewalWindow — предикат сводки продлений: 0 <= daysLeft <= 60.
// Окно на день шире, чем у NearExpiration, — границы у двух
// компонентов исторически разные, и объединять их нельзя.
func InRenewalWindow(endDate string, now time.Time) bool {
	days, ok := DaysUntil(endDate, now)
	return ok && days >= 0 && days <= RenewalWindowDays
}
