package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDaysUntil(t *testing.T) {
	now := date("2024-01-01")

	days, ok := DaysUntil("2024-01-31T00:00:00.000Z", now)
	require.True(t, ok)
	assert.Equal(t, 30, days)

	days, ok = DaysUntil("2023-12-31T00:00:00.000Z", now)
	require.True(t, ok)
	assert.Equal(t, -1, days)

	_, ok = DaysUntil("", now)
	assert.False(t, ok)

	_, ok = DaysUntil("not a date", now)
	assert.False(t, ok)
}

// Границы у двух предикатов сознательно разные: контракт, истекающий
// сегодня (daysLeft = 0), не считается "истекающим" в списке, но попадает
// в сводку продлений.
func TestExpirationBoundaries(t *testing.T) {
	now := date("2024-01-01")

	tests := []struct {
		name       string
		endDate    string
		wantNear   bool
		wantWindow bool
	}{
		{"expires today", "2024-01-01T00:00:00.000Z", false, true},
		{"expires tomorrow", "2024-01-02T00:00:00.000Z", true, true},
		{"expires in 60 days", "2024-03-01T00:00:00.000Z", true, true},
		{"expires in 61 days", "2024-03-02T00:00:00.000Z", false, false},
		{"already expired", "2023-12-15T00:00:00.000Z", false, false},
		{"empty date", "", false, false},
		{"garbage date", "soon", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantNear, NearExpiration(tt.endDate, now), "NearExpiration")
			assert.Equal(t, tt.wantWindow, InRenewalWindow(tt.endDate, now), "InRenewalWindow")
		})
	}
}

func TestDaysUntil_BareDateStorage(t *testing.T) {
	// даты, введённые через форму, могут храниться и как голая дата
	days, ok := DaysUntil("2024-01-31", date("2024-01-01"))
	require.True(t, ok)
	assert.Equal(t, 30, days)
}
