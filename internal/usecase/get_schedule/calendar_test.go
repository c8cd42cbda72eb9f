package get_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
)

func TestGenerateMonthGrid_AlwaysFortyTwoCells(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	for month := time.January; month <= time.December; month++ {
		viewed := time.Date(2026, month, 1, 0, 0, 0, 0, time.UTC)
		cells := GenerateMonthGrid(viewed, now, nil)
		assert.Len(t, cells, domain.CalendarGridCells, "month %s", month)
	}
}

func TestGenerateMonthGrid_SundayStartMonthHasNoLeadingPadding(t *testing.T) {
	// Февраль 2026 начинается с воскресенья: сетка стартует сразу с 1 числа
	now := time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC)
	viewed := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	cells := GenerateMonthGrid(viewed, now, nil)

	require.Len(t, cells, 42)
	assert.Equal(t, 1, cells[0].Date.Day())
	assert.True(t, cells[0].InMonth)
	assert.Equal(t, time.Sunday, cells[0].Date.Weekday())
}

func TestGenerateMonthGrid_LeadingAndTrailingPadding(t *testing.T) {
	// Сентябрь 2026 начинается со вторника: две ячейки хвоста августа слева
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	viewed := now

	cells := GenerateMonthGrid(viewed, now, nil)

	require.Len(t, cells, 42)
	assert.Equal(t, time.Sunday, cells[0].Date.Weekday())
	assert.Equal(t, 30, cells[0].Date.Day())
	assert.Equal(t, time.August, cells[0].Date.Month())
	assert.False(t, cells[0].InMonth)
	assert.False(t, cells[1].InMonth)
	assert.True(t, cells[2].InMonth)
	assert.Equal(t, 1, cells[2].Date.Day())

	// Сентябрь кончается 30-го: остаток сетки - начало октября
	last := cells[41]
	assert.Equal(t, time.October, last.Date.Month())
	assert.False(t, last.InMonth)
}

func TestGenerateMonthGrid_SaturdayStartLongMonth(t *testing.T) {
	// Август 2026: 31 день, начинается с субботы - максимальный сдвиг
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	viewed := now

	cells := GenerateMonthGrid(viewed, now, nil)

	require.Len(t, cells, 42)
	assert.False(t, cells[5].InMonth)
	assert.True(t, cells[6].InMonth)
	assert.Equal(t, 1, cells[6].Date.Day())
	assert.True(t, cells[36].InMonth)
	assert.Equal(t, 31, cells[36].Date.Day())
	assert.False(t, cells[37].InMonth)
}

func TestGenerateMonthGrid_InMonthDatesAscending(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	cells := GenerateMonthGrid(now, now, nil)

	expected := 1
	for _, c := range cells {
		if c.InMonth {
			assert.Equal(t, expected, c.Date.Day())
			expected++
		}
	}
	// в сентябре 30 дней
	assert.Equal(t, 31, expected)
}

func TestGenerateMonthGrid_FlagsTodaySelectedDisabled(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	selected := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)

	cells := GenerateMonthGrid(now, now, &selected)

	var today, sel *domain.CalendarCell
	for i := range cells {
		if cells[i].IsToday {
			today = &cells[i]
		}
		if cells[i].IsSelected {
			sel = &cells[i]
		}
	}

	require.NotNil(t, today)
	assert.Equal(t, 15, today.Date.Day())
	assert.False(t, today.IsDisabled, "сегодняшний день доступен для выбора")

	require.NotNil(t, sel)
	assert.Equal(t, 20, sel.Date.Day())
}

func TestIsCellDisabled(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	month := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	past := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsCellDisabled(past, month, now))

	today := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsCellDisabled(today, month, now))

	future := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsCellDisabled(future, month, now))

	// будущая дата, но вне отображаемого месяца
	outside := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsCellDisabled(outside, month, now))
}
