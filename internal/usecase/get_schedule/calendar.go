package get_schedule

import (
	"time"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
)

// Генерация календарной сетки месяца.
//
// Сетка всегда прямоугольная: 6 строк по 7 дней (42 ячейки), неделя
// начинается с воскресенья. Первая строка дополняется хвостом предыдущего
// месяца, остаток - началом следующего. Функции чистые: одинаковый вход
// дает одинаковую сетку.

// GenerateMonthGrid строит сетку из ровно 42 ячеек для месяца, которому
// принадлежит viewed
// selected может быть nil, если дата не выбрана
func GenerateMonthGrid(viewed time.Time, now time.Time, selected *time.Time) []domain.CalendarCell {
	firstOfMonth := time.Date(viewed.Year(), viewed.Month(), 1, 0, 0, 0, 0, viewed.Location())

	// Сколько ячеек предыдущего месяца нужно слева от дня 1
	// (воскресенье = 0 ячеек)
	leading := int(firstOfMonth.Weekday())
	start := firstOfMonth.AddDate(0, 0, -leading)

	cells := make([]domain.CalendarCell, 0, domain.CalendarGridCells)
	for i := 0; i < domain.CalendarGridCells; i++ {
		date := start.AddDate(0, 0, i)
		inMonth := date.Month() == firstOfMonth.Month() && date.Year() == firstOfMonth.Year()

		cell := domain.CalendarCell{
			Date:       date,
			InMonth:    inMonth,
			IsToday:    domain.SameDay(date, now),
			IsDisabled: IsCellDisabled(date, firstOfMonth, now),
		}
		if selected != nil && domain.SameDay(date, *selected) {
			cell.IsSelected = true
		}
		cells = append(cells, cell)
	}

	return cells
}

// IsCellDisabled проверяет, что ячейка недоступна для выбора:
// дата строго раньше сегодняшнего дня (время обнулено до полуночи)
// либо дата вне отображаемого месяца
func IsCellDisabled(date time.Time, viewedMonth time.Time, now time.Time) bool {
	if domain.IsDateInPast(date, now) {
		return true
	}
	return date.Month() != viewedMonth.Month() || date.Year() != viewedMonth.Year()
}
