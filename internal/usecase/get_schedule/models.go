package get_schedule

import (
	"github.com/m04kA/SMC-BookingPortal/internal/domain"
)

// Request запрос сетки расписания
type Request struct {
	// Month отображаемый месяц в формате YYYY-MM; пустое значение - текущий
	Month string
	// Selected выбранная дата в формате YYYY-MM-DD (опционально)
	Selected string
}

// Cell ячейка календарной сетки
type Cell struct {
	Date       string `json:"date"` // YYYY-MM-DD
	Day        int    `json:"day"`
	InMonth    bool   `json:"inMonth"`
	IsToday    bool   `json:"isToday"`
	IsSelected bool   `json:"isSelected"`
	IsDisabled bool   `json:"isDisabled"`
}

// Response сетка месяца и каталог слотов
type Response struct {
	Month string   `json:"month"` // YYYY-MM
	Cells []Cell   `json:"cells"`
	Slots []string `json:"slots"`
}

// fromDomainCells конвертирует доменные ячейки в DTO
func fromDomainCells(cells []domain.CalendarCell) []Cell {
	result := make([]Cell, len(cells))
	for i, c := range cells {
		result[i] = Cell{
			Date:       c.Date.Format(domain.DateFormat),
			Day:        c.Date.Day(),
			InMonth:    c.InMonth,
			IsToday:    c.IsToday,
			IsSelected: c.IsSelected,
			IsDisabled: c.IsDisabled,
		}
	}
	return result
}
