package domain

import "time"

// CalendarCell одна ячейка календарной сетки месяца
// Производное состояние: пересоздается при каждой навигации по месяцам
type CalendarCell struct {
	Date       time.Time
	InMonth    bool // принадлежит отображаемому месяцу
	IsToday    bool
	IsSelected bool
	IsDisabled bool // прошедшие даты и даты вне отображаемого месяца
}

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Midnight обнуляет время, оставляя только дату
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsDateInPast проверяет, что дата строго раньше сегодняшнего дня
func IsDateInPast(date, now time.Time) bool {
	return Midnight(date).Before(Midnight(now))
}
