package types

import (
	"errors"
	"fmt"
	"time"
)

// SlotLabelFormat формат метки слота в 12-часовом формате ("2:00 PM")
const SlotLabelFormat = "3:04 PM"

// ErrInvalidSlotLabel возвращается при некорректной метке временного слота
var ErrInvalidSlotLabel = errors.New("types: invalid slot label")

// SlotTime время начала слота в пределах дня
// Хранит только часы и минуты; абсолютный момент получается через At()
type SlotTime struct {
	Hour   int
	Minute int
}

// NewSlotTime создает SlotTime из часов и минут
func NewSlotTime(hour, minute int) SlotTime {
	return SlotTime{Hour: hour, Minute: minute}
}

// ParseSlotTime разбирает метку слота в 12-часовом формате ("2:00 PM")
func ParseSlotTime(label string) (SlotTime, error) {
	t, err := time.Parse(SlotLabelFormat, label)
	if err != nil {
		return SlotTime{}, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, label)
	}
	return SlotTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// String возвращает метку слота в 12-часовом формате с суффиксом AM/PM
func (s SlotTime) String() string {
	ref := time.Date(2000, time.January, 1, s.Hour, s.Minute, 0, 0, time.UTC)
	return ref.Format(SlotLabelFormat)
}

// At совмещает время слота с календарной датой в указанной временной зоне
// Возвращает абсолютный момент времени
func (s SlotTime) At(date time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(date.Year(), date.Month(), date.Day(), s.Hour, s.Minute, 0, 0, loc)
}

// AddMinutes возвращает SlotTime, сдвинутый на указанное число минут
func (s SlotTime) AddMinutes(minutes int) SlotTime {
	total := s.Hour*60 + s.Minute + minutes
	total %= 24 * 60
	if total < 0 {
		total += 24 * 60
	}
	return SlotTime{Hour: total / 60, Minute: total % 60}
}

// Before возвращает true, если слот начинается раньше other
func (s SlotTime) Before(other SlotTime) bool {
	if s.Hour != other.Hour {
		return s.Hour < other.Hour
	}
	return s.Minute < other.Minute
}
