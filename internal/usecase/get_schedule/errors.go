package get_schedule

import "errors"

var (
	// ErrInvalidMonth возвращается при некорректном формате месяца
	ErrInvalidMonth = errors.New("get_schedule: invalid month format")

	// ErrInvalidDate возвращается при некорректной выбранной дате
	ErrInvalidDate = errors.New("get_schedule: invalid selected date")
)
