package create_booking

import "errors"

var (
	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("create_booking: malformed email")

	// ErrInvalidService возвращается при отсутствующей ссылке на услугу
	ErrInvalidService = errors.New("create_booking: service reference is required")

	// ErrInvalidDate возвращается при некорректной или прошедшей дате
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidSlot возвращается, когда метка слота не входит в каталог
	ErrInvalidSlot = errors.New("create_booking: invalid time slot")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("create_booking: internal error")
)
