package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// ни прямым запросом, ни фильтром по альтернативному идентификатору
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrCancellationFailed возвращается, когда не сработали обе стратегии
	// отмены (удаление и смена статуса)
	ErrCancellationFailed = errors.New("bookings: cancellation failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
