package create_booking

import (
	"context"
	"time"

	serviceModels "github.com/m04kA/SMC-BookingPortal/internal/service/bookings/models"
)

// UseCase use case создания бронирования
// Совмещает выбранную ячейку календаря и метку слота в абсолютный момент
// времени в зоне наблюдателя и отдает его сервису бронирований
type UseCase struct {
	bookingsService BookingsService
	timeProvider    TimeProvider
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingsService BookingsService, loc *time.Location, logger Logger) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{
		bookingsService: bookingsService,
		timeProvider:    &RealTimeProvider{},
		location:        loc,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, service=%s, date=%s, slot=%s",
		req.UserEmail, req.ServiceID, req.Date, req.SlotLabel)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now().In(uc.location)

	date, err := parseDate(req.Date, now, uc.location)
	if err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	slot, err := parseSlot(req.SlotLabel)
	if err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	// Календарная дата + слот = абсолютный момент в зоне наблюдателя
	scheduleTime := slot.At(date, uc.location)

	booking, err := uc.bookingsService.Create(ctx, &serviceModels.CreateBookingRequest{
		ServiceID:    req.ServiceID,
		UserEmail:    req.UserEmail,
		ScheduleTime: scheduleTime,
	})
	if err != nil {
		// Ошибки хранилища уходят наверх как есть - классификацией
		// для пользователя занимается слой представления
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", booking.ID)
	return fromDomainBooking(booking), nil
}
