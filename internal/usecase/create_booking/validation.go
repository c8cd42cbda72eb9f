package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
	"github.com/m04kA/SMC-BookingPortal/internal/usecase/get_schedule"
	"github.com/m04kA/SMC-BookingPortal/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInternal)
	}
	if !strings.Contains(req.UserEmail, "@") {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, req.UserEmail)
	}
	if req.ServiceID == "" {
		return ErrInvalidService
	}
	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	if req.SlotLabel == "" {
		return fmt.Errorf("%w: slot label is required", ErrInvalidSlot)
	}
	return nil
}

// parseDate разбирает дату ячейки календаря и проверяет, что она не в прошлом
// Выбор прошедшей (disabled) даты - no-op на UI, но use case проверяет сам
func parseDate(raw string, now time.Time, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(domain.DateFormat, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	if domain.IsDateInPast(date, now) {
		return time.Time{}, fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, raw)
	}
	return date, nil
}

// parseSlot разбирает метку слота и проверяет принадлежность каталогу
func parseSlot(label string) (types.SlotTime, error) {
	if !get_schedule.IsValidSlotLabel(label) {
		return types.SlotTime{}, fmt.Errorf("%w: %q", ErrInvalidSlot, label)
	}
	slot, err := types.ParseSlotTime(label)
	if err != nil {
		return types.SlotTime{}, fmt.Errorf("%w: %q", ErrInvalidSlot, label)
	}
	return slot, nil
}
