package get_schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
)

// UseCase use case построения сетки расписания
// Состояния не хранит: сетка пересоздается на каждый запрос (навигацию)
type UseCase struct {
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// loc определяет зону наблюдателя для определения "сегодня"; nil = time.Local
func NewUseCase(loc *time.Location, logger Logger) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{
		timeProvider: &RealTimeProvider{},
		location:     loc,
		logger:       logger,
	}
}

// Execute строит сетку месяца и каталог слотов
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now().In(uc.location)

	viewed := now
	if req.Month != "" {
		parsed, err := time.ParseInLocation(domain.MonthFormat, req.Month, uc.location)
		if err != nil {
			uc.logger.Warn("GetSchedule: invalid month %q", req.Month)
			return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, req.Month)
		}
		viewed = parsed
	}

	var selected *time.Time
	if req.Selected != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, req.Selected, uc.location)
		if err != nil {
			uc.logger.Warn("GetSchedule: invalid selected date %q", req.Selected)
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Selected)
		}
		selected = &parsed
	}

	cells := GenerateMonthGrid(viewed, now, selected)

	return &Response{
		Month: time.Date(viewed.Year(), viewed.Month(), 1, 0, 0, 0, 0, uc.location).Format(domain.MonthFormat),
		Cells: fromDomainCells(cells),
		Slots: SlotLabels(),
	}, nil
}
