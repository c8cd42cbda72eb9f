package bookings

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
	"github.com/m04kA/SMC-BookingPortal/internal/integrations/contentstore"
)

// Отмена бронирования - последовательный перебор стратегий.
//
// Endpoints удаления и смены статуса хранилища не атомарны с точки зрения
// клиента и могут гоняться с другим клиентом или с предыдущей частичной
// попыткой, поэтому исходы стратегий типизированы, а правила вывода
// (404 после неудачного удаления = удаление все же прошло) явные.

// strategyOutcome типизированный исход стратегии отмены
type strategyOutcome int

const (
	// outcomeSuccess отмена подтверждена, дальнейшие стратегии не нужны
	outcomeSuccess strategyOutcome = iota
	// outcomeFallthrough стратегия не сработала, переходим к следующей
	outcomeFallthrough
	// outcomeTerminal стратегия не сработала и продолжать нет смысла
	outcomeTerminal
)

// cancelStrategy одна стратегия отмены бронирования
type cancelStrategy struct {
	name string
	run  func(ctx context.Context, id string) (strategyOutcome, error)
}

// Cancel отменяет бронирование
//
// Последовательность:
//  1. двухфазное разрешение идентификатора в подтвержденную запись;
//     чистое отсутствие в обеих фазах - ErrBookingNotFound
//  2. удаление записи; любой не-404 сбой - переход к шагу 3
//  3. смена статуса на cancelled; 404 на этом шаге означает, что удаление
//     на самом деле прошло на стороне хранилища (stale-read гонка) - успех
//
// "already deleted" в тексте ошибки любого шага также трактуется как успех.
// Только не-404 сбой обоих шагов дает ErrCancellationFailed
func (s *Service) Cancel(ctx context.Context, id domain.BookingID) error {
	if id.IsZero() {
		return fmt.Errorf("%w: empty booking id", ErrInvalidInput)
	}

	s.logger.Info("Cancel: cancelling booking id=%s", id)

	// Разрешаем идентификатор в каноническую запись
	record, state := s.probe(ctx, id)
	if state == probeCleanMiss {
		s.logger.Warn("Cancel: booking id=%s not found in either probe phase", id)
		return ErrBookingNotFound
	}

	// Канонический id записи, если зондирование ее нашло; иначе - исходный
	// идентификатор (консервативно продолжаем попытку отмены)
	cancelID := id.String()
	if record != nil {
		cancelID = record.ID.String()
	}

	strategies := []cancelStrategy{
		{name: "delete", run: s.runDelete},
		{name: "update-status", run: s.runUpdateStatus},
	}

	var failures []error
	for _, strategy := range strategies {
		outcome, err := strategy.run(ctx, cancelID)
		switch outcome {
		case outcomeSuccess:
			s.logger.Info("Cancel: booking id=%s cancelled via %s", cancelID, strategy.name)
			return nil
		case outcomeFallthrough:
			s.logger.Warn("Cancel: strategy %s failed for id=%s, falling through: %v",
				strategy.name, cancelID, err)
			failures = append(failures, fmt.Errorf("%s: %v", strategy.name, err))
		case outcomeTerminal:
			failures = append(failures, fmt.Errorf("%s: %v", strategy.name, err))
			s.logger.Error("Cancel: all strategies failed for id=%s: %v", cancelID, failures)
			return fmt.Errorf("%w: %v", ErrCancellationFailed, errors.Join(failures...))
		}
	}

	s.logger.Error("Cancel: all strategies failed for id=%s: %v", cancelID, failures)
	return fmt.Errorf("%w: %v", ErrCancellationFailed, errors.Join(failures...))
}

// runDelete пытается удалить запись целиком
func (s *Service) runDelete(ctx context.Context, id string) (strategyOutcome, error) {
	err := s.store.DeleteBooking(ctx, id)
	if err == nil {
		return outcomeSuccess, nil
	}
	if isAlreadyGone(err) {
		// Запись уже отсутствует - цель достигнута
		return outcomeSuccess, nil
	}
	return outcomeFallthrough, err
}

// runUpdateStatus пытается перевести запись в статус cancelled
// 404 здесь означает, что предыдущее удаление все же прошло на стороне
// хранилища, а наблюдавшийся сбой был гонкой со stale-read - успех
func (s *Service) runUpdateStatus(ctx context.Context, id string) (strategyOutcome, error) {
	err := s.store.UpdateBookingStatus(ctx, id, domain.StatusCancelled)
	if err == nil {
		return outcomeSuccess, nil
	}
	if isAlreadyGone(err) {
		return outcomeSuccess, nil
	}
	return outcomeTerminal, err
}

// isAlreadyGone распознает исходы "записи уже нет": чистый 404 либо
// явное "already deleted" в тексте ошибки хранилища
func isAlreadyGone(err error) bool {
	if errors.Is(err, contentstore.ErrNotFound) {
		return true
	}
	if contentstore.IsStatus(err, http.StatusNotFound) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "already deleted")
}
