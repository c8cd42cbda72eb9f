package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
	"github.com/m04kA/SMC-BookingPortal/internal/integrations/contentstore"
	"github.com/m04kA/SMC-BookingPortal/internal/service/bookings/models"
)

// Service жизненный цикл бронирований поверх content store
// Реализует create / fetch / existence-check / cancel с учетом того, что
// схема идентификаторов хранилища неоднозначна (documentId vs legacy id),
// а endpoints удаления и смены статуса не атомарны между собой
type Service struct {
	store  ContentStoreClient
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(store ContentStoreClient, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Create создает бронирование с минимальным набором полей
// Ошибки хранилища пробрасываются как есть: классификация для пользователя
// выполняется на уровне представления
func (s *Service) Create(ctx context.Context, req *models.CreateBookingRequest) (*domain.Booking, error) {
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	s.logger.Info("Create: creating booking for user=%s, service=%s, schedule=%s",
		req.UserEmail, req.ServiceID, req.ScheduleTime.Format(time.RFC3339))

	booking, err := s.store.CreateBooking(ctx, &contentstore.CreateBookingData{
		Service:       req.ServiceID,
		UserEmail:     req.UserEmail,
		ScheduleTime:  req.ScheduleTime.UTC().Format(time.RFC3339),
		BookingStatus: string(domain.StatusConfirmed),
	})
	if err != nil {
		s.logger.Error("Create: store rejected booking for user=%s: %v", req.UserEmail, err)
		return nil, err
	}

	s.logger.Info("Create: successfully created booking id=%s (legacy=%d)", booking.ID, booking.LegacyID)
	return booking, nil
}

// FetchForUser получает все бронирования пользователя, нормализованные и
// отсортированные по времени записи по убыванию
// Возвращает пустой список (не nil), если ничего не найдено
func (s *Service) FetchForUser(ctx context.Context, email string) ([]domain.Booking, error) {
	s.logger.Info("FetchForUser: fetching bookings for user=%s", email)

	list, err := s.store.ListBookings(ctx, email)
	if err != nil {
		s.logger.Error("FetchForUser: store error for user=%s: %v", email, err)
		return nil, fmt.Errorf("%w: FetchForUser - store error: %v", ErrInternal, err)
	}
	if list == nil {
		list = []domain.Booking{}
	}

	s.logger.Info("FetchForUser: fetched %d bookings for user=%s", len(list), email)
	return list, nil
}

// ListServices получает каталог услуг
func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	services, err := s.store.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: store error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - store error: %v", ErrInternal, err)
	}
	if services == nil {
		services = []domain.Service{}
	}
	return services, nil
}

// ExistenceCheck двухфазная проверка существования бронирования:
// прямой запрос по идентификатору, затем - независимо от чистого 404 первой
// фазы - фильтр по альтернативному полю идентификатора
//
// При сетевых сбоях (в отличие от чистого 404) проверка сознательно отвечает
// Exists=true без записи: лучше попытаться отменить возможно существующее
// бронирование, чем молча его потерять
func (s *Service) ExistenceCheck(ctx context.Context, id domain.BookingID) (*models.ExistenceResult, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("%w: empty booking id", ErrInvalidInput)
	}

	record, state := s.probe(ctx, id)

	switch state {
	case probeFound:
		return &models.ExistenceResult{Exists: true, Record: record}, nil
	case probeCleanMiss:
		s.logger.Info("ExistenceCheck: booking id=%s confirmed absent", id)
		return &models.ExistenceResult{Exists: false}, nil
	default: // probeInconclusive
		s.logger.Warn("ExistenceCheck: probes inconclusive for id=%s, assuming booking exists", id)
		return &models.ExistenceResult{Exists: true}, nil
	}
}

// probeState результат двухфазного зондирования
type probeState int

const (
	probeFound        probeState = iota // запись найдена
	probeCleanMiss                      // обе фазы дали чистый 404 / пустой результат
	probeInconclusive                   // хотя бы одна фаза упала не-404 ошибкой
)

// probe выполняет обе фазы зондирования по порядку
// Чистый 404 первой фазы - негативный сигнал, но не повод останавливаться:
// идентификатор мог быть выдан по альтернативной схеме
func (s *Service) probe(ctx context.Context, id domain.BookingID) (*domain.Booking, probeState) {
	phase1Clean := false

	record, err := s.store.GetBooking(ctx, id.String())
	if err == nil {
		return record, probeFound
	}
	if errors.Is(err, contentstore.ErrNotFound) {
		phase1Clean = true
		s.logger.Info("probe: direct fetch 404 for id=%s, trying filtered query", id)
	} else {
		s.logger.Warn("probe: direct fetch failed for id=%s: %v", id, err)
	}

	matches, err := s.store.FilterBookingsByDocumentID(ctx, id.String())
	if err == nil {
		if len(matches) > 0 {
			found := matches[0]
			return &found, probeFound
		}
		if phase1Clean {
			return nil, probeCleanMiss
		}
		// Первая фаза упала, вторая дала чистый пустой результат -
		// хранилище явно ответило, что записи нет
		return nil, probeCleanMiss
	}

	s.logger.Warn("probe: filtered query failed for id=%s: %v", id, err)
	return nil, probeInconclusive
}

// validateCreateRequest клиентская валидация перед походом в хранилище
func validateCreateRequest(req *models.CreateBookingRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.ServiceID == "" {
		return fmt.Errorf("%w: service reference is required", ErrInvalidInput)
	}
	if !strings.Contains(req.UserEmail, "@") {
		return fmt.Errorf("%w: malformed email %q", ErrInvalidInput, req.UserEmail)
	}
	if req.ScheduleTime.IsZero() {
		return fmt.Errorf("%w: schedule time is required", ErrInvalidInput)
	}
	return nil
}
