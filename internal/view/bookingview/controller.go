package bookingview

import (
	"context"
	"errors"
	"sync"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
	"github.com/m04kA/SMC-BookingPortal/internal/integrations/authprovider"
	"github.com/m04kA/SMC-BookingPortal/internal/service/bookings"
	bookingmodels "github.com/m04kA/SMC-BookingPortal/internal/service/bookings/models"
	"github.com/m04kA/SMC-BookingPortal/internal/view"
)

// Tab вкладка списка бронирований
type Tab string

const (
	TabUpcoming Tab = "upcoming"
	TabPast     Tab = "past"
)

// CancelState состояние процесса отмены бронирования
type CancelState int

const (
	// CancelIdle отмена не запущена
	CancelIdle CancelState = iota
	// CancelChecking идет проверка существования записи в хранилище
	CancelChecking
	// CancelCancelling запись найдена, выполняется отмена
	CancelCancelling
)

const (
	msgCancelSuccess  = "Бронирование отменено"
	msgAlreadyRemoved = "Бронирование уже удалено"
	msgCancelFailed   = "Не удалось отменить бронирование, попробуйте позже"
	msgLoadFailed     = "Не удалось загрузить бронирования"
)

// Controller состояние экрана списка бронирований.
// События сессии могут приходить из другой горутины, поэтому все
// состояние защищено мьютексом. Сетевые вызовы выполняются без
// удержания мьютекса, устаревшие результаты отбрасываются по epoch.
type Controller struct {
	mu     sync.Mutex
	svc    BookingLifecycle
	clock  view.Clock
	logger Logger

	epoch       uint64
	session     *authprovider.Session
	bookings    []domain.Booking
	activeTab   Tab
	selected    *domain.Booking
	cancelState CancelState
	message     *view.Message
}

func NewController(svc BookingLifecycle, clock view.Clock, logger Logger) *Controller {
	if clock == nil {
		clock = view.SystemClock{}
	}
	return &Controller{
		svc:       svc,
		clock:     clock,
		logger:    logger,
		activeTab: TabUpcoming,
	}
}

// HandleSessionChange обрабатывает смену сессии. Любая смена полностью
// сбрасывает локальное состояние; при входе список загружается заново.
func (c *Controller) HandleSessionChange(ctx context.Context, session *authprovider.Session) error {
	c.mu.Lock()
	c.epoch++
	c.session = session
	c.bookings = nil
	c.selected = nil
	c.cancelState = CancelIdle
	c.message = nil
	c.activeTab = TabUpcoming
	c.mu.Unlock()

	if session == nil {
		return nil
	}
	return c.Refresh(ctx)
}

// Refresh перезагружает список бронирований текущей сессии
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return nil
	}
	email := c.session.Email
	epoch := c.epoch
	c.mu.Unlock()

	list, err := c.svc.FetchForUser(ctx, email)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		// сессия сменилась во время запроса, результат устарел
		return nil
	}
	if err != nil {
		c.logger.Error("bookingview.Controller.Refresh - ошибка загрузки: %v", err)
		c.setMessageLocked(msgLoadFailed, view.MessageError)
		return err
	}
	c.bookings = list
	return nil
}

// SelectTab переключает активную вкладку
func (c *Controller) SelectTab(tab Tab) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if tab != TabUpcoming && tab != TabPast {
		return
	}
	c.activeTab = tab
}

// ActiveTab возвращает активную вкладку
func (c *Controller) ActiveTab() Tab {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeTab
}

// VisibleBookings возвращает бронирования активной вкладки.
// Отмененные бронирования всегда попадают в прошедшие.
func (c *Controller) VisibleBookings() []domain.Booking {
	c.mu.Lock()
	defer c.mu.Unlock()
	tabs := bookingmodels.Partition(c.bookings, c.clock.Now())
	if c.activeTab == TabPast {
		return tabs.Past
	}
	return tabs.Upcoming
}

// OpenCancelModal открывает диалог подтверждения отмены.
// Диалог виден тогда и только тогда, когда выбрано бронирование.
func (c *Controller) OpenCancelModal(id domain.BookingID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelState != CancelIdle {
		return false
	}
	for i := range c.bookings {
		if c.bookings[i].ID == id {
			b := c.bookings[i]
			c.selected = &b
			return true
		}
	}
	return false
}

// CloseModal закрывает диалог, если отмена не выполняется
func (c *Controller) CloseModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelState != CancelIdle {
		return
	}
	c.epoch++
	c.selected = nil
}

// ModalVisible возвращает true, если диалог подтверждения открыт
func (c *Controller) ModalVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected != nil
}

// CancelInFlight возвращает true, пока отмена в процессе.
// Кнопка подтверждения на это время блокируется.
func (c *Controller) CancelInFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancelState != CancelIdle
}

// ConfirmCancel запускает отмену выбранного бронирования.
// Сначала проверяется существование записи: отсутствующая запись
// удаляется из списка без обращения к отмене. Повторный запуск при
// уже идущей отмене игнорируется.
func (c *Controller) ConfirmCancel(ctx context.Context) {
	c.mu.Lock()
	if c.selected == nil || c.cancelState != CancelIdle {
		c.mu.Unlock()
		return
	}
	id := c.selected.ID
	epoch := c.epoch
	c.cancelState = CancelChecking
	c.mu.Unlock()

	res, err := c.svc.ExistenceCheck(ctx, id)

	c.mu.Lock()
	if c.epoch != epoch {
		c.cancelState = CancelIdle
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.logger.Error("bookingview.Controller.ConfirmCancel - проверка существования: %v", err)
		c.finishCancelLocked(id, false, msgCancelFailed, view.MessageError)
		c.mu.Unlock()
		return
	}
	if !res.Exists {
		// записи уже нет, просто убираем ее локально
		c.finishCancelLocked(id, true, msgAlreadyRemoved, view.MessageInfo)
		c.mu.Unlock()
		return
	}
	c.cancelState = CancelCancelling
	c.mu.Unlock()

	err = c.svc.Cancel(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		c.cancelState = CancelIdle
		return
	}
	switch {
	case err == nil:
		c.finishCancelLocked(id, true, msgCancelSuccess, view.MessageInfo)
	case errors.Is(err, bookings.ErrBookingNotFound):
		c.finishCancelLocked(id, true, msgAlreadyRemoved, view.MessageInfo)
	default:
		c.logger.Error("bookingview.Controller.ConfirmCancel - отмена: %v", err)
		c.finishCancelLocked(id, false, msgCancelFailed, view.MessageError)
	}
}

// BeginReschedule готовит черновик переноса бронирования: услуга
// переносится, дату и слот пользователь выбирает заново
func (c *Controller) BeginReschedule(id domain.BookingID) (domain.RescheduleDraft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.bookings {
		if c.bookings[i].ID == id {
			return domain.NewRescheduleDraft(&c.bookings[i]), true
		}
	}
	return domain.RescheduleDraft{}, false
}

// finishCancelLocked завершает цикл отмены: состояние возвращается в
// idle, диалог закрывается, при purge запись убирается из списка.
// Вызывается под мьютексом.
func (c *Controller) finishCancelLocked(id domain.BookingID, purge bool, text string, kind view.MessageKind) {
	c.cancelState = CancelIdle
	c.selected = nil
	if purge {
		kept := c.bookings[:0]
		for _, b := range c.bookings {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		c.bookings = kept
	}
	c.setMessageLocked(text, kind)
}

func (c *Controller) setMessageLocked(text string, kind view.MessageKind) {
	c.message = view.NewMessage(text, kind, c.clock.Now())
}

// Message возвращает активный баннер или nil, если он истек
func (c *Controller) Message() *view.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.message == nil || c.message.Expired(c.clock.Now()) {
		return nil
	}
	return c.message
}
