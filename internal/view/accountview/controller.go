package accountview

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/m04kA/SMC-BookingPortal/internal/integrations/authprovider"
	"github.com/m04kA/SMC-BookingPortal/internal/service/account"
	"github.com/m04kA/SMC-BookingPortal/internal/view"
)

// AccountManager интерфейс сервиса аккаунта для контроллера
type AccountManager interface {
	UpdateProfile(ctx context.Context, session *authprovider.Session, req *account.UpdateProfileRequest) error
	ChangePassword(ctx context.Context, session *authprovider.Session, req *account.ChangePasswordRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

const (
	msgProfileSaved     = "Профиль обновлен"
	msgPasswordChanged  = "Пароль изменен"
	msgGoogleRestricted = "Аккаунт Google управляется провайдером"
	msgEmailInUse       = "Эта почта уже используется"
	msgWrongPassword    = "Неверный текущий пароль"
	msgPasswordMismatch = "Пароли не совпадают"
	msgPasswordTooShort = "Пароль слишком короткий"
	msgPasswordSame     = "Новый пароль совпадает со старым"
	msgInvalidEmail     = "Некорректный адрес почты"
	msgSaveFailed       = "Не удалось сохранить изменения"
)

// Controller состояние экрана профиля пользователя
type Controller struct {
	mu     sync.Mutex
	svc    AccountManager
	clock  view.Clock
	logger Logger

	epoch   uint64
	session *authprovider.Session

	editing    bool
	processing bool
	firstName  string
	lastName   string
	email      string
	message    *view.Message
}

func NewController(svc AccountManager, clock view.Clock, logger Logger) *Controller {
	if clock == nil {
		clock = view.SystemClock{}
	}
	return &Controller{svc: svc, clock: clock, logger: logger}
}

// HandleSessionChange обрабатывает смену сессии. Форма сбрасывается и
// заполняется заново из данных новой сессии.
func (c *Controller) HandleSessionChange(session *authprovider.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.session = session
	c.editing = false
	c.processing = false
	c.message = nil
	c.fillFormLocked()
}

// fillFormLocked заполняет поля формы из текущей сессии.
// Имя и фамилия восстанавливаются из display name.
func (c *Controller) fillFormLocked() {
	c.firstName, c.lastName, c.email = "", "", ""
	if c.session == nil {
		return
	}
	parts := strings.Fields(c.session.DisplayName)
	if len(parts) > 0 {
		c.firstName = parts[0]
	}
	if len(parts) > 1 {
		c.lastName = strings.Join(parts[1:], " ")
	}
	c.email = c.session.Email
}

// BeginEdit включает режим редактирования профиля
func (c *Controller) BeginEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil || c.processing {
		return
	}
	c.editing = true
}

// CancelEdit выходит из режима редактирования, откатывая форму
// к данным сессии
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.processing {
		return
	}
	c.editing = false
	c.fillFormLocked()
}

// Editing возвращает true в режиме редактирования
func (c *Controller) Editing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editing
}

// Processing возвращает true, пока идет сохранение
func (c *Controller) Processing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.processing
}

// SetFields обновляет значения полей формы
func (c *Controller) SetFields(firstName, lastName, email string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editing || c.processing {
		return
	}
	c.firstName = firstName
	c.lastName = lastName
	c.email = email
}

// Fields возвращает текущие значения формы
func (c *Controller) Fields() (firstName, lastName, email string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.firstName, c.lastName, c.email
}

// CanEditEmail возвращает false для аккаунтов Google: их почтой
// управляет провайдер
func (c *Controller) CanEditEmail() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != nil && !c.session.IsGoogle()
}

// CanChangePassword возвращает false для аккаунтов Google
func (c *Controller) CanChangePassword() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != nil && !c.session.IsGoogle()
}

// Save сохраняет форму профиля. Повторный запуск при идущем
// сохранении игнорируется.
func (c *Controller) Save(ctx context.Context) {
	c.mu.Lock()
	if c.session == nil || !c.editing || c.processing {
		c.mu.Unlock()
		return
	}
	c.processing = true
	epoch := c.epoch
	session := c.session
	req := &account.UpdateProfileRequest{
		FirstName: c.firstName,
		LastName:  c.lastName,
		Email:     c.email,
	}
	c.mu.Unlock()

	err := c.svc.UpdateProfile(ctx, session, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		c.processing = false
		return
	}
	c.processing = false
	if err != nil {
		c.setMessageLocked(classifyAccountError(err), view.MessageError)
		if errors.Is(err, account.ErrInternal) {
			c.logger.Error("accountview.Controller.Save - ошибка сохранения: %v", err)
		}
		return
	}
	// сессию обновляем локально из сохраненной формы
	display := strings.TrimSpace(req.FirstName + " " + req.LastName)
	refreshed := *session
	refreshed.DisplayName = display
	if !session.IsGoogle() {
		refreshed.Email = req.Email
	}
	c.session = &refreshed
	c.editing = false
	c.fillFormLocked()
	c.setMessageLocked(msgProfileSaved, view.MessageInfo)
}

// ChangePassword выполняет смену пароля с проверкой текущего
func (c *Controller) ChangePassword(ctx context.Context, current, newPassword, confirm string) {
	c.mu.Lock()
	if c.session == nil || c.processing {
		c.mu.Unlock()
		return
	}
	c.processing = true
	epoch := c.epoch
	session := c.session
	req := &account.ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     newPassword,
		ConfirmPassword: confirm,
	}
	c.mu.Unlock()

	err := c.svc.ChangePassword(ctx, session, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		c.processing = false
		return
	}
	c.processing = false
	if err != nil {
		c.setMessageLocked(classifyAccountError(err), view.MessageError)
		if errors.Is(err, account.ErrInternal) {
			c.logger.Error("accountview.Controller.ChangePassword - ошибка смены пароля: %v", err)
		}
		return
	}
	c.setMessageLocked(msgPasswordChanged, view.MessageInfo)
}

func classifyAccountError(err error) string {
	switch {
	case errors.Is(err, account.ErrGoogleAccount):
		return msgGoogleRestricted
	case errors.Is(err, account.ErrEmailInUse):
		return msgEmailInUse
	case errors.Is(err, account.ErrWrongPassword):
		return msgWrongPassword
	case errors.Is(err, account.ErrPasswordMismatch):
		return msgPasswordMismatch
	case errors.Is(err, account.ErrPasswordTooShort):
		return msgPasswordTooShort
	case errors.Is(err, account.ErrPasswordUnchanged):
		return msgPasswordSame
	case errors.Is(err, account.ErrInvalidEmail):
		return msgInvalidEmail
	default:
		return msgSaveFailed
	}
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
