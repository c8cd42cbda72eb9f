package authprovider

// GoogleProviderID идентификатор Google в списке провайдеров пользователя
const GoogleProviderID = "google.com"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Session данные сессии пользователя у внешнего auth-провайдера
// Провайдер владеет этими полями; портал их только читает
type Session struct {
	UID         string
	Email       string
	DisplayName string
	Providers   []string
}

// IsGoogle возвращает true, если аккаунт аутентифицирован через Google
// Для таких аккаунтов email и пароль принадлежат Google, а не порталу
func (s *Session) IsGoogle() bool {
	for _, p := range s.Providers {
		if p == GoogleProviderID {
			return true
		}
	}
	return false
}

// UpdateProfileParams изменяемые поля профиля
// nil означает "не менять"
type UpdateProfileParams struct {
	DisplayName *string
	Email       *string
}

// signInRequest тело запроса re-аутентификации Identity Toolkit
type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

// signInErrorResponse тело ответа Identity Toolkit при ошибке
type signInErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
