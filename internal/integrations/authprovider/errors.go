package authprovider

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден у провайдера
	ErrUserNotFound = errors.New("authprovider: user not found")

	// ErrEmailAlreadyInUse возвращается при попытке занять чужой email
	ErrEmailAlreadyInUse = errors.New("authprovider: email already in use")

	// ErrInvalidCredentials возвращается, когда re-аутентификация
	// с текущим паролем не прошла
	ErrInvalidCredentials = errors.New("authprovider: invalid credentials")

	// ErrInvalidToken возвращается при невалидном ID-токене сессии
	ErrInvalidToken = errors.New("authprovider: invalid session token")

	// ErrNetwork возвращается, когда запрос к провайдеру не удалось выполнить
	ErrNetwork = errors.New("authprovider: network error")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authprovider: internal error")
)
