package account

import "errors"

var (
	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("account: malformed email")

	// ErrPasswordMismatch возвращается, когда новый пароль и подтверждение
	// не совпадают
	ErrPasswordMismatch = errors.New("account: passwords do not match")

	// ErrPasswordTooShort возвращается при слишком коротком новом пароле
	ErrPasswordTooShort = errors.New("account: password is too short")

	// ErrPasswordUnchanged возвращается, когда новый пароль совпадает с текущим
	ErrPasswordUnchanged = errors.New("account: new password must differ from current")

	// ErrWrongPassword возвращается, когда re-аутентификация текущим
	// паролем не прошла
	ErrWrongPassword = errors.New("account: current password is incorrect")

	// ErrEmailInUse возвращается, когда email уже занят другим аккаунтом
	ErrEmailInUse = errors.New("account: email already in use")

	// ErrGoogleAccount возвращается при попытке изменить поля, которыми
	// владеет Google как identity-провайдер
	ErrGoogleAccount = errors.New("account: field is owned by the identity provider")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("account: internal error")
)
