package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-BookingPortal/internal/api/handlers"
	"github.com/m04kA/SMC-BookingPortal/internal/integrations/authprovider"
)

type contextKey string

const (
	sessionKey contextKey = "session"

	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "недействительный токен авторизации"
)

// TokenVerifier проверяет токен сессии и возвращает сессию пользователя
type TokenVerifier interface {
	VerifySessionToken(ctx context.Context, token string) (*authprovider.Session, error)
}

// Auth middleware аутентификации по Bearer-токену.
// Проверенная сессия кладется в контекст запроса.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			session, err := verifier.VerifySessionToken(r.Context(), token)
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession достает сессию пользователя из контекста запроса
func GetSession(ctx context.Context) (*authprovider.Session, bool) {
	session, ok := ctx.Value(sessionKey).(*authprovider.Session)
	return session, ok
}
