package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
)

const (
	// HeaderUserID заголовок с идентификатором пользователя
	HeaderUserID = "X-User-ID"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
)

type contextKey string

const usernameKey contextKey = "username"

// Auth проверяет наличие заголовка X-User-ID и кладёт имя пользователя в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username := r.Header.Get(HeaderUserID)
		if username == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), usernameKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUsername извлекает имя пользователя из контекста запроса
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok
}
