package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/salonsphere/booking-service/internal/api/handlers"
)

// SessionHeader заголовок с идентификатором анонимной сессии посетителя
const SessionHeader = "X-Session-ID"

const (
	msgMissingSession = "отсутствует заголовок X-Session-ID"
	msgInvalidSession = "некорректный идентификатор сессии, ожидается UUID"
)

type sessionKey struct{}

// Session проверяет наличие и формат идентификатора сессии
// и кладет его в контекст запроса
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		if sessionID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingSession)
			return
		}

		if _, err := uuid.Parse(sessionID); err != nil {
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidSession)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID извлекает идентификатор сессии из контекста запроса
func SessionID(ctx context.Context) string {
	sessionID, _ := ctx.Value(sessionKey{}).(string)
	return sessionID
}
