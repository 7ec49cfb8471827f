package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/ASTB-BookingService/internal/api/handlers"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth проверяет заголовок Authorization: Bearer <secret> на админских
// ручках. Пустой секрет означает, что защита не настроена, и все запросы
// пропускаются - поведение для локальной разработки.
func AdminAuth(secret string, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				log.Warn("AdminAuth: unauthorized request: method=%s, path=%s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}
