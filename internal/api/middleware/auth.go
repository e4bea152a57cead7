package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/m04kA/GCC-TeeSheetService/pkg/credentials"
)

// Auth извлекает bearer-токен оператора и кладет его в контекст запроса.
// Сервис не проверяет токен сам: он транзитом уходит на бэкенд клуба
// с каждым исходящим запросом
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "требуется bearer-токен"})
			return
		}

		next.ServeHTTP(w, r.WithContext(credentials.WithToken(r.Context(), token)))
	})
}
