package credentials

import "context"

type tokenContextKey struct{}

// WithToken кладет bearer-токен оператора в контекст запроса
// Токен выдаётся бэкендом клуба; сервис только передаёт его дальше
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext возвращает bearer-токен из контекста
// Второе значение false, если токен не был установлен
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey{}).(string)
	return token, ok && token != ""
}
