package translate

import "errors"

var (
	// ErrNotConfigured — нет ключа/кредов провайдера, эндпоинт деградирует в 500.
	ErrNotConfigured = errors.New("provider not configured")

	// ErrUpstream — провайдер ответил ошибкой или мусором, наружу это 502.
	ErrUpstream = errors.New("upstream provider error")
)
