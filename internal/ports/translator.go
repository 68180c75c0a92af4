package ports

import "context"

// Translator — внешний движок перевода. source == "auto" значит
// автоопределение на стороне провайдера.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}
