package output

import (
	"context"

	"react-browser-agent/internal/domain/entity"
)

type LLMPort interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type CompletionRequest struct {
	Messages    []entity.Message
	Temperature float32
	MaxTokens   int
}
