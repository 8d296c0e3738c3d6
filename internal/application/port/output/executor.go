package output

import (
	"context"

	"react-browser-agent/internal/domain/entity"
)

// ActionExecutorPort performs one browser action. It never fails hard:
// every underlying problem is folded into the returned outcome.
type ActionExecutorPort interface {
	Execute(ctx context.Context, action entity.ActionName, params map[string]any) entity.ActionOutcome
	Actions() []ActionInfo
}

// ActionInfo describes one supported action for prompt generation.
type ActionInfo struct {
	Name         string
	Description  string
	InputExample string
}
