package input

import "context"

type RunState string

const (
	StateRunning    RunState = "running"
	StateTerminated RunState = "terminated"
	StateExhausted  RunState = "exhausted"
)

type ExecuteResult struct {
	FinalAnswer string
	Iterations  int
	State       RunState
}

type TaskExecutor interface {
	Execute(ctx context.Context, task string) (*ExecuteResult, error)
}
