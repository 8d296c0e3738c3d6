package usecase

import (
	"context"
	"fmt"

	"react-browser-agent/internal/application/port/input"
	"react-browser-agent/internal/application/port/output"
	"react-browser-agent/internal/domain/entity"
	"react-browser-agent/internal/domain/react"
)

const (
	defaultMaxIterations = 10
	defaultTemperature   = 0.7
	defaultMaxTokens     = 500
	maxObservationLen    = 20000

	exhaustionMessage    = "Maximum iterations reached without completion."
	clarificationMessage = "Please provide a valid action in the specified format."
)

var _ input.TaskExecutor = (*RunTaskUseCase)(nil)

// RunTaskUseCase drives the ReAct loop: one model completion per iteration,
// at most one action execution per iteration, strictly sequential. Only the
// model capability failing is fatal; action failures and unparseable output
// are folded back into the conversation for the model to react to.
type RunTaskUseCase struct {
	llm      output.LLMPort
	executor output.ActionExecutorPort
	logger   output.LoggerPort
	cfg      Config
}

type Config struct {
	SystemPrompt  string
	MaxIterations int
	Temperature   float32
	MaxTokens     int
}

func DefaultConfig(systemPrompt string) Config {
	return Config{
		SystemPrompt:  systemPrompt,
		MaxIterations: defaultMaxIterations,
		Temperature:   defaultTemperature,
		MaxTokens:     defaultMaxTokens,
	}
}

func New(llm output.LLMPort, executor output.ActionExecutorPort, logger output.LoggerPort, cfg Config) *RunTaskUseCase {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = defaultMaxIterations
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	return &RunTaskUseCase{
		llm:      llm,
		executor: executor,
		logger:   logger,
		cfg:      cfg,
	}
}

// Execute runs the loop until the model produces a Final Answer or the
// iteration budget runs out. Exhaustion is a normal result, not an error.
func (uc *RunTaskUseCase) Execute(ctx context.Context, task string) (*input.ExecuteResult, error) {
	transcript := entity.NewTranscript()
	transcript.Append(entity.RoleSystem, uc.cfg.SystemPrompt)
	transcript.Append(entity.RoleUser, fmt.Sprintf("Task: %s", task))

	for iteration := 1; iteration <= uc.cfg.MaxIterations; iteration++ {
		uc.logger.Debug("Starting iteration", "iteration", iteration)

		response, err := uc.llm.Complete(ctx, output.CompletionRequest{
			Messages:    transcript.Messages(),
			Temperature: uc.cfg.Temperature,
			MaxTokens:   uc.cfg.MaxTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("llm request failed: %w", err)
		}

		transcript.Append(entity.RoleAssistant, response)

		directive := react.Parse(response)

		if directive.IsFinish() {
			uc.logger.Info("Task completed", "iterations", iteration, "answer", directive.Thought)
			return &input.ExecuteResult{
				FinalAnswer: directive.Thought,
				Iterations:  iteration,
				State:       input.StateTerminated,
			}, nil
		}

		if directive.HasAction() {
			outcome := uc.executor.Execute(ctx, directive.Action, directive.Params)
			transcript.Append(entity.RoleUser, truncate(outcome.Observation(), maxObservationLen))
			continue
		}

		// No action and no final answer; nudge the model back into the
		// protocol instead of treating this as an error.
		uc.logger.Warn("Model response had no actionable directive", "iteration", iteration)
		transcript.Append(entity.RoleUser, clarificationMessage)
	}

	uc.logger.Warn("Iteration budget exhausted", "maxIterations", uc.cfg.MaxIterations)
	return &input.ExecuteResult{
		FinalAnswer: exhaustionMessage,
		Iterations:  uc.cfg.MaxIterations,
		State:       input.StateExhausted,
	}, nil
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit] + "\n... (truncated)"
	}
	return s
}
