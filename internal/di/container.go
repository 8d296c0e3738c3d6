// Package di wires the adapters into a runnable agent and owns their
// lifecycle. Close releases the browser and the log file; callers must
// defer it so the browser dies on every exit path.
package di

import (
	"context"
	"fmt"

	"react-browser-agent/internal/adapter/action"
	"react-browser-agent/internal/application/port/input"
	"react-browser-agent/internal/application/port/output"
	"react-browser-agent/internal/application/usecase"
	"react-browser-agent/internal/infrastructure/browser/rod"
	"react-browser-agent/internal/infrastructure/llm/openrouter"
	"react-browser-agent/internal/infrastructure/logger"
	"react-browser-agent/internal/infrastructure/prompts"
)

type Container struct {
	Browser      output.BrowserPort
	LLM          output.LLMPort
	Executor     output.ActionExecutorPort
	Logger       output.LoggerPort
	TaskExecutor input.TaskExecutor
}

type Config struct {
	APIKey        string
	Model         string
	BaseURL       string
	Headless      bool
	MaxIterations int
	Temperature   float32
	MaxTokens     int
	LogLevel      string
	TaskName      string
}

func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	logCfg := logger.DefaultConfig(cfg.TaskName)
	if cfg.LogLevel != "" {
		logCfg.Level = cfg.LogLevel
	}
	log, err := logger.NewAdapter(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	browserCfg := rod.DefaultConfig()
	browserCfg.Headless = cfg.Headless
	browser, err := rod.NewBrowserAdapter(ctx, browserCfg)
	if err != nil {
		_ = log.Close()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	llmCfg := openrouter.DefaultConfig(cfg.APIKey, cfg.Model)
	if cfg.BaseURL != "" {
		llmCfg.BaseURL = cfg.BaseURL
	}
	llmCfg.Logger = log.WithField("component", "llm")
	llm := openrouter.NewAdapter(llmCfg)

	executor := action.NewExecutor(browser, log.WithField("component", "executor"))

	systemPrompt, err := prompts.GenerateSystemPrompt(executor.Actions())
	if err != nil {
		browser.Close()
		_ = log.Close()
		return nil, fmt.Errorf("failed to generate system prompt: %w", err)
	}

	ucCfg := usecase.DefaultConfig(systemPrompt)
	if cfg.MaxIterations > 0 {
		ucCfg.MaxIterations = cfg.MaxIterations
	}
	if cfg.Temperature > 0 {
		ucCfg.Temperature = cfg.Temperature
	}
	if cfg.MaxTokens > 0 {
		ucCfg.MaxTokens = cfg.MaxTokens
	}

	return &Container{
		Browser:      browser,
		LLM:          llm,
		Executor:     executor,
		Logger:       log,
		TaskExecutor: usecase.New(llm, executor, log.WithField("component", "loop"), ucCfg),
	}, nil
}

func (c *Container) Close() {
	if c.Browser != nil {
		c.Browser.Close()
	}
	if c.Logger != nil {
		_ = c.Logger.Close()
	}
}
