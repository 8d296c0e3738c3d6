package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"react-browser-agent/internal/di"
	"react-browser-agent/internal/infrastructure/env"
)

const defaultTask = "Navigate to https://www.example.com and get the main heading text"

func main() {
	os.Exit(run())
}

func run() int {
	headless := flag.Bool("headless", false, "run the browser in headless mode")
	maxIterations := flag.Int("max-iterations", 0, "override the iteration budget (default 10)")
	flag.Parse()

	task := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if task == "" {
		fmt.Printf("No task provided. Using default task:\n  %s\n\n", defaultTask)
		task = defaultTask
	}

	envService := env.NewEnvService()

	// Signal-aware context so Ctrl+C still tears the browser down.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	container, err := di.NewContainer(ctx, di.Config{
		APIKey:        envService.MustGet("OPENROUTER_API_KEY"),
		Model:         envService.MustGet("OPENROUTER_MODEL_NAME"),
		BaseURL:       envService.Get("OPENROUTER_BASE_URL"),
		Headless:      *headless || envService.GetBool("BROWSER_HEADLESS", false),
		MaxIterations: *maxIterations,
		LogLevel:      envService.GetOrDefault("LOG_LEVEL", "info"),
		TaskName:      task,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialization failed: %v\n", err)
		return 1
	}
	defer container.Close()

	container.Logger.Info("Task started", "task", task, "headless", *headless)
	fmt.Printf("Task: %s\n\n", task)

	result, err := container.TaskExecutor.Execute(ctx, task)
	if err != nil {
		container.Logger.Error("Task failed", "error", err)
		fmt.Fprintf(os.Stderr, "task failed: %v\n", err)
		return 1
	}

	container.Logger.Info("Task finished", "state", string(result.State), "iterations", result.Iterations)

	fmt.Println("=== FINAL RESULT ===")
	fmt.Println(result.FinalAnswer)
	return 0
}
