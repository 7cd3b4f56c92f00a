package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"deskclock/internal/backend"
	"deskclock/internal/config"
	"deskclock/internal/logging"
	"deskclock/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, cleanup, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	provider, err := backend.NewTracerProvider(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("tracing disabled")
	}
	if provider != nil {
		defer func() { _ = provider.Shutdown(context.Background()) }()
	}

	local := backend.NewLocal(backend.LocalOptions{
		AreaCode: cfg.AreaCode,
		DemoOnly: cfg.DemoOnly,
		Log:      logger,
	})
	b := backend.WithTracing(local, provider)

	notifier := backend.NewIntervalNotifier(b, 0, logger)
	go notifier.Run(ctx)

	model := ui.NewAppModel(b, logger, ui.WidgetOptions{
		ClockInterval:           cfg.ClockInterval,
		WeatherInterval:         cfg.WeatherInterval,
		RollbackOnToggleFailure: cfg.RollbackOnToggleFailure,
	})
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
