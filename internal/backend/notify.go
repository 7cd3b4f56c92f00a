package backend

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// CommandRunner runs an external command. Split out so tests can observe
// dispatches without a desktop session.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(out.String()))
	}
	return nil
}

// Dispatcher delivers desktop notifications through notify-send.
type Dispatcher struct {
	runner CommandRunner
	log    zerolog.Logger
}

// NewDispatcher creates a dispatcher; runner may be nil to use exec.
func NewDispatcher(runner CommandRunner, log zerolog.Logger) *Dispatcher {
	if runner == nil {
		runner = execRunner{}
	}
	return &Dispatcher{runner: runner, log: log}
}

// Send shows a notification with the given title and body.
func (d *Dispatcher) Send(ctx context.Context, title, body string) error {
	if err := d.runner.Run(ctx, "notify-send", title, body); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	d.log.Debug().Str("title", title).Msg("notification sent")
	return nil
}
