package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	name string
	args []string
	err  error
}

func (r *recordingRunner) Run(ctx context.Context, name string, args ...string) error {
	r.name = name
	r.args = args
	return r.err
}

func TestDispatcher_Send(t *testing.T) {
	runner := &recordingRunner{}
	d := NewDispatcher(runner, zerolog.Nop())

	err := d.Send(context.Background(), "Current time", "The time is now 12:00:05")
	require.NoError(t, err)

	assert.Equal(t, "notify-send", runner.name)
	assert.Equal(t, []string{"Current time", "The time is now 12:00:05"}, runner.args)
}

func TestDispatcher_Send_Error(t *testing.T) {
	runner := &recordingRunner{err: errors.New("no display")}
	d := NewDispatcher(runner, zerolog.Nop())

	err := d.Send(context.Background(), "t", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send notification")
}
