package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iconsync/cmd/iconsync/commands"
	"go.trai.ch/iconsync/internal/app"
	"go.trai.ch/iconsync/internal/build"
)

type mockApp struct {
	runFunc func(ctx context.Context, opts app.RunOptions) error
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Sync(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want app.RunOptions
	}{
		{name: "root command defaults", args: nil, want: app.RunOptions{Root: "."}},
		{name: "sync command defaults", args: []string{"sync"}, want: app.RunOptions{Root: "."}},
		{
			name: "root command flags",
			args: []string{"--root", "assets", "--config", "icons.yaml"},
			want: app.RunOptions{Root: "assets", ConfigPath: "icons.yaml"},
		},
		{
			name: "persistent flags on sync",
			args: []string{"sync", "-r", "assets", "-c", "icons.yaml"},
			want: app.RunOptions{Root: "assets", ConfigPath: "icons.yaml"},
		},
		{
			name: "verbose",
			args: []string{"sync", "--verbose"},
			want: app.RunOptions{Root: ".", Verbose: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured app.RunOptions
			called := false

			cli := commands.New(&mockApp{
				runFunc: func(_ context.Context, opts app.RunOptions) error {
					captured = opts
					called = true
					return nil
				},
			})
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			assert.True(t, called)
			assert.Equal(t, tt.want, captured)
		})
	}
}

func TestCommands_SyncError(t *testing.T) {
	cli := commands.New(&mockApp{
		runFunc: func(_ context.Context, _ app.RunOptions) error {
			return errors.New("simulated error")
		},
	})
	cli.SetArgs([]string{"sync"})
	// Silence output to avoid polluting test logs
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
}

func TestCommands_RejectsArguments(t *testing.T) {
	cli := commands.New(&mockApp{
		runFunc: func(_ context.Context, _ app.RunOptions) error {
			panic("should not be called")
		},
	})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"sync", "icon.svg"})

	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "iconsync version "+build.Version+"\n", buf.String())
}
