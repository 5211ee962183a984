package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "todo version "+Version+"\n", out.String())
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TODO_CONFIG", "")

	cmd := rootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--route", "#/active", "--theme", "neon", "--group"}))

	cfg, err := loadConfig(cmd, rootFlags{route: "#/active", theme: "neon", group: true})
	require.NoError(t, err)
	assert.Equal(t, "#/active", cfg.Router.Initial)
	assert.Equal(t, "neon", cfg.UI.Theme)
	assert.True(t, cfg.UI.Group)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_InvalidTheme(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TODO_CONFIG", "")

	cmd := rootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--theme", "sepia"}))

	_, err := loadConfig(cmd, rootFlags{theme: "sepia"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.theme")
}

func TestLoadConfig_FlagsAreCaseInsensitive(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TODO_CONFIG", "")

	cmd := rootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--theme", "NEON", "--log-level", "Debug"}))

	cfg, err := loadConfig(cmd, rootFlags{theme: "NEON", logLevel: "Debug"})
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.UI.Theme)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestExecute_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		run  func(*cobra.Command, []string) error
		code int
		msg  string
	}{
		{"ok", func(*cobra.Command, []string) error { return nil }, 0, ""},
		{"error", func(*cobra.Command, []string) error { return errors.New("boom") }, 1, "Error: boom"},
		{"panic", func(*cobra.Command, []string) error { panic("kaboom") }, 1, "PANIC: kaboom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := rootCmd()
			cmd.AddCommand(&cobra.Command{Use: "crash", RunE: tt.run})
			cmd.SetArgs([]string{"crash"})

			var stderr bytes.Buffer
			assert.Equal(t, tt.code, execute(cmd, &stderr))
			if tt.msg != "" {
				assert.Contains(t, stderr.String(), tt.msg)
			} else {
				assert.Empty(t, stderr.String())
			}
		})
	}
}
