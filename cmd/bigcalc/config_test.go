package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slog"
)

func newContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
	flagSet.String(configFileFlag.Name, "", "test")
	flagSet.String(verbosityFlag.Name, "warn", "test")
	flagSet.String(logFileFlag.Name, "", "test")
	flagSet.Bool(noColorFlag.Name, false, "test")
	flagSet.String(historyFlag.Name, "", "test")
	flagSet.String(promptFlag.Name, "", "test")
	require.NoError(t, flagSet.Parse(args))

	ctx := cli.NewContext(nil, flagSet, nil)
	ctx.Command = &cli.Command{Name: "test"}
	return ctx
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "bigcalc.toml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	return file
}

func TestMakeConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := makeConfig(newContext(t))
		require.NoError(t, err)
		require.Equal(t, "> ", cfg.Console.Prompt)
		require.Equal(t, "warn", cfg.Log.Verbosity)
		require.False(t, cfg.Console.NoColor)
		require.Empty(t, cfg.Log.File)
	})

	t.Run("flags", func(t *testing.T) {
		ctx := newContext(t,
			"--prompt", "calc> ",
			"--verbosity", "debug",
			"--nocolor",
			"--history", "",
			"--log.file", "/tmp/bigcalc.log",
		)
		cfg, err := makeConfig(ctx)
		require.NoError(t, err)
		require.Equal(t, "calc> ", cfg.Console.Prompt)
		require.Equal(t, "debug", cfg.Log.Verbosity)
		require.True(t, cfg.Console.NoColor)
		require.Empty(t, cfg.Console.History)
		require.Equal(t, "/tmp/bigcalc.log", cfg.Log.File)
	})

	t.Run("file and flags", func(t *testing.T) {
		file := writeFile(t, `
[Console]
Prompt = "# "
NoColor = true

[Log]
Verbosity = "info"
MaxSize = 1
`)
		cfg, err := makeConfig(newContext(t, "--config", file, "--verbosity", "error"))
		require.NoError(t, err)
		require.Equal(t, "# ", cfg.Console.Prompt)
		require.True(t, cfg.Console.NoColor)
		require.Equal(t, "error", cfg.Log.Verbosity)
		require.Equal(t, 1, cfg.Log.MaxSize)
		require.Equal(t, 3, cfg.Log.MaxBackups)
	})

	t.Run("unknown setting", func(t *testing.T) {
		file := writeFile(t, "[Console]\nPromt = \"# \"\n")
		_, err := makeConfig(newContext(t, "--config", file))
		require.Error(t, err)
		require.Contains(t, err.Error(), "Console.Promt")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := makeConfig(newContext(t, "--config", filepath.Join(t.TempDir(), "none.toml")))
		require.Error(t, err)
	})

	t.Run("empty prompt", func(t *testing.T) {
		_, err := makeConfig(newContext(t, "--prompt", ""))
		require.Error(t, err)
	})
}

func TestWriteConfig(t *testing.T) {
	want := defaultConfig()
	want.Console.Prompt = "calc> "
	want.Log.File = "bigcalc.log"

	var buf bytes.Buffer
	require.NoError(t, writeConfig(&buf, want))
	require.True(t, strings.Contains(buf.String(), "[Console]"))

	var got bigcalcConfig
	_, err := toml.Decode(buf.String(), &got)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for s, want := range tests {
		got, err := parseLevel(s)
		require.NoError(t, err, "parseLevel(%q)", s)
		assert.Equal(t, want, got, "parseLevel(%q)", s)
	}
	_, err := parseLevel("loud")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	t.Run("stderr", func(t *testing.T) {
		var buf bytes.Buffer
		logger, closeLog, err := newLogger(logConfig{Verbosity: "info"}, &buf)
		require.NoError(t, err)
		logger.Debug("hidden")
		logger.Info("Command executed", "cmd", "2 + 3")
		require.NoError(t, closeLog())
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `msg="Command executed" cmd="2 + 3"`)
	})

	t.Run("file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "bigcalc.log")
		var buf bytes.Buffer
		logger, closeLog, err := newLogger(logConfig{Verbosity: "warn", File: file, MaxSize: 1}, &buf)
		require.NoError(t, err)
		logger.Warn("Command failed", "cmd", "1 / 0")
		require.NoError(t, closeLog())

		data, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Command failed")
		assert.Empty(t, buf.String())
	})

	t.Run("bad verbosity", func(t *testing.T) {
		_, _, err := newLogger(logConfig{Verbosity: "loud"}, &bytes.Buffer{})
		assert.Error(t, err)
	})
}
