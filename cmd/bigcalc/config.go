package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	evalFlag = &cli.StringSliceFlag{
		Name:    "eval",
		Aliases: []string{"e"},
		Usage:   "Evaluate a command and exit, may be repeated",
	}
	verbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: debug, info, warn, error",
		Value: "warn",
	}
	logFileFlag = &cli.StringFlag{
		Name:  "log.file",
		Usage: "Write logs to a rotated file instead of stderr",
	}
	noColorFlag = &cli.BoolFlag{
		Name:  "nocolor",
		Usage: "Disable coloured output",
	}
	historyFlag = &cli.StringFlag{
		Name:  "history",
		Usage: "Command history file, empty to disable",
	}
	promptFlag = &cli.StringFlag{
		Name:  "prompt",
		Usage: "Prompt shown before each command",
	}

	configFlags = []cli.Flag{
		configFileFlag,
		verbosityFlag,
		logFileFlag,
		noColorFlag,
		historyFlag,
		promptFlag,
	}
)

type consoleConfig struct {
	Prompt  string
	History string
	NoColor bool
}

type logConfig struct {
	Verbosity  string
	File       string
	MaxSize    int // megabytes before the log file is rotated
	MaxBackups int
}

type bigcalcConfig struct {
	Console consoleConfig
	Log     logConfig
}

func defaultConfig() bigcalcConfig {
	cfg := bigcalcConfig{
		Console: consoleConfig{Prompt: "> "},
		Log: logConfig{
			Verbosity:  "warn",
			MaxSize:    10,
			MaxBackups: 3,
		},
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.Console.History = filepath.Join(home, ".bigcalc_history")
	}
	return cfg
}

// loadConfig decodes a TOML file into cfg. Keys that do not match any
// setting are reported as errors.
func loadConfig(file string, cfg *bigcalcConfig) error {
	md, err := toml.DecodeFile(file, cfg)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", file, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("loading config %s: unknown setting %q", file, undecoded[0].String())
	}
	return nil
}

// makeConfig layers the config file and the command line flags over the
// defaults.
func makeConfig(ctx *cli.Context) (bigcalcConfig, error) {
	cfg := defaultConfig()
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	if ctx.IsSet(verbosityFlag.Name) {
		cfg.Log.Verbosity = ctx.String(verbosityFlag.Name)
	}
	if ctx.IsSet(logFileFlag.Name) {
		cfg.Log.File = ctx.String(logFileFlag.Name)
	}
	if ctx.IsSet(noColorFlag.Name) {
		cfg.Console.NoColor = ctx.Bool(noColorFlag.Name)
	}
	if ctx.IsSet(historyFlag.Name) {
		cfg.Console.History = ctx.String(historyFlag.Name)
	}
	if ctx.IsSet(promptFlag.Name) {
		cfg.Console.Prompt = ctx.String(promptFlag.Name)
	}
	if cfg.Console.Prompt == "" {
		return cfg, errors.New("prompt must not be empty")
	}
	return cfg, nil
}

var dumpConfigCommand = &cli.Command{
	Name:      "dumpconfig",
	Usage:     "Show configuration values",
	ArgsUsage: "[dumpfile]",
	Action:    dumpConfig,
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	var out io.Writer = ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.Create(ctx.Args().First())
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return writeConfig(out, cfg)
}

func writeConfig(w io.Writer, cfg bigcalcConfig) error {
	return toml.NewEncoder(w).Encode(cfg)
}
