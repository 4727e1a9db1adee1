// bigcalc is an arbitrary precision calculator shell.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/govalues/bignum/console"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

var app = &cli.App{
	Name:     "bigcalc",
	Usage:    "arbitrary precision calculator",
	Flags:    append([]cli.Flag{evalFlag}, configFlags...),
	Action:   bigcalc,
	Commands: []*cli.Command{dumpConfigCommand},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bigcalc evaluates the --eval commands, or starts an interactive session
// if there are none.
func bigcalc(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	terminal := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if cfg.Console.NoColor {
		color.NoColor = true
	}
	stdout := colorable.NewColorableStdout()
	config := console.Config{
		Prompt:   cfg.Console.Prompt,
		NoColor:  cfg.Console.NoColor,
		Terminal: terminal,
		Printer:  stdout,
		Logger:   logger,
	}

	if lines := ctx.StringSlice(evalFlag.Name); len(lines) > 0 {
		return console.New(config).Evaluate(lines)
	}

	prompter := console.NewPrompter(cfg.Console.History, stdout)
	defer prompter.Close()
	config.Prompter = prompter
	return console.New(config).Interactive()
}
