// Package console routes calculator commands onto the bignum package and
// runs the interactive read-eval-print loop.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/govalues/bignum"
	"github.com/govalues/bignum/expr"
	"github.com/olekukonko/tablewriter"
	"github.com/peterh/liner"
	"golang.org/x/exp/slog"
)

var (
	// ErrExit is returned by [Console.Execute] for the exit and quit commands.
	ErrExit = errors.New("exit requested")
	// ErrUsage is returned for commands with missing or malformed arguments.
	ErrUsage = errors.New("invalid usage")
)

const (
	// DefaultPrompt is the prompt used when none is configured.
	DefaultPrompt = "> "

	clearScreen = "\033[2J\033[H"
)

// Config is the set of options used to create a console.
type Config struct {
	Prompt   string       // prompt shown before each line, DefaultPrompt if empty
	NoColor  bool         // disables coloured error output
	Terminal bool         // whether Printer is a terminal, enables clear
	Prompter UserPrompter // input source, required by Interactive
	Printer  io.Writer    // output destination, io.Discard if nil
	Logger   *slog.Logger // command log, discarded if nil
}

// Console is a calculator shell.
type Console struct {
	prompt   string
	terminal bool
	prompter UserPrompter
	printer  io.Writer
	log      *slog.Logger
	errColor *color.Color
}

// New creates a console from the given configuration.
func New(config Config) *Console {
	if config.Prompt == "" {
		config.Prompt = DefaultPrompt
	}
	if config.Printer == nil {
		config.Printer = io.Discard
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := &Console{
		prompt:   config.Prompt,
		terminal: config.Terminal,
		prompter: config.Prompter,
		printer:  config.Printer,
		log:      config.Logger,
		errColor: color.New(color.FgRed),
	}
	if config.NoColor {
		c.errColor.DisableColor()
	} else if config.Terminal {
		c.errColor.EnableColor()
	}
	return c
}

// Welcome prints the greeting shown when the interactive loop starts.
func (c *Console) Welcome() {
	fmt.Fprintln(c.printer, "Arbitrary Precision Calculator")
	fmt.Fprintln(c.printer, "Type 'help' for available commands or 'exit' to quit")
}

// Interactive reads commands from the prompter until exit, quit or the end
// of input. Command errors are printed and do not end the loop.
func (c *Console) Interactive() error {
	if c.prompter == nil {
		return errors.New("console: no prompter configured")
	}
	c.Welcome()
	for {
		line, err := c.prompter.PromptInput(c.prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(c.printer)
			return nil
		case err != nil:
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		c.prompter.AppendHistory(line)

		out, err := c.Execute(line)
		if errors.Is(err, ErrExit) {
			fmt.Fprintln(c.printer, "Exiting...")
			return nil
		}
		if err != nil {
			c.PrintError(err)
			continue
		}
		if out != "" {
			fmt.Fprintln(c.printer, out)
		}
	}
}

// Evaluate executes a batch of commands and prints their results.
// It stops at the first failing command.
func (c *Console) Evaluate(lines []string) error {
	for _, line := range lines {
		out, err := c.Execute(line)
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			return err
		}
		if out != "" {
			fmt.Fprintln(c.printer, out)
		}
	}
	return nil
}

// PrintError prints a command error.
func (c *Console) PrintError(err error) {
	c.errColor.Fprintf(c.printer, "Error: %v\n", err)
}

// Execute runs a single command and returns its output.
func (c *Console) Execute(line string) (string, error) {
	start := time.Now()
	line = strings.TrimSpace(line)
	kind, out, err := c.route(line)
	if err != nil {
		if !errors.Is(err, ErrExit) {
			c.log.Warn("Command failed", "cmd", line, "kind", kind, "err", err)
		}
		return "", err
	}
	c.log.Debug("Command executed", "cmd", line, "kind", kind, "elapsed", time.Since(start))
	return out, nil
}

// route dispatches a trimmed command line. The first result names the kind
// of command for logging.
func (c *Console) route(line string) (string, string, error) {
	switch line {
	case "":
		return "empty", "", nil
	case "exit", "quit":
		return "exit", "", ErrExit
	case "help":
		return "help", Help(), nil
	case "clear":
		if !c.terminal {
			return "clear", "", nil
		}
		return "clear", clearScreen, nil
	}

	fields := strings.Fields(line)
	switch {
	case fields[0] == "to_base":
		out, err := toBase(fields[1:])
		return "to_base", out, err
	case fields[0] == "from_base":
		out, err := fromBase(fields[1:])
		return "from_base", out, err
	case strings.HasPrefix(line, "log"):
		out, err := logarithm(line)
		return "log", out, err
	case len(fields) == 1 && strings.HasSuffix(line, "!"):
		out, err := factorial(strings.TrimSuffix(line, "!"))
		return "factorial", out, err
	case len(fields) == 3 && isOperator(fields[1]) &&
		strings.Contains(fields[0], "/") && strings.Contains(fields[2], "/"):
		out, err := fraction(fields[0], fields[1], fields[2])
		return "fraction", out, err
	case len(fields) == 3 && isOperator(fields[1]) &&
		!strings.ContainsAny(fields[0], "()") && !strings.ContainsAny(fields[2], "()"):
		out, err := binary(fields[0], fields[1], fields[2])
		return "binary", out, err
	}
	z, err := expr.Eval(line)
	if err != nil {
		return "expr", "", err
	}
	return "expr", z.String(), nil
}

func toBase(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("to_base <number> <base>: %w", ErrUsage)
	}
	x, err := bignum.Parse(args[0])
	if err != nil {
		return "", err
	}
	base, err := parseBase(args[1])
	if err != nil {
		return "", err
	}
	return x.Text(base)
}

func fromBase(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("from_base <digits> <base>: %w", ErrUsage)
	}
	base, err := parseBase(args[1])
	if err != nil {
		return "", err
	}
	x, err := bignum.ParseBase(args[0], base)
	if err != nil {
		return "", err
	}
	return x.String(), nil
}

func logarithm(line string) (string, error) {
	b, n, ok := ParseLog(line)
	if !ok {
		return "", fmt.Errorf("log<base>(<number>): %w", ErrUsage)
	}
	base, err := bignum.Parse(b)
	if err != nil {
		return "", err
	}
	x, err := bignum.Parse(n)
	if err != nil {
		return "", err
	}
	z, err := x.Log(base)
	if err != nil {
		return "", err
	}
	return z.String(), nil
}

func factorial(s string) (string, error) {
	x, err := bignum.Parse(s)
	if err != nil {
		return "", err
	}
	z, err := x.Factorial()
	if err != nil {
		return "", err
	}
	return z.String(), nil
}

func fraction(a, op, b string) (string, error) {
	f, err := bignum.ParseFraction(a)
	if err != nil {
		return "", err
	}
	g, err := bignum.ParseFraction(b)
	if err != nil {
		return "", err
	}
	var h bignum.Fraction
	switch op {
	case "+":
		h = f.Add(g)
	case "-":
		h = f.Sub(g)
	case "*":
		h = f.Mul(g)
	case "/":
		h, err = f.Quo(g)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("operator %q is not supported for fractions: %w", op, ErrUsage)
	}
	return h.String(), nil
}

func binary(a, op, b string) (string, error) {
	x, err := bignum.Parse(a)
	if err != nil {
		return "", err
	}
	y, err := bignum.Parse(b)
	if err != nil {
		return "", err
	}
	if op == "/" {
		q, r, err := x.QuoRem(y)
		if err != nil {
			return "", err
		}
		return q.String() + "\nRemainder: " + r.String(), nil
	}
	z, err := expr.Apply(x, y, op[0])
	if err != nil {
		return "", err
	}
	return z.String(), nil
}

var helpRows = [][]string{
	{"<a> + <b>", "Addition"},
	{"<a> - <b>", "Subtraction"},
	{"<a> * <b>", "Multiplication"},
	{"<a> / <b>", "Division with remainder"},
	{"<a> % <b>", "Modulo"},
	{"<a> ^ <b>", "Power"},
	{"<n>/<d> + <n>/<d>", "Fraction addition"},
	{"<n>/<d> - <n>/<d>", "Fraction subtraction"},
	{"<n>/<d> * <n>/<d>", "Fraction multiplication"},
	{"<n>/<d> / <n>/<d>", "Fraction division"},
	{"<n>!", "Factorial"},
	{"log<base>(<n>)", "Integer logarithm, base 10 if omitted"},
	{"to_base <n> <base>", "Convert to base 2-36"},
	{"from_base <digits> <base>", "Convert from base 2-36"},
	{"(<a> + <b>) * <c>", "Expression with parentheses"},
	{"clear", "Clear the screen"},
	{"help", "Show this help"},
	{"exit, quit", "Leave the calculator"},
}

// Help returns the table of available commands.
func Help() string {
	var b strings.Builder
	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"Command", "Description"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.AppendBulk(helpRows)
	table.Render()
	return strings.TrimRight(b.String(), "\n")
}
