package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// UserPrompter reads lines of input for the interactive loop.
type UserPrompter interface {
	// PromptInput displays the prompt and returns the line entered, without
	// the trailing newline. It returns io.EOF when the input is exhausted.
	PromptInput(prompt string) (string, error)

	// AppendHistory records a command so it can be recalled later.
	AppendHistory(command string)

	// Close releases the terminal and persists the history.
	Close() error
}

// keywords are offered for tab completion.
var keywords = []string{"clear", "exit", "from_base", "help", "log", "quit", "to_base"}

// NewPrompter returns a line-editing prompter when stdin is an interactive
// terminal, and a plain line reader over stdin otherwise.
// History is read from and written to historyFile unless it is empty.
func NewPrompter(historyFile string, out io.Writer) UserPrompter {
	if !liner.TerminalSupported() {
		return NewDumbPrompter(os.Stdin, out)
	}
	return newTerminalPrompter(historyFile)
}

// terminalPrompter is a prompter backed by liner.
type terminalPrompter struct {
	*liner.State
	history string
}

func newTerminalPrompter(history string) *terminalPrompter {
	p := &terminalPrompter{State: liner.NewLiner(), history: history}
	if history != "" {
		if f, err := os.Open(history); err == nil {
			p.ReadHistory(f)
			f.Close()
		}
	}
	p.SetCtrlCAborts(true)
	p.SetTabCompletionStyle(liner.TabPrints)
	p.SetWordCompleter(completeWord)
	return p
}

func (p *terminalPrompter) PromptInput(prompt string) (string, error) {
	return p.Prompt(prompt)
}

func (p *terminalPrompter) Close() error {
	if p.history != "" {
		if f, err := os.Create(p.history); err == nil {
			p.WriteHistory(f)
			f.Close()
		}
	}
	return p.State.Close()
}

// completeWord completes the command keyword under the cursor.
func completeWord(line string, pos int) (head string, completions []string, tail string) {
	start := strings.LastIndexAny(line[:pos], " \t") + 1
	word := line[start:pos]
	if word == "" {
		return line[:pos], nil, line[pos:]
	}
	for _, kw := range keywords {
		if strings.HasPrefix(kw, word) {
			completions = append(completions, kw)
		}
	}
	return line[:start], completions, line[pos:]
}

// dumbPrompter reads lines from a reader without any editing support.
type dumbPrompter struct {
	r   *bufio.Reader
	out io.Writer
}

// NewDumbPrompter returns a prompter that writes prompts to out and reads
// lines from in. It is used when the terminal does not support line editing
// and for scripted input.
func NewDumbPrompter(in io.Reader, out io.Writer) UserPrompter {
	return &dumbPrompter{r: bufio.NewReader(in), out: out}
}

func (p *dumbPrompter) PromptInput(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}

func (p *dumbPrompter) AppendHistory(string) {}

func (p *dumbPrompter) Close() error { return nil }
