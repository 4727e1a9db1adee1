package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/govalues/bignum"
	"github.com/govalues/bignum/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter feeds a fixed list of lines and then reports io.EOF.
type scriptedPrompter struct {
	*dumbPrompter
	history []string
}

func newScripted(out *bytes.Buffer, lines ...string) *scriptedPrompter {
	in := strings.NewReader(strings.Join(lines, "\n"))
	return &scriptedPrompter{dumbPrompter: NewDumbPrompter(in, out).(*dumbPrompter)}
}

func (p *scriptedPrompter) AppendHistory(cmd string) {
	p.history = append(p.history, cmd)
}

func newTester(t *testing.T) *Console {
	t.Helper()
	return New(Config{NoColor: true})
}

func TestParseLog(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s, wantBase, wantNum string
		}{
			{"log2(8)", "2", "8"},
			{"log(1000)", "10", "1000"},
			{"log10(100)", "10", "100"},
			{"log 2 ( 8 )", "2", "8"},
			{"log16(65536)", "16", "65536"},
			{"log2((8))", "2", "(8)"},
		}
		for _, tt := range tests {
			base, num, ok := ParseLog(tt.s)
			assert.True(t, ok, "ParseLog(%q)", tt.s)
			assert.Equal(t, tt.wantBase, base, "ParseLog(%q)", tt.s)
			assert.Equal(t, tt.wantNum, num, "ParseLog(%q)", tt.s)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"",
			"lg2(8)",
			"log2 8",
			"log2(8",
			"log28)",
			"log2()",
			"log2(  )",
			"log  (8)",
			"log2)8(",
			"log2(8) + 1",
		}
		for _, s := range tests {
			base, num, ok := ParseLog(s)
			assert.False(t, ok, "ParseLog(%q)", s)
			assert.Empty(t, base, "ParseLog(%q)", s)
			assert.Empty(t, num, "ParseLog(%q)", s)
		}
	})
}

func TestConsole_Execute(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			line, want string
		}{
			{"", ""},
			{"  ", ""},
			{"2 + 3", "5"},
			{"-5 - 3", "-8"},
			{"123456789 * 987654321", "121932631112635269"},
			{"17 / 5", "3\nRemainder: 2"},
			{"-17 / 5", "-3\nRemainder: -2"},
			{"17 % 5", "2"},
			{"2 ^ 100", "1267650600228229401496703205376"},
			{"5!", "120"},
			{"0!", "1"},
			{"25!", "15511210043330985984000000"},
			{"log2(1024)", "10"},
			{"log(999)", "2"},
			{"log(1000)", "3"},
			{"to_base 255 16", "FF"},
			{"to_base -10 2", "-1010"},
			{"to_base 0 7", "0"},
			{"from_base ff 16", "255"},
			{"from_base -1010 2", "-10"},
			{"from_base ZZ 36", "1295"},
			{"1/2 + 1/3", "5/6"},
			{"1/2 - 3/4", "-1/4"},
			{"2/3 * 3/4", "1/2"},
			{"1/2 / 1/4", "2/1"},
			{"(2 + 3) * 4", "20"},
			{"2+3*4", "14"},
			{"2^3^2", "64"},
			{"-4 * (-3)", "12"},
		}
		for _, tt := range tests {
			c := newTester(t)
			got, err := c.Execute(tt.line)
			require.NoError(t, err, "Execute(%q)", tt.line)
			assert.Equal(t, tt.want, got, "Execute(%q)", tt.line)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]error{
			"exit":              ErrExit,
			"quit":              ErrExit,
			"5 / 0":             bignum.ErrDivisionByZero,
			"0 / 0":             bignum.ErrDivisionByZero,
			"5 % 0":             bignum.ErrDivisionByZero,
			"2 ^ -1":            bignum.ErrNegativeExponent,
			"-5!":               bignum.ErrNegativeInput,
			"log2(0)":           bignum.ErrInvalidInput,
			"log1(8)":           bignum.ErrInvalidInput,
			"log(-5)":           bignum.ErrInvalidInput,
			"logx(8)":           bignum.ErrInvalidFormat,
			"log2 8":            ErrUsage,
			"12a + 1":           bignum.ErrInvalidFormat,
			"to_base 10":        ErrUsage,
			"to_base 10 1":      bignum.ErrInvalidBase,
			"to_base 10 37":     bignum.ErrInvalidBase,
			"to_base 10 x":      bignum.ErrInvalidBase,
			"from_base 12 2":    bignum.ErrInvalidDigit,
			"from_base 12":      ErrUsage,
			"1/0 + 1/2":         bignum.ErrDivisionByZero,
			"1/2 / 0/3":         bignum.ErrDivisionByZero,
			"1/2 % 1/3":         ErrUsage,
			"1/ + 1/2":          bignum.ErrInvalidFormat,
			"(2 + 3":            expr.ErrSyntax,
			"2 + 3)":            expr.ErrSyntax,
			"2 +":               expr.ErrSyntax,
			"hello":             expr.ErrSyntax,
			"-(3)":              expr.ErrSyntax,
			"(1 + 1) / (1 - 1)": bignum.ErrDivisionByZero,
		}
		for line, wantErr := range tests {
			c := newTester(t)
			_, err := c.Execute(line)
			assert.ErrorIs(t, err, wantErr, "Execute(%q)", line)
		}
	})

	t.Run("division messages", func(t *testing.T) {
		c := newTester(t)
		_, err := c.Execute("0 / 0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "undefined")
		_, err = c.Execute("7 / 0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "infinite")
	})

	t.Run("clear", func(t *testing.T) {
		got, err := New(Config{Terminal: true}).Execute("clear")
		require.NoError(t, err)
		assert.Equal(t, clearScreen, got)

		got, err = New(Config{}).Execute("clear")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("help", func(t *testing.T) {
		got, err := newTester(t).Execute("help")
		require.NoError(t, err)
		for _, row := range helpRows {
			assert.Contains(t, got, row[0])
		}
	})
}

func TestConsole_Interactive(t *testing.T) {
	t.Run("session", func(t *testing.T) {
		var out bytes.Buffer
		p := newScripted(&out, "2 + 3", "", "5 / 0", "1/2 + 1/2", "exit", "3 * 3")
		c := New(Config{NoColor: true, Prompter: p, Printer: &out})

		require.NoError(t, c.Interactive())

		got := out.String()
		assert.Contains(t, got, "Arbitrary Precision Calculator")
		assert.Contains(t, got, "> 5\n")
		assert.Contains(t, got, "Error: computing [5 / 0]: result is infinite")
		assert.Contains(t, got, "1/1\n")
		assert.Contains(t, got, "Exiting...")
		assert.NotContains(t, got, "9\n")
		assert.Equal(t, []string{"2 + 3", "5 / 0", "1/2 + 1/2", "exit"}, p.history)
	})

	t.Run("end of input", func(t *testing.T) {
		var out bytes.Buffer
		p := newScripted(&out, "10!")
		c := New(Config{Prompter: p, Printer: &out})

		require.NoError(t, c.Interactive())
		assert.Contains(t, out.String(), "3628800\n")
	})

	t.Run("custom prompt", func(t *testing.T) {
		var out bytes.Buffer
		p := newScripted(&out, "1 + 1")
		c := New(Config{Prompt: "calc> ", Prompter: p, Printer: &out})

		require.NoError(t, c.Interactive())
		assert.Contains(t, out.String(), "calc> 2\n")
	})

	t.Run("no prompter", func(t *testing.T) {
		assert.Error(t, New(Config{}).Interactive())
	})
}

func TestConsole_Evaluate(t *testing.T) {
	var out bytes.Buffer
	c := New(Config{Printer: &out})

	require.NoError(t, c.Evaluate([]string{"2 ^ 10", "to_base 1024 2"}))
	assert.Equal(t, "1024\n10000000000\n", out.String())

	out.Reset()
	err := c.Evaluate([]string{"1 + 1", "1 / 0", "2 + 2"})
	assert.True(t, errors.Is(err, bignum.ErrDivisionByZero))
	assert.Equal(t, "2\n", out.String())
}

func TestCompleteWord(t *testing.T) {
	head, got, tail := completeWord("to", 2)
	assert.Equal(t, "", head)
	assert.Equal(t, []string{"to_base"}, got)
	assert.Equal(t, "", tail)

	head, got, _ = completeWord("1 + 2 cl", 8)
	assert.Equal(t, "1 + 2 ", head)
	assert.Equal(t, []string{"clear"}, got)

	_, got, _ = completeWord("", 0)
	assert.Empty(t, got)
}
