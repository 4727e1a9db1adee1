package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/govalues/bignum"
)

// ParseLog splits a logarithm of the form "logB(N)" into its base and
// argument. The base defaults to "10" when it is omitted, as in "log(N)".
// Spaces around B and N are ignored.
// If the "log" prefix or the parentheses are missing or malformed, or if B or
// N is blank, both results are empty and ok is false.
func ParseLog(s string) (base, num string, ok bool) {
	if !strings.HasPrefix(s, "log") {
		return "", "", false
	}
	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return "", "", false
	}
	if strings.TrimSpace(s[end+1:]) != "" {
		return "", "", false
	}
	base = strings.TrimSpace(s[len("log"):open])
	if len(s[len("log"):open]) == 0 {
		base = "10"
	}
	num = strings.TrimSpace(s[open+1 : end])
	if base == "" || num == "" {
		return "", "", false
	}
	return base, num, true
}

// parseBase converts the base argument of to_base and from_base.
func parseBase(s string) (int, error) {
	b, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("base %q is not a number: %w", s, bignum.ErrInvalidBase)
	}
	return b, nil
}

// isOperator reports whether s is one of the binary operators of the
// "<a> <op> <b>" form.
func isOperator(s string) bool {
	switch s {
	case "+", "-", "*", "/", "%", "^":
		return true
	}
	return false
}
