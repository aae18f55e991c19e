package narrator

import (
	"math"
	"strconv"
	"strings"
)

// count is an integer read from a protocol field. ok is false when the field
// held no leading digits; every comparison against an invalid count is false.
type count struct {
	n  int
	ok bool
}

// parseCount reads an optional sign and leading decimal digits after leading
// whitespace, ignoring anything that follows.
func parseCount(s string) count {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return count{}
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return count{}
	}
	return count{n: n, ok: true}
}

func (c count) atLeast(v int) bool { return c.ok && c.n >= v }
func (c count) below(v int) bool   { return c.ok && c.n < v }
func (c count) is(v int) bool      { return c.ok && c.n == v }

// nonZero reports truthiness: neither zero nor invalid.
func (c count) nonZero() bool { return c.ok && c.n != 0 }

// isNumeric reports whether the whole field reads as a number.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsNaN(f)
}
