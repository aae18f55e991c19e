// Package protocol tokenizes battle protocol lines and decodes them into typed
// messages.
//
// A line looks like "|-damage|p2a: Charizard|50/100|[from] item: Life Orb":
// the first field is the command, the following fields are positional
// arguments, and trailing "[key] value" fields are keyword arguments.
package protocol

import "strings"

// FlagValue is stored for keyword arguments that carry no value, e.g. "[still]".
const FlagValue = "."

// KWArgs holds the keyword arguments of an event.
type KWArgs map[string]string

// Get returns the value for key, or "" when absent.
func (kw KWArgs) Get(key string) string {
	if kw == nil {
		return ""
	}
	return kw[key]
}

// Has reports whether key is present with a non-empty value.
func (kw KWArgs) Has(key string) bool {
	return kw.Get(key) != ""
}

// Event is one tokenized protocol line. It is immutable once produced.
type Event struct {
	Command string
	Args    []string
	KW      KWArgs
}

// NewEvent builds an event from already-tokenized parts.
func NewEvent(command string, args []string, kw KWArgs) Event {
	if kw == nil {
		kw = KWArgs{}
	}
	return Event{Command: command, Args: args, KW: kw}
}

// Arg returns the i-th positional argument, or "" when it is missing.
func (e Event) Arg(i int) string {
	if i < 0 || i >= len(e.Args) {
		return ""
	}
	return e.Args[i]
}

// IsMinor reports whether the command carries the minor-event marker.
func (e Event) IsMinor() bool {
	return strings.HasPrefix(e.Command, "-")
}

// SplitLines splits a multi-line buffer into raw protocol lines.
func SplitLines(buf string) []string {
	return strings.Split(buf, "\n")
}

// ParseLine tokenizes one raw protocol line. Malformed lines never fail; a
// blank line yields an event with an empty command and a lone "|" is "done".
func ParseLine(raw string) Event {
	line := strings.TrimSuffix(raw, "\r")
	if line == "|" {
		return NewEvent("done", nil, nil)
	}
	line = strings.TrimPrefix(line, "|")
	if strings.TrimSpace(line) == "" {
		return NewEvent("", nil, nil)
	}

	fields := strings.Split(line, "|")
	cmd, args := fields[0], fields[1:]

	kw := KWArgs{}
	for len(args) > 0 {
		last := args[len(args)-1]
		if !strings.HasPrefix(last, "[") {
			break
		}
		end := strings.Index(last, "]")
		if end <= 1 {
			break
		}
		value := strings.TrimSpace(last[end+1:])
		if value == "" {
			value = FlagValue
		}
		kw[last[1:end]] = value
		args = args[:len(args)-1]
	}

	return NewEvent(cmd, args, kw)
}
