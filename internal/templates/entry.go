// Package templates holds the narrative template store and its resolver.
//
// A store maps a namespace (an effect, item or ability id, or "default") to
// categories, and every category to an Entry. Entries are parsed once at load
// time so resolution never inspects marker characters.
package templates

// Default is the namespace consulted when no override namespace matches.
const Default = "default"

// Kind tags the variant held by an Entry.
type Kind int

const (
	// Literal is template text returned as-is.
	Literal Kind = iota
	// RedirectCategory continues lookup at another category of the same namespace.
	RedirectCategory
	// RedirectNamespace continues lookup at the same category of another namespace.
	RedirectNamespace
	// Suppressed stops resolution with empty output and no fallback.
	Suppressed
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case RedirectCategory:
		return "redirect-category"
	case RedirectNamespace:
		return "redirect-namespace"
	case Suppressed:
		return "suppressed"
	default:
		return "unknown"
	}
}

// Entry is one category value inside a namespace.
type Entry struct {
	Kind Kind
	// Value is the literal text, or the redirect target.
	Value string
}

// ParseEntry converts the raw store form into an Entry.
// "" suppresses, ".name" redirects to a category and "#id" to a namespace.
// A marker only counts as the first byte, so indented text is always literal.
func ParseEntry(raw string) Entry {
	if raw == "" {
		return Entry{Kind: Suppressed}
	}
	switch raw[0] {
	case '.':
		return Entry{Kind: RedirectCategory, Value: raw[1:]}
	case '#':
		return Entry{Kind: RedirectNamespace, Value: raw[1:]}
	}
	return Entry{Kind: Literal, Value: raw}
}

// Raw returns the store form of the entry, the inverse of ParseEntry.
func (e Entry) Raw() string {
	switch e.Kind {
	case RedirectCategory:
		return "." + e.Value
	case RedirectNamespace:
		return "#" + e.Value
	case Suppressed:
		return ""
	default:
		return e.Value
	}
}
