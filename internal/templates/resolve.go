package templates

import "battletext/internal/effect"

type nsKind int

const (
	nsRef nsKind = iota
	nsOwn
	nsNoDefault
)

// Namespace is one candidate in a resolution chain.
type Namespace struct {
	kind nsKind
	ref  string
}

var (
	// Own selects the category's "Own" variant from the default namespace.
	Own = Namespace{kind: nsOwn}
	// NoDefault ends resolution with empty output.
	NoDefault = Namespace{kind: nsNoDefault}
)

// Ref wraps a raw effect, item or ability reference. Empty refs are skipped.
func Ref(raw string) Namespace { return Namespace{kind: nsRef, ref: raw} }

// ParseNamespace maps the textual sentinels OWN and NODEFAULT, anything else is a Ref.
func ParseNamespace(s string) Namespace {
	switch s {
	case "OWN":
		return Own
	case "NODEFAULT":
		return NoDefault
	}
	return Ref(s)
}

// Resolve picks the most specific template for category, trying each namespace
// in order before the default namespace. The result carries a trailing newline
// unless it is empty.
//
// Redirect chains are followed without a cycle guard; use Validate on stores
// from untrusted sources.
func (s *Store) Resolve(category string, namespaces ...Namespace) string {
	for _, n := range namespaces {
		switch n.kind {
		case nsOwn:
			text, _ := s.follow(Default, category+"Own")
			return line(text)
		case nsNoDefault:
			return ""
		}
		if n.ref == "" {
			continue
		}
		if text, found := s.follow(effect.ID(n.ref), category); found {
			return line(text)
		}
	}
	text, _ := s.follow(Default, category)
	return line(text)
}

// Get returns the text stored for namespace/category after following redirects,
// without the trailing newline Resolve adds. Missing and suppressed entries
// yield "".
func (s *Store) Get(namespace, category string) string {
	text, _ := s.follow(namespace, category)
	return text
}

// follow interprets redirects starting at namespace/category. found is false only
// when the first lookup misses; a redirect into nothing resolves as suppressed.
func (s *Store) follow(namespace, category string) (text string, found bool) {
	e, ok := s.Lookup(namespace, category)
	if !ok {
		return "", false
	}
	for {
		switch e.Kind {
		case Literal:
			return e.Value, true
		case Suppressed:
			return "", true
		case RedirectCategory:
			category = e.Value
		case RedirectNamespace:
			namespace = e.Value
		}
		if e, ok = s.Lookup(namespace, category); !ok {
			return "", true
		}
	}
}

func line(text string) string {
	if text == "" {
		return ""
	}
	return text + "\n"
}
