package templates

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoDefault is reported when the store lacks the default namespace.
var ErrNoDefault = errors.New("missing default namespace")

// Validate checks that every redirect lands on an entry and that no redirect
// chain loops. All problems are returned joined.
func (s *Store) Validate() error {
	var errs []error
	if !s.HasNamespace(Default) {
		errs = append(errs, ErrNoDefault)
	}
	for _, ns := range s.Namespaces() {
		for _, category := range s.Categories(ns) {
			if err := s.checkChain(ns, category); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

type hop struct{ namespace, category string }

func (h hop) String() string { return h.namespace + "." + h.category }

func (s *Store) checkChain(namespace, category string) error {
	cur := hop{namespace, category}
	seen := map[hop]bool{cur: true}
	path := []string{cur.String()}
	e, _ := s.Lookup(namespace, category)
	for e.Kind == RedirectCategory || e.Kind == RedirectNamespace {
		if e.Kind == RedirectCategory {
			cur.category = e.Value
		} else {
			cur.namespace = e.Value
		}
		path = append(path, cur.String())
		if seen[cur] {
			return fmt.Errorf("redirect cycle: %s", strings.Join(path, " -> "))
		}
		seen[cur] = true
		var ok bool
		if e, ok = s.Lookup(cur.namespace, cur.category); !ok {
			return fmt.Errorf("dangling redirect: %s", strings.Join(path, " -> "))
		}
	}
	return nil
}
