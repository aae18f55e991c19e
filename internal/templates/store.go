package templates

import "sort"

// Store is a read-only namespace -> category -> Entry table once loaded.
// It is safe for concurrent readers.
type Store struct {
	namespaces map[string]map[string]Entry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{namespaces: make(map[string]map[string]Entry)}
}

// FromMap builds a store from raw entries, parsing each with ParseEntry.
func FromMap(raw map[string]map[string]string) *Store {
	s := NewStore()
	for ns, categories := range raw {
		for category, value := range categories {
			s.Set(ns, category, ParseEntry(value))
		}
	}
	return s
}

// Set stores an entry. Intended for loaders; do not call once rendering started.
func (s *Store) Set(namespace, category string, e Entry) {
	cats, ok := s.namespaces[namespace]
	if !ok {
		cats = make(map[string]Entry)
		s.namespaces[namespace] = cats
	}
	cats[category] = e
}

// Lookup returns the entry stored for namespace/category.
func (s *Store) Lookup(namespace, category string) (Entry, bool) {
	cats, ok := s.namespaces[namespace]
	if !ok {
		return Entry{}, false
	}
	e, ok := cats[category]
	return e, ok
}

// HasNamespace reports whether the namespace exists.
func (s *Store) HasNamespace(namespace string) bool {
	_, ok := s.namespaces[namespace]
	return ok
}

// Namespaces returns the namespace ids in sorted order.
func (s *Store) Namespaces() []string {
	out := make([]string, 0, len(s.namespaces))
	for ns := range s.namespaces {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

// Categories returns the categories of a namespace in sorted order.
func (s *Store) Categories(namespace string) []string {
	cats := s.namespaces[namespace]
	out := make([]string, 0, len(cats))
	for c := range cats {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Len returns the total number of entries across all namespaces.
func (s *Store) Len() int {
	n := 0
	for _, cats := range s.namespaces {
		n += len(cats)
	}
	return n
}

// Merge copies every entry of other into s, replacing existing ones.
func (s *Store) Merge(other *Store) {
	for ns, cats := range other.namespaces {
		for c, e := range cats {
			s.Set(ns, c, e)
		}
	}
}
