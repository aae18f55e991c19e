// Package effect normalizes raw effect references found in battle protocol
// lines ("item: Leftovers", "ability: Levitate", "move: Protect") into the
// display form used in narrative text and the canonical id used for table
// lookups.
package effect

import (
	"strings"
	"unicode"
)

// Category tags that may prefix an effect reference.
const (
	PrefixItem    = "item:"
	PrefixMove    = "move:"
	PrefixAbility = "ability:"
)

// Name returns the display form of an effect reference: the category prefix is
// stripped and surrounding whitespace trimmed. Empty input yields "".
func Name(ref string) string {
	if ref == "" {
		return ""
	}
	switch {
	case strings.HasPrefix(ref, PrefixItem):
		ref = ref[len(PrefixItem):]
	case strings.HasPrefix(ref, PrefixMove):
		ref = ref[len(PrefixMove):]
	case strings.HasPrefix(ref, PrefixAbility):
		ref = ref[len(PrefixAbility):]
	}
	return strings.TrimSpace(ref)
}

// ID returns the canonical id of an effect reference.
func ID(ref string) string {
	return ToID(Name(ref))
}

// ToID canonicalizes a display string: lowercase ASCII letters and digits only.
// The id is used for dispatch and never rendered.
func ToID(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// IsAbility reports whether ref carries the ability category tag.
func IsAbility(ref string) bool {
	return strings.HasPrefix(ref, PrefixAbility)
}

// IsItem reports whether ref carries the item category tag.
func IsItem(ref string) bool {
	return strings.HasPrefix(ref, PrefixItem)
}

// Ability returns the ability name carried by ref, or "" when ref is not an
// ability reference.
func Ability(ref string) string {
	if !IsAbility(ref) {
		return ""
	}
	return strings.TrimSpace(ref[len(PrefixAbility):])
}
