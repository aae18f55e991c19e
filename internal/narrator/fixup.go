package narrator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fixup capitalizes lowercase name templates ("the opposing [NICKNAME]") when
// they open a line. re is nil when every name template already starts
// uppercase.
type fixup struct {
	re    *regexp.Regexp
	upper cases.Caser
}

var nameTemplates = []string{"pokemon", "opposingPokemon", "team", "opposingTeam"}

func (r *Renderer) buildFixup() *fixup {
	f := &fixup{upper: cases.Upper(language.Und)}
	var prefixes []string
	for _, category := range nameTemplates {
		text := r.defaultText(category).String()
		first, size := utf8.DecodeRuneInString(text)
		if size == 0 || f.upper.String(string(first)) == string(first) {
			continue
		}
		if i := strings.Index(text, "["); i >= 0 {
			text = text[:i]
		}
		if text != "" {
			prefixes = append(prefixes, regexp.QuoteMeta(text))
		}
	}
	if len(prefixes) > 0 {
		f.re = regexp.MustCompile(`((?:^|\n)(?:  |  \(|  \[)?)(` + strings.Join(prefixes, "|") + `)`)
	}
	r.log.Debug("lowercase fixup prefixes: %v", prefixes)
	return f
}

// fixLowercase uppercases the first letter of a name template that starts a
// line, optionally after indentation and an opening bracket.
func (r *Renderer) fixLowercase(text string) string {
	if r.fix == nil {
		r.fix = r.buildFixup()
	}
	if r.fix.re == nil || text == "" {
		return text
	}
	matches := r.fix.re.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		// m[4]:m[5] is the matched name prefix.
		b.WriteString(text[last:m[4]])
		b.WriteString(r.fix.capitalize(text[m[4]:m[5]]))
		last = m[5]
	}
	b.WriteString(text[last:])
	return b.String()
}

func (f *fixup) capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return f.upper.String(string(first)) + s[size:]
}
