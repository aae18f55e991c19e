package templates

import "strings"

// Placeholder is a bracketed token inside template text.
type Placeholder string

const (
	Pokemon    Placeholder = "[POKEMON]"
	Nickname   Placeholder = "[NICKNAME]"
	FullName   Placeholder = "[FULLNAME]"
	Trainer    Placeholder = "[TRAINER]"
	Team       Placeholder = "[TEAM]"
	Effect     Placeholder = "[EFFECT]"
	Ability    Placeholder = "[ABILITY]"
	Item       Placeholder = "[ITEM]"
	Move       Placeholder = "[MOVE]"
	Number     Placeholder = "[NUMBER]"
	Percentage Placeholder = "[PERCENTAGE]"
	Source     Placeholder = "[SOURCE]"
	Target     Placeholder = "[TARGET]"
	Type       Placeholder = "[TYPE]"
	Stat       Placeholder = "[STAT]"
	Species    Placeholder = "[SPECIES]"
)

// Text is resolved template text awaiting substitution.
type Text string

// Set replaces the first occurrence of p with value. A template repeating a
// token needs one Set per occurrence.
func (t Text) Set(p Placeholder, value string) Text {
	return Text(strings.Replace(string(t), string(p), value, 1))
}

func (t Text) String() string { return string(t) }
