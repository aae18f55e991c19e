package narrator

import (
	"strings"

	"battletext/internal/effect"
	"battletext/internal/templates"
)

func ref(raw string) templates.Namespace { return templates.Ref(raw) }

var nodefault = templates.NoDefault

// tpl resolves a template ready for placeholder substitution.
func (r *Renderer) tpl(category string, namespaces ...templates.Namespace) templates.Text {
	return templates.Text(r.store.Resolve(category, namespaces...))
}

// defaultText reads a default-namespace entry as-is, without a trailing newline.
func (r *Renderer) defaultText(category string) templates.Text {
	return templates.Text(r.store.Get(templates.Default, category))
}

func sidePrefix(s string) string {
	if len(s) > 2 {
		return s[:2]
	}
	return s
}

func sideOf(s string) (Side, bool) {
	switch sidePrefix(s) {
	case "p1":
		return Side1, true
	case "p2":
		return Side2, true
	}
	return 0, false
}

func (r *Renderer) unknownPokemon(raw string) string {
	r.log.Warn("unresolvable pokemon reference %q", raw)
	return "???pokemon:" + raw + "???"
}

// nickname extracts the name from "p1a: Name" or "p1: Name".
func (r *Renderer) nickname(pokemon string) string {
	if pokemon == "" {
		return ""
	}
	if _, ok := sideOf(pokemon); !ok {
		return r.unknownPokemon(pokemon)
	}
	switch {
	case len(pokemon) > 3 && pokemon[3] == ':':
		return strings.TrimSpace(pokemon[4:])
	case len(pokemon) > 2 && pokemon[2] == ':':
		return strings.TrimSpace(pokemon[3:])
	}
	return r.unknownPokemon(pokemon)
}

// pokemon renders a pokémon reference as seen from the renderer's side.
func (r *Renderer) pokemon(pokemon string) string {
	if pokemon == "" {
		return ""
	}
	side, ok := sideOf(pokemon)
	if !ok {
		return r.unknownPokemon(pokemon)
	}
	category := "opposingPokemon"
	if side == r.perspective {
		category = "pokemon"
	}
	return r.defaultText(category).Set(templates.Nickname, r.nickname(pokemon)).String()
}

// fullName returns the side prefix and the switch-in name: "**Species**" or
// "Nickname (**Species**)".
func (r *Renderer) fullName(pokemon, details string) (string, string) {
	nickname := r.nickname(pokemon)
	species, _, _ := strings.Cut(details, ",")
	if nickname == species {
		return sidePrefix(pokemon), "**" + species + "**"
	}
	return sidePrefix(pokemon), nickname + " (**" + species + "**)"
}

func (r *Renderer) trainer(side string) string {
	side = sidePrefix(side)
	switch side {
	case "p1":
		return r.players[0]
	case "p2":
		return r.players[1]
	}
	r.log.Warn("unknown side %q", side)
	return "???side:" + side + "???"
}

func (r *Renderer) isOwn(side string) bool {
	return sidePrefix(side) == r.perspective.ID()
}

func (r *Renderer) team(side string) string {
	if r.isOwn(side) {
		return r.defaultText("team").String()
	}
	return r.defaultText("opposingTeam").String()
}

// own selects the Own template variant for the renderer's side.
func (r *Renderer) own(side string) templates.Namespace {
	if r.isOwn(side) {
		return templates.Own
	}
	return ref("")
}

func (r *Renderer) stat(stat string) string {
	ns := stat
	if ns == "" {
		ns = "stats"
	}
	if name := r.store.Get(ns, "statName"); name != "" {
		return name
	}
	return "???stat:" + stat + "???"
}

// ability renders the ability activation line for holder.
func (r *Renderer) ability(name, holder string) string {
	if name == "" {
		return ""
	}
	return r.defaultText("abilityActivation").
		Set(templates.Pokemon, r.pokemon(holder)).
		Set(templates.Ability, effect.Name(name)).
		String() + "\n"
}

// maybeAbility renders an ability activation line when ref names an ability.
func (r *Renderer) maybeAbility(ref, holder string) string {
	if !effect.IsAbility(ref) {
		return ""
	}
	return r.ability(effect.Ability(ref), holder)
}

func or(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

const (
	tPokemon    = templates.Pokemon
	tNickname   = templates.Nickname
	tFullName   = templates.FullName
	tTrainer    = templates.Trainer
	tTeam       = templates.Team
	tEffect     = templates.Effect
	tAbility    = templates.Ability
	tItem       = templates.Item
	tMove       = templates.Move
	tNumber     = templates.Number
	tPercentage = templates.Percentage
	tSource     = templates.Source
	tTarget     = templates.Target
	tType       = templates.Type
	tStat       = templates.Stat
	tSpecies    = templates.Species
)
