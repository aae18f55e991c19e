package narrator

import (
	"strings"

	"battletext/internal/effect"
	"battletext/internal/protocol"
)

func (r *Renderer) damage(m protocol.Damage) string {
	t := r.tpl("damage", ref(m.From), nodefault)
	line1 := r.maybeAbility(m.From, or(m.Of, m.Pokemon))
	if t != "" {
		return line1 + t.Set(tPokemon, r.pokemon(m.Pokemon)).String()
	}

	id := effect.ID(m.From)
	switch {
	case m.From == "":
		category := "damage"
		if m.Percentage != "" {
			category = "damagePercentage"
		}
		return line1 + r.tpl(category).
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tPercentage, m.Percentage).String()
	case effect.IsItem(m.From):
		category := "damageFromItem"
		if m.Of != "" {
			category = "damageFromPokemon"
		}
		return line1 + r.tpl(category).
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tItem, effect.Name(m.From)).
			Set(tSource, r.pokemon(m.Of)).String()
	case m.PartiallyTrapped || id == "bind" || id == "wrap":
		return line1 + r.tpl("damageFromPartialTrapping").
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tMove, effect.Name(m.From)).String()
	}
	return line1 + r.tpl("damage").Set(tPokemon, r.pokemon(m.Pokemon)).String()
}

func (r *Renderer) heal(m protocol.Heal) string {
	t := r.tpl("heal", ref(m.From), nodefault)
	line1 := r.maybeAbility(m.From, m.Pokemon)
	if t != "" {
		return line1 + t.
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tSource, r.pokemon(m.Of)).
			Set(tNickname, m.Wisher).String()
	}
	if m.From != "" && !effect.IsAbility(m.From) {
		return line1 + r.tpl("healFromEffect").
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tEffect, effect.Name(m.From)).String()
	}
	return line1 + r.tpl("heal").Set(tPokemon, r.pokemon(m.Pokemon)).String()
}

// boostCategory names the template for a stat change: the command name, a
// magnitude tag, then a source qualifier. The qualifier is only added for a
// non-zero amount.
func boostCategory(m protocol.Boost) string {
	amount := parseCount(m.Amount)
	category := strings.TrimPrefix(m.Kind, "-")
	switch {
	case amount.atLeast(3):
		category += "3"
	case amount.atLeast(2):
		category += "2"
	case amount.is(0):
		category += "0"
	}
	if amount.nonZero() {
		switch {
		case m.ZEffect && m.Multiple:
			category += "MultipleFromZEffect"
		case m.ZEffect:
			category += "FromZEffect"
		case effect.IsItem(m.From):
			category += "FromItem"
		}
	}
	return category
}

func (r *Renderer) boost(m protocol.Boost) string {
	stat := m.Stat
	if stat == "spa" && r.gen.is(1) {
		stat = "spc"
	}
	line1 := r.maybeAbility(m.From, or(m.Of, m.Pokemon))
	return line1 + r.tpl(boostCategory(m), ref(m.From)).
		Set(tPokemon, r.pokemon(m.Pokemon)).
		Set(tStat, r.stat(stat)).
		Set(tItem, effect.Name(m.From)).String()
}

func (r *Renderer) setBoost(m protocol.SetBoost) string {
	line1 := r.maybeAbility(m.From, or(m.Of, m.Pokemon))
	return line1 + r.tpl("boost", ref(m.From)).Set(tPokemon, r.pokemon(m.Pokemon)).String()
}

func (r *Renderer) boostTransfer(m protocol.BoostTransfer) string {
	line1 := r.maybeAbility(m.From, or(m.Of, m.Pokemon))
	category := "copyBoost"
	if m.Kind == "-swapboost" {
		switch effect.ID(m.From) {
		case "guardswap":
			category = "swapDefensiveBoost"
		case "powerswap":
			category = "swapOffensiveBoost"
		default:
			category = "swapBoost"
		}
	}
	return line1 + r.tpl(category, ref(m.From)).
		Set(tPokemon, r.pokemon(m.Pokemon)).
		Set(tTarget, r.pokemon(m.Target)).String()
}

func (r *Renderer) clearBoost(m protocol.ClearBoost) string {
	line1 := r.maybeAbility(m.From, or(m.Of, m.Pokemon))
	category := "clearBoost"
	if m.ZEffect {
		category = "clearBoostFromZEffect"
	}
	return line1 + r.tpl(category, ref(m.From)).
		Set(tPokemon, r.pokemon(m.Pokemon)).
		Set(tSource, r.pokemon(m.Source)).String()
}
