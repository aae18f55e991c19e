package narrator

import (
	"strings"

	"battletext/internal/effect"
	"battletext/internal/protocol"
)

func (r *Renderer) volatileStart(m protocol.VolatileStart) string {
	line1 := or(r.maybeAbility(m.Effect, m.Pokemon), r.maybeAbility(m.From, or(m.Of, m.Pokemon)))
	id := effect.ID(m.Effect)
	switch {
	case id == "typechange":
		return line1 + r.tpl("typeChange", ref(m.From)).
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tType, m.Arg3).
			Set(tSource, r.pokemon(m.Of)).String()
	case id == "typeadd":
		return line1 + r.tpl("typeAdd", ref(m.From)).
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tType, m.Arg3).String()
	case strings.HasPrefix(id, "stockpile"):
		return line1 + r.tpl("start", ref("stockpile")).
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tNumber, strings.TrimPrefix(id, "stockpile")).String()
	case strings.HasPrefix(id, "perish"):
		return line1 + r.tpl("activate", ref("perishsong")).
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tNumber, strings.TrimPrefix(id, "perish")).String()
	}

	// Later flags take precedence.
	category := "start"
	if m.Already {
		category = "alreadyStarted"
	}
	if m.Fatigue {
		category = "startFromFatigue"
	}
	if m.ZEffect {
		category = "startFromZEffect"
	}
	if m.Damage {
		category = "activate"
	}
	if m.Block {
		category = "block"
	}
	if m.Upkeep {
		category = "upkeep"
	}
	if id == "reflect" || id == "lightscreen" {
		category = "startGen1"
	}
	if category == "start" && effect.IsItem(m.From) {
		category = "startFromItem"
	}
	return line1 + r.tpl(category, ref(m.Effect)).
		Set(tPokemon, r.pokemon(m.Pokemon)).
		Set(tEffect, effect.Name(m.Effect)).
		Set(tMove, m.Arg3).
		Set(tSource, r.pokemon(m.Of)).
		Set(tItem, effect.Name(m.From)).String()
}

func (r *Renderer) volatileEnd(m protocol.VolatileEnd) string {
	line1 := or(r.maybeAbility(m.Effect, m.Pokemon), r.maybeAbility(m.From, or(m.Of, m.Pokemon)))
	switch effect.ID(m.Effect) {
	case "doomdesire", "futuresight":
		return line1 + r.tpl("activate", ref(m.Effect)).Set(tTarget, r.pokemon(m.Pokemon)).String()
	}
	t := r.tpl("end", ref(m.Effect))
	if effect.IsItem(m.From) {
		if fromItem := r.tpl("endFromItem", ref(m.Effect)); fromItem != "" {
			t = fromItem
		}
	}
	return line1 + t.
		Set(tPokemon, r.pokemon(m.Pokemon)).
		Set(tEffect, effect.Name(m.Effect)).
		Set(tSource, r.pokemon(m.Of)).String()
}

func (r *Renderer) singleEffect(m protocol.SingleEffect) string {
	holder := or(m.Of, m.Pokemon)
	line1 := or(r.maybeAbility(m.Effect, holder), r.maybeAbility(m.From, holder))
	if effect.ID(m.Effect) == "instruct" {
		return line1 + r.tpl("activate", ref(m.Effect)).
			Set(tPokemon, r.pokemon(m.Of)).
			Set(tTarget, r.pokemon(m.Pokemon)).String()
	}
	t := r.tpl("start", ref(m.Effect), nodefault)
	if t == "" {
		t = r.tpl("start").Set(tEffect, effect.Name(m.Effect))
	}
	return line1 + t.
		Set(tPokemon, r.pokemon(m.Pokemon)).
		Set(tSource, r.pokemon(m.Of)).
		Set(tTeam, r.team(sidePrefix(m.Pokemon))).String()
}

func (r *Renderer) abilityEvent(m protocol.Ability) string {
	old, arg4 := m.OldAbility, m.Arg4
	// A pokémon or "boost" in the third slot is a shifted fourth argument.
	if old != "" && (strings.HasPrefix(old, "p1") || strings.HasPrefix(old, "p2") || old == "boost") {
		old, arg4 = "", old
	}
	line1 := r.ability(old, m.Pokemon) + r.ability(m.Ability, m.Pokemon)
	if m.Fail {
		return line1 + r.tpl("block", ref(m.From)).String()
	}
	if m.From != "" {
		line1 = r.maybeAbility(m.From, m.Pokemon) + line1
		return line1 + r.tpl("changeAbility", ref(m.From)).
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tAbility, effect.Name(m.Ability)).
			Set(tSource, r.pokemon(m.Of)).String()
	}
	id := effect.ID(m.Ability)
	if id == "unnerve" {
		return line1 + r.tpl("start", ref(m.Ability)).Set(tTeam, r.team(arg4)).String()
	}
	category := "start"
	if id == "anticipation" || id == "sturdy" {
		category = "activate"
	}
	return line1 + r.tpl(category, ref(m.Ability), nodefault).Set(tPokemon, r.pokemon(m.Pokemon)).String()
}

func (r *Renderer) endAbility(m protocol.EndAbility) string {
	if m.Ability != "" {
		return r.ability(m.Ability, m.Pokemon)
	}
	line1 := r.maybeAbility(m.From, or(m.Of, m.Pokemon))
	return line1 + r.tpl("start", ref("Gastro Acid")).Set(tPokemon, r.pokemon(m.Pokemon)).String()
}

func (r *Renderer) item(m protocol.Item) string {
	id := effect.ID(m.From)
	of, target := m.Of, ""
	if id == "magician" || id == "pickpocket" {
		target, of = of, ""
	}
	line1 := r.maybeAbility(m.From, or(of, m.Pokemon))
	switch id {
	case "thief", "covet", "bestow", "magician", "pickpocket":
		return line1 + r.tpl("takeItem", ref(m.From)).
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tItem, effect.Name(m.Item)).
			Set(tSource, r.pokemon(or(target, of))).String()
	case "frisk":
		category := "activateNoTarget"
		if of != "" && m.Pokemon != "" && of != m.Pokemon {
			category = "activate"
		}
		return line1 + r.tpl(category, ref("Frisk")).
			Set(tPokemon, r.pokemon(of)).
			Set(tItem, effect.Name(m.Item)).
			Set(tTarget, r.pokemon(m.Pokemon)).String()
	}
	if m.From != "" {
		return line1 + r.tpl("addItem", ref(m.From)).
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tItem, effect.Name(m.Item)).String()
	}
	return line1 + r.tpl("start", ref(m.Item), nodefault).Set(tPokemon, r.pokemon(m.Pokemon)).String()
}

func (r *Renderer) endItem(m protocol.EndItem) string {
	line1 := r.maybeAbility(m.From, or(m.Of, m.Pokemon))
	item := effect.Name(m.Item)
	if m.Eat {
		return line1 + r.tpl("eatItem", ref(m.From)).
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tItem, item).String()
	}
	switch effect.ID(m.From) {
	case "gem":
		return line1 + r.tpl("useGem", ref(m.Item)).
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tItem, item).
			Set(tMove, m.Move).String()
	case "stealeat":
		return line1 + r.tpl("removeItem", ref("Bug Bite")).
			Set(tSource, r.pokemon(m.Of)).
			Set(tItem, item).String()
	}
	if m.From != "" {
		return line1 + r.tpl("removeItem", ref(m.From)).
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tItem, item).
			Set(tSource, r.pokemon(m.Of)).String()
	}
	if m.Weaken {
		return line1 + r.tpl("activateWeaken").
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tItem, item).String()
	}
	t := r.tpl("end", ref(m.Item), nodefault)
	if t == "" {
		t = r.tpl("activateItem").Set(tItem, item)
	}
	return line1 + t.
		Set(tPokemon, r.pokemon(m.Pokemon)).
		Set(tTarget, r.pokemon(m.Of)).String()
}

func (r *Renderer) status(m protocol.Status) string {
	line1 := r.maybeAbility(m.From, or(m.Of, m.Pokemon))
	category := "start"
	if effect.ID(m.From) == "rest" {
		category = "startFromRest"
	}
	return line1 + r.tpl(category, ref(m.Status)).Set(tPokemon, r.pokemon(m.Pokemon)).String()
}

func (r *Renderer) cureStatus(m protocol.CureStatus) string {
	if effect.ID(m.From) == "naturalcure" {
		return r.tpl("activate", ref(m.From)).Set(tPokemon, r.pokemon(m.Pokemon)).String()
	}
	line1 := r.maybeAbility(m.From, or(m.Of, m.Pokemon))
	if effect.IsItem(m.From) {
		return line1 + r.tpl("endFromItem", ref(m.Status)).
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tItem, effect.Name(m.From)).String()
	}
	if m.Thaw {
		return line1 + r.tpl("endFromMove", ref(m.Status)).
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tMove, effect.Name(m.From)).String()
	}
	t := r.tpl("end", ref(m.Status), nodefault)
	if t == "" {
		t = r.tpl("end").Set(tEffect, m.Status)
	}
	return line1 + t.Set(tPokemon, r.pokemon(m.Pokemon)).String()
}

func (r *Renderer) sideCondition(m protocol.SideCondition) string {
	category, fallback := "start", "startTeamEffect"
	if m.End {
		category, fallback = "end", "endTeamEffect"
	}
	t := r.tpl(category, ref(m.Effect), nodefault)
	if t == "" {
		t = r.tpl(fallback).Set(tEffect, effect.Name(m.Effect))
	}
	return t.Set(tTeam, r.team(m.Side)).String()
}

func (r *Renderer) weather(m protocol.Weather) string {
	if m.Weather == "" || m.Weather == "none" {
		t := r.tpl("end", ref(m.From), nodefault)
		if t == "" {
			return r.tpl("endFieldEffect").Set(tEffect, effect.Name(m.Weather)).String()
		}
		return t.String()
	}
	if m.Upkeep {
		return r.tpl("upkeep", ref(m.Weather), nodefault).String()
	}
	line1 := r.maybeAbility(m.From, m.Of)
	t := r.tpl("start", ref(m.Weather), nodefault)
	if t == "" {
		t = r.tpl("startFieldEffect").Set(tEffect, effect.Name(m.Weather))
	}
	return line1 + t.String()
}

func (r *Renderer) fieldCondition(m protocol.FieldCondition) string {
	if m.Kind == "-fieldend" {
		t := r.tpl("end", ref(m.Effect), nodefault)
		if t == "" {
			t = r.tpl("endFieldEffect").Set(tEffect, effect.Name(m.Effect))
		}
		return t.String()
	}

	line1 := r.maybeAbility(m.From, m.Of)
	category := strings.TrimPrefix(m.Kind, "-field")
	if effect.ID(m.Effect) == "perishsong" {
		category = "start"
	}
	t := r.tpl(category, ref(m.Effect), nodefault)
	if t == "" {
		t = r.tpl("startFieldEffect").Set(tEffect, effect.Name(m.Effect))
	}
	return line1 + t.Set(tPokemon, r.pokemon(m.Of)).String()
}

func (r *Renderer) activate(m protocol.Activate) string {
	pokemon, target := m.Pokemon, m.Target
	id := effect.ID(m.Effect)
	if id == "celebrate" {
		return r.tpl("activate", ref("celebrate")).Set(tTrainer, r.trainer(sidePrefix(pokemon))).String()
	}
	if target == "" {
		switch id {
		case "hyperspacefury", "hyperspacehole", "phantomforce", "shadowforce", "feint":
			// The protect breaker is reported as [of]; the event pokémon is its target.
			pokemon, target = m.Of, pokemon
			if pokemon == "" {
				pokemon = target
			}
		}
	}
	if target == "" {
		target = or(m.Of, pokemon)
	}

	line1 := r.maybeAbility(m.Effect, pokemon)

	if id == "lockon" || id == "mindreader" {
		return line1 + r.tpl("start", ref(m.Effect)).
			Set(tPokemon, r.pokemon(m.Of)).
			Set(tSource, r.pokemon(pokemon)).String()
	}

	category := "activate"
	if id == "forewarn" && pokemon == target {
		category = "activateNoTarget"
	}
	t := r.tpl(category, ref(m.Effect), nodefault)
	if t == "" {
		// Abilities have no default activation text.
		if line1 != "" {
			return line1
		}
		return r.tpl("activate").Set(tEffect, effect.Name(m.Effect)).String()
	}

	if id == "brickbreak" {
		t = t.Set(tTeam, r.team(sidePrefix(target)))
	}
	line1 += r.ability(m.Ability, pokemon)
	line1 += r.ability(m.Ability2, target)
	if id == "mummy" {
		line1 += r.ability("Mummy", target)
		t = r.tpl("changeAbility", ref("Mummy"))
	}
	if m.Move != "" || m.Number != "" || m.Item != "" {
		t = t.Set(tMove, m.Move).Set(tNumber, m.Number).Set(tItem, m.Item)
	}
	return line1 + t.
		Set(tPokemon, r.pokemon(pokemon)).
		Set(tTarget, r.pokemon(target)).
		Set(tSource, r.pokemon(m.Of)).String()
}
