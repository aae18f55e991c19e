package narrator

import (
	"strings"

	"battletext/internal/effect"
	"battletext/internal/protocol"
)

func (r *Renderer) setPlayer(m protocol.Player) {
	if m.Name == "" {
		return
	}
	switch m.Side {
	case "p1":
		r.players[0] = m.Name
	case "p2":
		r.players[1] = m.Name
	default:
		return
	}
	r.log.Info("player %s is %s", m.Side, m.Name)
}

func (r *Renderer) win(m protocol.Win) string {
	if m.Tie || m.Name == "" {
		return r.tpl("tieBattle").Set(tTrainer, r.players[0]).Set(tTrainer, r.players[1]).String()
	}
	return r.tpl("winBattle").Set(tTrainer, m.Name).String()
}

func (r *Renderer) switchIn(m protocol.Switch) string {
	side, full := r.fullName(m.Pokemon, m.Details)
	t := r.tpl("drag")
	if !m.Drag {
		t = r.tpl("switchIn", r.own(side))
	}
	return t.Set(tTrainer, r.trainer(side)).Set(tFullName, full).String()
}

// transformations maps a resulting species to the ability announcing it. The
// reverted base forms use the transformEnd category instead.
var transformations = map[string]struct {
	ability string
	revert  bool
}{
	"greninjaash":      {ability: "battlebond"},
	"mimikyubusted":    {ability: "disguise"},
	"zygardecomplete":  {ability: "powerconstruct"},
	"necrozmaultra":    {ability: "ultranecroziumz"},
	"darmanitanzen":    {ability: "zenmode"},
	"darmanitan":       {ability: "zenmode", revert: true},
	"aegislashblade":   {ability: "stancechange"},
	"aegislash":        {ability: "stancechange", revert: true},
	"wishiwashischool": {ability: "schooling"},
	"wishiwashi":       {ability: "schooling", revert: true},
	"miniormeteor":     {ability: "shieldsdown"},
	"minior":           {ability: "shieldsdown", revert: true},
}

func (r *Renderer) formeChange(m protocol.FormeChange) string {
	var species string
	switch m.Kind {
	case "detailschange":
		species, _, _ = strings.Cut(m.Arg2, ",")
		species = strings.TrimSpace(species)
	case "-transform":
		species = m.Arg3
	case "-formechange":
		species = m.Arg2
	}

	id, category := "", "transform"
	if m.Kind != "-transform" {
		if t, ok := transformations[effect.ToID(species)]; ok {
			id = t.ability
			if t.revert {
				category = "transformEnd"
			}
		}
	} else if species != "" {
		id = "transform"
	}

	fallback := nodefault
	if m.HasMsg {
		fallback = ref("")
	}
	line1 := r.maybeAbility(m.From, or(m.Of, m.Pokemon))
	return line1 + r.tpl(category, ref(id), fallback).
		Set(tPokemon, r.pokemon(m.Pokemon)).
		Set(tSpecies, species).String()
}

func (r *Renderer) switchOut(m protocol.SwitchOut) string {
	side := sidePrefix(m.Pokemon)
	return r.tpl("switchOut", ref(m.From), r.own(side)).
		Set(tTrainer, r.trainer(side)).
		Set(tNickname, r.nickname(m.Pokemon)).
		Set(tPokemon, r.pokemon(m.Pokemon)).String()
}

func (r *Renderer) swap(m protocol.Swap) string {
	if isNumeric(m.Target) {
		return r.tpl("swapCenter").Set(tPokemon, r.pokemon(m.Pokemon)).String()
	}
	return r.tpl("swap").
		Set(tPokemon, r.pokemon(m.Pokemon)).
		Set(tTarget, r.pokemon(m.Target)).String()
}

func (r *Renderer) move(m protocol.Move) string {
	line1 := r.maybeAbility(m.From, or(m.Of, m.Pokemon))
	if m.ZEffect {
		line1 = r.tpl("zEffect").Set(tPokemon, r.pokemon(m.Pokemon)).String()
	}
	return line1 + r.tpl("move", ref(m.From)).
		Set(tPokemon, r.pokemon(m.Pokemon)).
		Set(tMove, m.Move).String()
}

func (r *Renderer) cant(m protocol.Cant) string {
	pokemon, of := m.Pokemon, m.Of
	switch effect.ID(m.Effect) {
	case "damp", "dazzling", "queenlymajesty":
		// The event names the blocked user as [of]; narrate from its side.
		pokemon, of = of, pokemon
	}
	t := r.tpl("cant", ref(m.Effect), nodefault)
	if t == "" {
		category := "cantNoMove"
		if m.Move != "" {
			category = "cant"
		}
		t = r.tpl(category)
	}
	line1 := r.maybeAbility(m.Effect, or(of, pokemon))
	return line1 + t.Set(tPokemon, r.pokemon(pokemon)).Set(tMove, m.Move).String()
}

func (r *Renderer) mega(m protocol.Mega) string {
	isMega := m.Kind == "-mega"
	id, category := "", strings.TrimPrefix(m.Kind, "-")
	if m.Species == "Rayquaza" {
		id = "dragonascent"
		category = "megaNoItem"
	}
	if id == "" && isMega && r.gen.below(7) {
		category = "megaGen6"
	}
	if m.Item == "" && isMega {
		category = "megaNoItem"
	}

	name := r.pokemon(m.Pokemon)
	t := r.tpl(category)
	if isMega {
		t += r.tpl("transformMega").Set(tPokemon, name).Set(tSpecies, m.Species)
	}
	return t.Set(tPokemon, name).
		Set(tItem, m.Item).
		Set(tTrainer, r.trainer(sidePrefix(m.Pokemon))).String()
}

func (r *Renderer) announcement(m protocol.Announcement) string {
	if m.Kind == "-notarget" {
		return r.tpl("noTarget").String()
	}
	return r.tpl(strings.TrimPrefix(m.Kind, "-")).String()
}

func (r *Renderer) effectiveness(m protocol.Effectiveness) string {
	category := strings.TrimPrefix(m.Kind, "-")
	if category == "supereffective" {
		category = "superEffective"
	}
	if m.Spread {
		category += "Spread"
	}
	return r.tpl(category).Set(tPokemon, r.pokemon(m.Pokemon)).String()
}
