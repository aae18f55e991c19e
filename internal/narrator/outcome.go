package narrator

import (
	"battletext/internal/effect"
	"battletext/internal/protocol"
)

func (r *Renderer) fail(m protocol.Fail) string {
	pokemon := m.Pokemon
	id := effect.ID(m.Effect)
	blocker := effect.ID(m.From)
	line1 := r.maybeAbility(m.From, or(m.Of, pokemon))

	category := "block"
	switch {
	case (blocker == "desolateland" || blocker == "primordialsea") && !isWeatherMove(id):
		category = "blockMove"
	case blocker == "uproar" && m.HasMsg:
		category = "blockSelf"
	}
	if t := r.tpl(category, ref(m.From)); t != "" {
		return line1 + t.Set(tPokemon, r.pokemon(pokemon)).String()
	}

	if id == "unboost" {
		category = "fail"
		if m.Stat != "" {
			category = "failSingular"
		}
		t := r.tpl(category, ref("unboost"))
		if blocker == "flowerveil" {
			t = r.tpl("block", ref(m.From))
			pokemon = m.Of
		}
		return line1 + t.Set(tPokemon, r.pokemon(pokemon)).Set(tStat, m.Stat).String()
	}

	category = "fail"
	switch id {
	case "brn", "frz", "par", "psn", "slp", "substitute":
		category = "alreadyStarted"
	}
	if m.Heavy {
		category = "failTooHeavy"
	}
	if m.Weak {
		category = "fail"
	}
	if m.Forme {
		category = "failWrongForme"
	}
	return line1 + r.tpl(category, ref(id)).Set(tPokemon, r.pokemon(pokemon)).String()
}

func isWeatherMove(id string) bool {
	switch id {
	case "sunnyday", "raindance", "sandstorm", "hail":
		return true
	}
	return false
}

func (r *Renderer) immune(m protocol.Immune) string {
	line1 := r.maybeAbility(m.From, or(m.Of, m.Pokemon))
	t := r.tpl("block", ref(m.From))
	if t == "" {
		category := "immune"
		if m.OHKO {
			category = "immuneOHKO"
		}
		if m.Pokemon == "" {
			category = "immuneNoPokemon"
		}
		t = r.tpl(category, ref(m.From))
	}
	return line1 + t.Set(tPokemon, r.pokemon(m.Pokemon)).String()
}

func (r *Renderer) miss(m protocol.Miss) string {
	line1 := r.maybeAbility(m.From, or(m.Of, m.Pokemon))
	if m.Pokemon == "" {
		return line1 + r.tpl("missNoPokemon").Set(tSource, r.pokemon(m.Source)).String()
	}
	return line1 + r.tpl("miss").Set(tPokemon, r.pokemon(m.Pokemon)).String()
}
