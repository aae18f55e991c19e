package narrator

import (
	"battletext/internal/protocol"
)

// dispatch renders the narrative for one event. ok is false for unrecognized
// commands; recognized commands may still render "".
func (r *Renderer) dispatch(ev protocol.Event) (string, bool) {
	switch m := protocol.Decode(ev).(type) {
	case protocol.Player:
		r.setPlayer(m)
		return "", true
	case protocol.Gen:
		if r.genPinned {
			r.log.Debug("ignoring gen %s, generation pinned to %d", m.Num, r.gen.n)
			return "", true
		}
		r.gen = parseCount(m.Num)
		return "", true
	case protocol.Turn:
		return r.tpl("turn").Set(tNumber, m.Num).String() + "\n", true
	case protocol.Start:
		return r.tpl("startBattle").Set(tTrainer, r.players[0]).Set(tTrainer, r.players[1]).String(), true
	case protocol.Win:
		return r.win(m), true
	case protocol.Text:
		return m.Body + "\n", true
	case protocol.Switch:
		return r.switchIn(m), true
	case protocol.FormeChange:
		return r.formeChange(m), true
	case protocol.SwitchOut:
		return r.switchOut(m), true
	case protocol.Faint:
		return r.tpl("faint").Set(tPokemon, r.pokemon(m.Pokemon)).String(), true
	case protocol.Swap:
		return r.swap(m), true
	case protocol.Move:
		return r.move(m), true
	case protocol.Cant:
		return r.cant(m), true
	case protocol.VolatileStart:
		return r.volatileStart(m), true
	case protocol.VolatileEnd:
		return r.volatileEnd(m), true
	case protocol.SingleEffect:
		return r.singleEffect(m), true
	case protocol.Ability:
		return r.abilityEvent(m), true
	case protocol.EndAbility:
		return r.endAbility(m), true
	case protocol.Item:
		return r.item(m), true
	case protocol.EndItem:
		return r.endItem(m), true
	case protocol.Status:
		return r.status(m), true
	case protocol.CureStatus:
		return r.cureStatus(m), true
	case protocol.CureTeam:
		return r.tpl("activate", ref(m.From)).String(), true
	case protocol.SideCondition:
		return r.sideCondition(m), true
	case protocol.Weather:
		return r.weather(m), true
	case protocol.FieldCondition:
		return r.fieldCondition(m), true
	case protocol.SetHP:
		return r.tpl("activate", ref(m.From)).String(), true
	case protocol.Notice:
		if m.Hint {
			return "  (" + m.Text + ")\n", true
		}
		return "  " + m.Text + "\n", true
	case protocol.Activate:
		return r.activate(m), true
	case protocol.Prepare:
		return r.tpl("prepare", ref(m.Effect)).
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tTarget, r.pokemon(m.Target)).String(), true
	case protocol.Damage:
		return r.damage(m), true
	case protocol.Heal:
		return r.heal(m), true
	case protocol.Boost:
		return r.boost(m), true
	case protocol.SetBoost:
		return r.setBoost(m), true
	case protocol.BoostTransfer:
		return r.boostTransfer(m), true
	case protocol.ClearBoost:
		return r.clearBoost(m), true
	case protocol.InvertBoost:
		line1 := r.maybeAbility(m.From, or(m.Of, m.Pokemon))
		return line1 + r.tpl("invertBoost", ref(m.From)).Set(tPokemon, r.pokemon(m.Pokemon)).String(), true
	case protocol.ClearAllBoost:
		return r.tpl("clearAllBoost", ref(m.From)).String(), true
	case protocol.Effectiveness:
		return r.effectiveness(m), true
	case protocol.Block:
		line1 := r.maybeAbility(m.Effect, or(m.Of, m.Pokemon))
		return line1 + r.tpl("block", ref(m.Effect)).
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tMove, m.Move).String(), true
	case protocol.Fail:
		return r.fail(m), true
	case protocol.Immune:
		return r.immune(m), true
	case protocol.Miss:
		return r.miss(m), true
	case protocol.Announcement:
		return r.announcement(m), true
	case protocol.Mega:
		return r.mega(m), true
	case protocol.ZPower:
		return r.tpl("zPower").Set(tPokemon, r.pokemon(m.Pokemon)).String(), true
	case protocol.Burst:
		return r.tpl("activate", ref("Ultranecrozium Z")).Set(tPokemon, r.pokemon(m.Pokemon)).String(), true
	case protocol.ZBroken:
		return r.tpl("zBroken").Set(tPokemon, r.pokemon(m.Pokemon)).String(), true
	case protocol.HitCount:
		if m.Num == "1" {
			return r.tpl("hitCountSingular").String(), true
		}
		return r.tpl("hitCount").Set(tNumber, m.Num).String(), true
	case protocol.Waiting:
		return r.tpl("activate", ref("Water Pledge")).
			Set(tPokemon, r.pokemon(m.Pokemon)).
			Set(tTarget, r.pokemon(m.Target)).String(), true
	case protocol.Anim:
		return "", true
	}
	return "", false
}
