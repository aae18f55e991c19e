package narrator

import (
	"battletext/internal/effect"
	"battletext/internal/protocol"
)

// Phase is the coarse narrative position of an event.
type Phase string

const (
	// PhaseNone means the event does not touch the phase.
	PhaseNone      Phase = ""
	PhaseBreak     Phase = "break"
	PhasePreMajor  Phase = "preMajor"
	PhaseMajor     Phase = "major"
	PhasePostMajor Phase = "postMajor"
)

// Classify maps an event to its phase.
func Classify(ev protocol.Event) Phase {
	switch ev.Command {
	case "done", "turn":
		return PhaseBreak
	case "move", "cant", "switch", "drag", "upkeep", "start", "-mega":
		return PhaseMajor
	case "switchout", "faint":
		return PhasePreMajor
	case "-zpower":
		return PhasePostMajor
	case "-damage":
		if effect.ID(ev.KW.Get("from")) == "confusion" {
			return PhaseMajor
		}
		return PhasePostMajor
	case "-curestatus":
		if effect.ID(ev.KW.Get("from")) == "naturalcure" {
			return PhasePreMajor
		}
		return PhasePostMajor
	case "-start":
		if effect.ID(ev.KW.Get("from")) == "protean" {
			return PhasePreMajor
		}
		return PhasePostMajor
	case "-activate":
		if id := effect.ID(ev.Arg(1)); id == "confusion" || id == "attract" {
			return PhasePreMajor
		}
		return PhasePostMajor
	}
	if ev.IsMinor() {
		return PhasePostMajor
	}
	return PhaseNone
}

// BreaksBefore reports whether moving from prev to cur starts a new paragraph.
func BreaksBefore(prev, cur Phase) bool {
	switch cur {
	case PhaseBreak:
		return prev != PhaseBreak
	case PhasePreMajor, PhaseMajor:
		return prev == PhasePostMajor || prev == PhaseMajor
	}
	return false
}

func (r *Renderer) sectionBreak(ev protocol.Event) bool {
	cur := Classify(ev)
	if cur == PhaseNone {
		return false
	}
	prev := r.phase
	r.phase = cur
	return BreaksBefore(prev, cur)
}
