package protocol

// Message is a decoded protocol event. Each recognized command maps to exactly
// one variant; commands that share a narrative rule share a variant and carry
// the command in a Kind field.
type Message interface {
	Command() string
}

// Cause holds the [from] and [of] keyword arguments shared by most minor
// events: the triggering effect and the pokémon it belongs to.
type Cause struct {
	From string
	Of   string
}

func causeOf(ev Event) Cause {
	return Cause{From: ev.KW.Get("from"), Of: ev.KW.Get("of")}
}

// Battle setup and flow.

type Player struct{ Side, Name string }
type Gen struct{ Num string }
type Turn struct{ Num string }
type Start struct{}

// Win also covers tie; Tie is set for the tie command.
type Win struct {
	Name string
	Tie  bool
}

// Text is a major free-text message.
type Text struct{ Body string }

// Switch covers switch (Drag false) and drag (Drag true).
type Switch struct {
	Pokemon, Details string
	Drag             bool
}

// FormeChange covers detailschange, -transform and -formechange.
type FormeChange struct {
	Kind       string
	Pokemon    string
	Arg2, Arg3 string
	HasMsg     bool
	Cause
}

type SwitchOut struct {
	Pokemon string
	Cause
}

type Faint struct{ Pokemon string }
type Swap struct{ Pokemon, Target string }

type Move struct {
	Pokemon, Move, Target string
	ZEffect               bool
	Cause
}

type Cant struct {
	Pokemon, Effect, Move string
	Of                    string
}

// Volatile effects.

type VolatileStart struct {
	Pokemon, Effect, Arg3 string
	Already, Fatigue      bool
	ZEffect, Damage       bool
	Block, Upkeep         bool
	Cause
}

type VolatileEnd struct {
	Pokemon, Effect string
	Cause
}

// SingleEffect covers -singleturn and -singlemove.
type SingleEffect struct {
	Kind            string
	Pokemon, Effect string
	Cause
}

// Abilities and items.

type Ability struct {
	Pokemon, Ability, OldAbility, Arg4 string
	Fail                               bool
	Cause
}

type EndAbility struct {
	Pokemon, Ability string
	Cause
}

type Item struct {
	Pokemon, Item string
	Cause
}

type EndItem struct {
	Pokemon, Item string
	Move          string
	Eat, Weaken   bool
	Cause
}

// Status conditions.

type Status struct {
	Pokemon, Status string
	Cause
}

type CureStatus struct {
	Pokemon, Status string
	Thaw            bool
	Cause
}

type CureTeam struct{ Cause }

// Side and field conditions.

// SideCondition covers -sidestart (End false) and -sideend (End true).
type SideCondition struct {
	Side, Effect string
	End          bool
}

type Weather struct {
	Weather string
	Upkeep  bool
	Cause
}

// FieldCondition covers -fieldstart, -fieldactivate and -fieldend.
type FieldCondition struct {
	Kind   string
	Effect string
	Cause
}

type SetHP struct{ Cause }

// Free text.

// Notice covers -message (Hint false) and -hint (Hint true).
type Notice struct {
	Text string
	Hint bool
}

// Activations.

type Activate struct {
	Pokemon, Effect, Target string
	Ability, Ability2       string
	Move, Number, Item      string
	Of                      string
}

type Prepare struct{ Pokemon, Effect, Target string }

// HP changes.

type Damage struct {
	Pokemon, Percentage string
	PartiallyTrapped    bool
	Cause
}

type Heal struct {
	Pokemon string
	Wisher  string
	Cause
}

// Stat stages.

// Boost covers -boost and -unboost. Amount is kept raw so that a malformed
// count simply falls below every threshold.
type Boost struct {
	Kind                  string
	Pokemon, Stat, Amount string
	ZEffect, Multiple     bool
	Cause
}

type SetBoost struct {
	Pokemon string
	Cause
}

// BoostTransfer covers -swapboost and -copyboost.
type BoostTransfer struct {
	Kind            string
	Pokemon, Target string
	Cause
}

// ClearBoost covers -clearboost, -clearpositiveboost and -clearnegativeboost.
type ClearBoost struct {
	Kind            string
	Pokemon, Source string
	ZEffect         bool
	Cause
}

type InvertBoost struct {
	Pokemon string
	Cause
}

type ClearAllBoost struct{ Cause }

// Move outcomes.

// Effectiveness covers -crit, -supereffective and -resisted.
type Effectiveness struct {
	Kind    string
	Pokemon string
	Spread  bool
}

type Block struct {
	Pokemon, Effect, Move string
	Of                    string
}

type Fail struct {
	Pokemon, Effect, Stat      string
	HasMsg, Heavy, Weak, Forme bool
	Cause
}

type Immune struct {
	Pokemon string
	OHKO    bool
	Cause
}

type Miss struct {
	Source, Pokemon string
	Cause
}

// Announcement covers -center, -ohko, -combine and -notarget.
type Announcement struct{ Kind string }

// Mega evolution, primal reversion and Z-power.

// Mega covers -mega and -primal.
type Mega struct {
	Kind                   string
	Pokemon, Species, Item string
}

type ZPower struct{ Pokemon string }
type Burst struct{ Pokemon string }
type ZBroken struct{ Pokemon string }

type HitCount struct{ Num string }
type Waiting struct{ Pokemon, Target string }

// Anim is an animation-only event: recognized, deliberately silent.
type Anim struct{}

func (Player) Command() string           { return "player" }
func (Gen) Command() string              { return "gen" }
func (Turn) Command() string             { return "turn" }
func (Start) Command() string            { return "start" }
func (m Win) Command() string            { return pick(m.Tie, "tie", "win") }
func (Text) Command() string             { return "message" }
func (m Switch) Command() string         { return pick(m.Drag, "drag", "switch") }
func (m FormeChange) Command() string    { return m.Kind }
func (SwitchOut) Command() string        { return "switchout" }
func (Faint) Command() string            { return "faint" }
func (Swap) Command() string             { return "swap" }
func (Move) Command() string             { return "move" }
func (Cant) Command() string             { return "cant" }
func (VolatileStart) Command() string    { return "-start" }
func (VolatileEnd) Command() string      { return "-end" }
func (m SingleEffect) Command() string   { return m.Kind }
func (Ability) Command() string          { return "-ability" }
func (EndAbility) Command() string       { return "-endability" }
func (Item) Command() string             { return "-item" }
func (EndItem) Command() string          { return "-enditem" }
func (Status) Command() string           { return "-status" }
func (CureStatus) Command() string       { return "-curestatus" }
func (CureTeam) Command() string         { return "-cureteam" }
func (m SideCondition) Command() string  { return pick(m.End, "-sideend", "-sidestart") }
func (Weather) Command() string          { return "-weather" }
func (m FieldCondition) Command() string { return m.Kind }
func (SetHP) Command() string            { return "-sethp" }
func (m Notice) Command() string         { return pick(m.Hint, "-hint", "-message") }
func (Activate) Command() string         { return "-activate" }
func (Prepare) Command() string          { return "-prepare" }
func (Damage) Command() string           { return "-damage" }
func (Heal) Command() string             { return "-heal" }
func (m Boost) Command() string          { return m.Kind }
func (SetBoost) Command() string         { return "-setboost" }
func (m BoostTransfer) Command() string  { return m.Kind }
func (m ClearBoost) Command() string     { return m.Kind }
func (InvertBoost) Command() string      { return "-invertboost" }
func (ClearAllBoost) Command() string    { return "-clearallboost" }
func (m Effectiveness) Command() string  { return m.Kind }
func (Block) Command() string            { return "-block" }
func (Fail) Command() string             { return "-fail" }
func (Immune) Command() string           { return "-immune" }
func (Miss) Command() string             { return "-miss" }
func (m Announcement) Command() string   { return m.Kind }
func (m Mega) Command() string           { return m.Kind }
func (ZPower) Command() string           { return "-zpower" }
func (Burst) Command() string            { return "-burst" }
func (ZBroken) Command() string          { return "-zbroken" }
func (HitCount) Command() string         { return "-hitcount" }
func (Waiting) Command() string          { return "-waiting" }
func (Anim) Command() string             { return "-anim" }

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
