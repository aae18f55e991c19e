package narrator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	r := newTestRenderer(t, Side2)
	assert.Equal(t, Side2, r.Perspective())
	assert.Equal(t, DefaultPlayer1, r.Player(Side1))
	assert.Equal(t, DefaultPlayer2, r.Player(Side2))
	gen, ok := r.Generation()
	assert.True(t, ok)
	assert.Equal(t, LatestGeneration, gen)
	assert.Equal(t, PhaseBreak, r.Phase())
	assert.Equal(t, "test", r.RunID())

	assert.NotEmpty(t, New(embeddedStore(t), Side1).RunID())
}

func TestPlayersAndTurn(t *testing.T) {
	r := newTestRenderer(t, Side1)
	assert.Equal(t, "", r.ConsumeEvent(line("|player|p1|Ash"), false))
	assert.Equal(t, "", r.ConsumeEvent(line("|player|p2|Gary"), false))
	assert.Equal(t, "Ash", r.Player(Side1))
	assert.Equal(t, "Gary", r.Player(Side2))

	// The stream starts in the break phase, so the first turn adds no break.
	assert.Equal(t, "== Turn 1 ==\n\n", r.ConsumeEvent(line("|turn|1"), false))

	// An empty name keeps the earlier one.
	r.ConsumeEvent(line("|player|p1|"), false)
	assert.Equal(t, "Ash", r.Player(Side1))
}

func TestMoveOwnPokemon(t *testing.T) {
	r := newTestRenderer(t, Side1)
	got := r.ConsumeEvent(line("|move|p1a: Pikachu|Thunderbolt|p2a: Charizard"), false)
	assert.Equal(t, "Pikachu used **Thunderbolt**!\n", got)
}

func TestMoveOpposingPokemonIsCapitalized(t *testing.T) {
	r := newTestRenderer(t, Side2)
	got := r.ConsumeEvent(line("|move|p1a: Pikachu|Thunderbolt|p2a: Charizard"), false)
	assert.Equal(t, "The opposing Pikachu used **Thunderbolt**!\n", got)
}

func TestDamageFromItemTemplate(t *testing.T) {
	r := newTestRenderer(t, Side1)
	got := r.ConsumeEvent(line("|-damage|p2a: Charizard|50/100|[from] item: Life Orb"), false)
	assert.Equal(t, "  The opposing Charizard lost some of its HP!\n", got)
}

func TestBoostByThree(t *testing.T) {
	r := newTestRenderer(t, Side1)
	got := r.ConsumeEvent(line("|-boost|p1a: Pikachu|atk|3"), false)
	assert.Equal(t, "  Pikachu's Attack rose drastically!\n", got)
}

func TestConsumeBattle(t *testing.T) {
	buf := "|player|p1|Ash\n" +
		"|player|p2|Gary\n" +
		"|start\n" +
		"|switch|p1a: Pikachu|Pikachu, L50|100/100\n" +
		"|switch|p2a: Charizard|Charizard, L50, M|100/100\n" +
		"|turn|1\n" +
		"|move|p1a: Pikachu|Thunderbolt|p2a: Charizard\n" +
		"|-supereffective|p2a: Charizard\n" +
		"|-damage|p2a: Charizard|0 fnt\n" +
		"|faint|p2a: Charizard\n"

	want := "Battle started between Ash and Gary!\n" +
		"\nGo! **Pikachu**!\n" +
		"\nGary sent out **Charizard**!\n" +
		"\n== Turn 1 ==\n\n" +
		"Pikachu used **Thunderbolt**!\n" +
		"  It's super effective!\n" +
		"  (The opposing Charizard was hurt!)\n" +
		"\nThe opposing Charizard fainted!\n"

	r := newTestRenderer(t, Side1)
	if diff := cmp.Diff(want, r.Consume(buf)); diff != "" {
		t.Errorf("Consume() mismatch (-want +got):\n%s", diff)
	}
}

func TestConsumePerspectives(t *testing.T) {
	buf := "|switch|p1a: Sparky|Pikachu, L50|100/100\n|switch|p2a: Charizard|Charizard|100/100"

	p1 := newTestRenderer(t, Side1).Consume(buf)
	p2 := newTestRenderer(t, Side2).Consume(buf)
	assert.Equal(t, "Go! Sparky (**Pikachu**)!\n\nPlayer 2 sent out **Charizard**!\n", p1)
	assert.Equal(t, "Player 1 sent out Sparky (**Pikachu**)!\n\nGo! **Charizard**!\n", p2)
}

func TestConsumeEventDeterministic(t *testing.T) {
	events := []string{
		"|move|p2a: Charizard|Flamethrower|p1a: Pikachu",
		"|-activate|p1a: Pikachu|ability: Mummy",
		"|-boost|p1a: Pikachu|spe|2|[from] item: Salac Berry",
		"|-sidestart|p2: Gary|move: Stealth Rock",
	}
	for _, raw := range events {
		a := newTestRenderer(t, Side1).ConsumeEvent(line(raw), true)
		b := newTestRenderer(t, Side1).ConsumeEvent(line(raw), true)
		assert.Equal(t, a, b, raw)
	}
}

func TestNoSectionBreakLeavesPhase(t *testing.T) {
	r := newTestRenderer(t, Side1)
	r.ConsumeEvent(line("|move|p1a: Pikachu|Tackle"), false)
	assert.Equal(t, PhaseMajor, r.Phase())

	got := r.ConsumeEvent(line("|turn|2"), true)
	assert.Equal(t, "== Turn 2 ==\n\n", got)
	assert.Equal(t, PhaseMajor, r.Phase())
}

func TestRenderReportsUnrecognized(t *testing.T) {
	r := newTestRenderer(t, Side1)

	text, ok := r.Render(line("|bogus|x"), false)
	assert.False(t, ok)
	assert.Equal(t, "", text)

	text, ok = r.Render(line("|-anim|p1a: Pikachu|Thunderbolt|p2a: Charizard"), false)
	assert.True(t, ok)
	assert.Equal(t, "", text)

	text, ok = r.Render(line(""), false)
	assert.False(t, ok)
	assert.Equal(t, "", text)
	assert.Equal(t, PhasePostMajor, r.Phase(), "blank line leaves the phase alone")

	// done is unrecognized for rendering but still closes the paragraph.
	text, ok = r.Render(line("|done"), false)
	assert.False(t, ok)
	assert.Equal(t, "\n", text)
}

func TestLonePipeBreaksLikeDone(t *testing.T) {
	r := newTestRenderer(t, Side1)
	r.ConsumeEvent(line("|move|p1a: Pikachu|Thunderbolt|p2a: Charizard"), false)

	assert.Equal(t, "\n", r.ConsumeEvent(line("|"), false))
	assert.Equal(t, PhaseBreak, r.Phase())
	assert.Equal(t, "", r.ConsumeEvent(line("|"), false), "a second break adds nothing")
}

func TestGenerationEvents(t *testing.T) {
	r := newTestRenderer(t, Side1)
	r.ConsumeEvent(line("|gen|1"), false)
	assert.Equal(t, "  Snorlax's Special rose!\n", r.ConsumeEvent(line("|-boost|p1a: Snorlax|spa|1"), true))

	r.ConsumeEvent(line("|gen|abc"), false)
	_, ok := r.Generation()
	assert.False(t, ok)
	assert.Equal(t, "  Snorlax's Sp. Atk rose!\n", r.ConsumeEvent(line("|-boost|p1a: Snorlax|spa|1"), true))
}

func TestWithGeneration(t *testing.T) {
	r := newTestRenderer(t, Side1, WithGeneration(6))
	got := r.ConsumeEvent(line("|-mega|p1a: Charizard|Charizard|Charizardite X"), true)
	assert.Equal(t, "  Charizard's Charizardite X is reacting to Player 1's Mega Bracelet!\n"+
		"Charizard has Mega Evolved into Mega Charizard!\n", got)
}

func TestWithGenerationIgnoresGenEvents(t *testing.T) {
	r := newTestRenderer(t, Side1, WithGeneration(6))
	assert.Equal(t, "", r.ConsumeEvent(line("|gen|7"), false))

	gen, ok := r.Generation()
	assert.True(t, ok)
	assert.Equal(t, 6, gen)

	got := r.ConsumeEvent(line("|-mega|p1a: Charizard|Charizard|Charizardite X"), true)
	assert.Contains(t, got, "Mega Bracelet")
}
