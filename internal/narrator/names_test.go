package narrator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battletext/internal/logging"
	"battletext/internal/protocol"
)

func TestNickname(t *testing.T) {
	r := newTestRenderer(t, Side1)
	tests := map[string]string{
		"":              "",
		"p1a: Pikachu":  "Pikachu",
		"p2: Charizard": "Charizard",
		"p1b:  Raichu ": "Raichu",
		"p3a: Mew":      "???pokemon:p3a: Mew???",
		"p1a Pikachu":   "???pokemon:p1a Pikachu???",
		"Pikachu":       "???pokemon:Pikachu???",
	}
	for in, want := range tests {
		assert.Equal(t, want, r.nickname(in), in)
	}
}

func TestPokemonPerspective(t *testing.T) {
	r1 := newTestRenderer(t, Side1)
	r2 := newTestRenderer(t, Side2)
	assert.Equal(t, "Pikachu", r1.pokemon("p1a: Pikachu"))
	assert.Equal(t, "the opposing Pikachu", r2.pokemon("p1a: Pikachu"))
	assert.Equal(t, "the opposing Eevee", r1.pokemon("p2: Eevee"))
	assert.Equal(t, "", r1.pokemon(""))
	assert.Equal(t, "???pokemon:foo???", r1.pokemon("foo"))
}

func TestFullName(t *testing.T) {
	r := newTestRenderer(t, Side1)
	side, full := r.fullName("p2a: Charizard", "Charizard, L50, M")
	assert.Equal(t, "p2", side)
	assert.Equal(t, "**Charizard**", full)

	_, full = r.fullName("p1a: Sparky", "Pikachu, L50")
	assert.Equal(t, "Sparky (**Pikachu**)", full)
}

func TestTrainerTeamStat(t *testing.T) {
	r := newTestRenderer(t, Side2)
	assert.Equal(t, DefaultPlayer1, r.trainer("p1a: Pikachu"))
	assert.Equal(t, DefaultPlayer2, r.trainer("p2"))
	assert.Equal(t, "???side:p3???", r.trainer("p3"))

	assert.Equal(t, "your team", r.team("p2"))
	assert.Equal(t, "the opposing team", r.team("p1: Ash"))

	assert.Equal(t, "Attack", r.stat("atk"))
	assert.Equal(t, "stats", r.stat(""))
	assert.Equal(t, "???stat:luck???", r.stat("luck"))
}

func TestAbilityLines(t *testing.T) {
	r := newTestRenderer(t, Side1)
	assert.Equal(t, "  [Pikachu's Static]\n", r.ability("Static", "p1a: Pikachu"))
	assert.Equal(t, "  [the opposing Gengar's Levitate]\n", r.ability("ability: Levitate", "p2a: Gengar"))
	assert.Equal(t, "", r.ability("", "p1a: Pikachu"))

	assert.Equal(t, "  [Pikachu's Lightning Rod]\n", r.maybeAbility("ability: Lightning Rod", "p1a: Pikachu"))
	assert.Equal(t, "", r.maybeAbility("item: Leftovers", "p1a: Pikachu"))
	assert.Equal(t, "", r.maybeAbility("", "p1a: Pikachu"))
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in string
		n  int
		ok bool
	}{
		{"3", 3, true},
		{" 2", 2, true},
		{"-1", -1, true},
		{"+4", 4, true},
		{"2x", 2, true},
		{"0", 0, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
	}
	for _, tt := range tests {
		got := parseCount(tt.in)
		assert.Equal(t, count{n: tt.n, ok: tt.ok}, got, tt.in)
	}

	invalid := parseCount("NaN")
	assert.False(t, invalid.atLeast(0))
	assert.False(t, invalid.below(100))
	assert.False(t, invalid.is(0))
	assert.False(t, invalid.nonZero())
}

func TestIsNumeric(t *testing.T) {
	for _, s := range []string{"", "1", " 2 ", "0.5", "-3"} {
		assert.True(t, isNumeric(s), s)
	}
	for _, s := range []string{"p1a: Pikachu", "NaN", "1a"} {
		assert.False(t, isNumeric(s), s)
	}
}

func TestUnknownReferencesAreLogged(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, logging.Initialize(dir, logging.Settings{DebugMode: true, Level: "info"}))
	t.Cleanup(func() { _ = logging.Initialize("", logging.Settings{}) })

	r := newTestRenderer(t, Side1)
	r.setPlayer(protocol.Player{Side: "p1", Name: "Ash"})
	assert.Equal(t, "???side:p3???", r.trainer("p3"))
	assert.Equal(t, "???pokemon:Pikachu???", r.pokemon("Pikachu"))
	logging.CloseAll()

	matches, err := filepath.Glob(filepath.Join(dir, "*_render.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.Contains(content, "[INFO] [req:test] player p1 is Ash"), content)
	assert.Contains(t, content, `[WARN] [req:test] unknown side "p3"`)
	assert.Contains(t, content, `unresolvable pokemon reference "Pikachu"`)
}
