package present

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battletext/internal/config"
)

const narrative = "\n== Turn 1 ==\n\nGo! Pikachu!\nPikachu used **Thunderbolt**!\n  (The opposing Charizard lost 50% of its health!)\n"

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestPlainStripsEmphasis(t *testing.T) {
	p, err := New(config.FormatPlain, Options{})
	require.NoError(t, err)

	out, err := p.Present(narrative)
	require.NoError(t, err)

	assert.NotContains(t, out, "**")
	assert.Contains(t, out, "Pikachu used Thunderbolt!\n")
	assert.Equal(t, "=== Player 1 ===\n", p.Header("Player 1"))
}

func TestMarkdownPassesThrough(t *testing.T) {
	p, err := New(config.FormatMarkdown, Options{})
	require.NoError(t, err)

	out, err := p.Present(narrative)
	require.NoError(t, err)

	assert.Equal(t, narrative, out)
	assert.Equal(t, "## Player 2\n\n", p.Header("Player 2"))
}

func TestANSIRendersText(t *testing.T) {
	p, err := New(config.FormatANSI, Options{WordWrap: 120, Style: "dark"})
	require.NoError(t, err)

	out, err := p.Present(narrative)
	require.NoError(t, err)

	stripped := ansiEscape.ReplaceAllString(out, "")
	assert.Contains(t, stripped, "Thunderbolt")
	assert.Contains(t, stripped, "Pikachu")
	assert.NotContains(t, stripped, "**Thunderbolt**")
}

func TestANSIEmptyText(t *testing.T) {
	p, err := New(config.FormatANSI, Options{})
	require.NoError(t, err)

	out, err := p.Present("\n")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestUnknownFormat(t *testing.T) {
	_, err := New("html", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestStripEmphasis(t *testing.T) {
	assert.Equal(t, "Ash won the battle!", StripEmphasis("**Ash** won the battle!"))
	assert.Equal(t, "no marks", StripEmphasis("no marks"))
}
