package protocol

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		raw  string
		want Message
	}{
		{"|player|p1|Ash", Player{Side: "p1", Name: "Ash"}},
		{"|turn|4", Turn{Num: "4"}},
		{"|tie", Win{Tie: true}},
		{"|drag|p2a: Mew|Mew, L50", Switch{Pokemon: "p2a: Mew", Details: "Mew, L50", Drag: true}},
		{
			"|move|p1a: Pikachu|Thunderbolt|p2a: Charizard|[from] ability: Dancer|[zeffect]",
			Move{Pokemon: "p1a: Pikachu", Move: "Thunderbolt", Target: "p2a: Charizard", ZEffect: true, Cause: Cause{From: "ability: Dancer"}},
		},
		{
			"|-damage|p2a: Charizard|50/100|[from] item: Life Orb",
			Damage{Pokemon: "p2a: Charizard", Cause: Cause{From: "item: Life Orb"}},
		},
		{
			"|-boost|p1a: Pikachu|atk|3",
			Boost{Kind: "-boost", Pokemon: "p1a: Pikachu", Stat: "atk", Amount: "3"},
		},
		{"|-hitcount|p2a: Mew|3", HitCount{Num: "3"}},
		{"|-sideend|p1: Ash|Reflect", SideCondition{Side: "p1: Ash", Effect: "Reflect", End: true}},
		{"|-anim|p1a: A|Tackle|p2a: B", Anim{}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Decode(ParseLine(tt.raw))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestDecodeUnknown(t *testing.T) {
	assert.Nil(t, Decode(ParseLine("|chat|someone|hi")))
	assert.Nil(t, Decode(ParseLine("")))
	assert.Nil(t, Decode(ParseLine("|-notacommand|x")))
}

func TestDecodeCommandRoundTrip(t *testing.T) {
	for _, cmd := range []string{
		"switch", "drag", "win", "tie", "-sidestart", "-sideend", "-message", "-hint",
		"-crit", "-resisted", "-mega", "-primal", "-fieldactivate", "-singlemove",
		"-copyboost", "-clearnegativeboost", "-unboost", "detailschange", "-center",
	} {
		msg := Decode(NewEvent(cmd, nil, nil))
		if assert.NotNil(t, msg, cmd) {
			assert.Equal(t, cmd, msg.Command())
		}
	}
}
