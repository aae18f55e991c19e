package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testStore() *Store {
	return FromMap(map[string]map[string]string{
		Default: {
			"damage":       "  [POKEMON] was hurt!",
			"switchIn":     "[TRAINER] sent out [FULLNAME]!",
			"switchInOwn":  "Go! [FULLNAME]!",
			"start":        "  [EFFECT] started.",
			"aliasDefault": ".damage",
		},
		"lifeorb": {
			"damage": "  [POKEMON] lost some of its HP!",
		},
		"rest": {
			"heal":   "",
			"damage": "",
		},
		"kingsshield": {
			"start": "#protect",
		},
		"protect": {
			"start":    "  [POKEMON] protected itself!",
			"activate": ".start",
		},
		"ironbarbs": {
			"damage": ".hurt",
			"hurt":   "  [POKEMON] was hurt by the barbs!",
		},
		"dangling": {
			"damage": ".nothing",
		},
	})
}

func TestResolveDefaultFallback(t *testing.T) {
	s := testStore()
	assert.Equal(t, "  [POKEMON] was hurt!\n", s.Resolve("damage"))
	assert.Equal(t, "  [POKEMON] was hurt!\n", s.Resolve("damage", Ref("item: Leftovers")))
	assert.Equal(t, "", s.Resolve("missing"))
}

func TestResolveNamespaceMatch(t *testing.T) {
	s := testStore()
	assert.Equal(t, "  [POKEMON] lost some of its HP!\n", s.Resolve("damage", Ref("item: Life Orb")))
	assert.Equal(t, "  [POKEMON] lost some of its HP!\n", s.Resolve("damage", Ref(""), Ref("Life Orb")))
}

func TestResolveSuppression(t *testing.T) {
	s := testStore()
	// The default namespace holds damage, but rest suppresses it.
	assert.Equal(t, "", s.Resolve("damage", Ref("move: Rest")))
	assert.Equal(t, "", s.Resolve("damage", Ref("Rest"), Ref("Life Orb")))
}

func TestResolveRedirects(t *testing.T) {
	s := testStore()
	assert.Equal(t, s.Resolve("start", Ref("protect")), s.Resolve("activate", Ref("protect")))
	assert.Equal(t, "  [POKEMON] protected itself!\n", s.Resolve("start", Ref("move: King's Shield")))
	assert.Equal(t, "  [POKEMON] was hurt by the barbs!\n", s.Resolve("damage", Ref("ability: Iron Barbs")))
	assert.Equal(t, "  [POKEMON] was hurt!\n", s.Resolve("aliasDefault"))
	assert.Equal(t, "", s.Resolve("damage", Ref("dangling")), "dangling redirect resolves as suppressed")
}

func TestResolveRedirectMatchesDirectLookup(t *testing.T) {
	s := testStore()
	assert.Equal(t, s.Resolve("hurt", Ref("ironbarbs"), NoDefault), s.Resolve("damage", Ref("ironbarbs")))
}

func TestResolveSentinels(t *testing.T) {
	s := testStore()
	assert.Equal(t, "Go! [FULLNAME]!\n", s.Resolve("switchIn", Own))
	assert.Equal(t, "[TRAINER] sent out [FULLNAME]!\n", s.Resolve("switchIn", Ref("")))
	assert.Equal(t, "", s.Resolve("switchOut", Own), "missing Own variant")
	assert.Equal(t, "", s.Resolve("damage", NoDefault))
	assert.Equal(t, "", s.Resolve("damage", Ref("Leftovers"), NoDefault))
	assert.Equal(t, "  [POKEMON] lost some of its HP!\n", s.Resolve("damage", Ref("Life Orb"), NoDefault))
}

func TestParseNamespace(t *testing.T) {
	assert.Equal(t, Own, ParseNamespace("OWN"))
	assert.Equal(t, NoDefault, ParseNamespace("NODEFAULT"))
	assert.Equal(t, Ref("item: Life Orb"), ParseNamespace("item: Life Orb"))
}

func TestGet(t *testing.T) {
	s := testStore()
	assert.Equal(t, "  [POKEMON] was hurt!", s.Get(Default, "damage"))
	assert.Equal(t, "  [POKEMON] protected itself!", s.Get("kingsshield", "start"))
	assert.Equal(t, "", s.Get("rest", "heal"))
	assert.Equal(t, "", s.Get("nowhere", "heal"))
}

func TestIndentedTextIsNeverARedirect(t *testing.T) {
	s := FromMap(map[string]map[string]string{
		Default: {
			"fail": "  ...But nothing happened!",
			"rank": "  #1 in the league!",
		},
	})

	assert.NoError(t, s.Validate())
	assert.Equal(t, "  ...But nothing happened!\n", s.Resolve("fail"))
	assert.Equal(t, "  #1 in the league!\n", s.Resolve("rank"))
}
