package templates

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	s := FromMap(map[string]map[string]string{
		Default: {"damage": "hurt"},
		"a":     {"start": "#b"},
		"b":     {"start": "  ok"},
	})
	require.NoError(t, s.Validate())
}

func TestValidateMissingDefault(t *testing.T) {
	s := FromMap(map[string]map[string]string{"a": {"start": "x"}})
	err := s.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoDefault))
}

func TestValidateDangling(t *testing.T) {
	s := FromMap(map[string]map[string]string{
		Default: {"start": ".nothing"},
		"a":     {"start": "#gone"},
	})
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dangling redirect: default.start -> default.nothing")
	assert.Contains(t, err.Error(), "dangling redirect: a.start -> gone.start")
}

func TestValidateCycle(t *testing.T) {
	s := FromMap(map[string]map[string]string{
		Default: {"x": "ok"},
		"a":     {"start": ".end", "end": "#b"},
		"b":     {"end": "#a"},
		"self":  {"start": ".start"},
	})
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redirect cycle: a.start -> a.end -> b.end -> a.end")
	assert.Contains(t, err.Error(), "redirect cycle: self.start -> self.start")
	assert.False(t, errors.Is(err, ErrNoDefault))
}
