package narrator

import (
	"testing"

	"battletext/internal/protocol"
	"battletext/internal/templates"

	"github.com/stretchr/testify/require"
)

func embeddedStore(t *testing.T) *templates.Store {
	t.Helper()
	s, err := templates.LoadEmbedded()
	require.NoError(t, err)
	return s
}

func newTestRenderer(t *testing.T, perspective Side, opts ...Option) *Renderer {
	t.Helper()
	return New(embeddedStore(t), perspective, append([]Option{WithRunID("test")}, opts...)...)
}

func line(raw string) protocol.Event { return protocol.ParseLine(raw) }
