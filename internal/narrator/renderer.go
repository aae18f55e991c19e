// Package narrator turns battle protocol events into narrative text seen from
// one player's side.
//
// A Renderer owns all mutable state for one perspective: player names, the
// generation, the current section phase and the lazily built capitalization
// fixup. Two renderers never share state, so one per perspective can run over
// the same stream in parallel.
package narrator

import (
	"strings"
	"time"

	"battletext/internal/logging"
	"battletext/internal/protocol"
	"battletext/internal/templates"

	"github.com/google/uuid"
)

// Side identifies a player.
type Side int

const (
	Side1 Side = 0
	Side2 Side = 1
)

// ID returns the protocol side id, "p1" or "p2".
func (s Side) ID() string {
	if s == Side2 {
		return "p2"
	}
	return "p1"
}

// LatestGeneration is assumed until a gen event arrives.
const LatestGeneration = 7

// slowConsume is how long Consume may take before it is logged as slow.
const slowConsume = time.Second

// Default player labels used until a player event names them.
const (
	DefaultPlayer1 = "Player 1"
	DefaultPlayer2 = "Player 2"
)

// Renderer renders events for one perspective. It is not safe for concurrent
// use; events must be fed in arrival order.
type Renderer struct {
	store       *templates.Store
	perspective Side
	players     [2]string
	gen         count
	genPinned   bool
	phase       Phase
	fix         *fixup
	runID       string
	log         *logging.RequestLogger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithGeneration pins the generation. gen events in the stream no longer
// change it.
func WithGeneration(n int) Option {
	return func(r *Renderer) {
		r.gen = count{n: n, ok: true}
		r.genPinned = true
	}
}

// WithRunID sets the correlation id attached to render logs.
func WithRunID(id string) Option {
	return func(r *Renderer) { r.runID = id }
}

// New builds a renderer bound to perspective. The store must be fully loaded
// and is never modified.
func New(store *templates.Store, perspective Side, opts ...Option) *Renderer {
	r := &Renderer{
		store:       store,
		perspective: perspective,
		players:     [2]string{DefaultPlayer1, DefaultPlayer2},
		gen:         count{n: LatestGeneration, ok: true},
		phase:       PhaseBreak,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.runID == "" {
		r.runID = uuid.NewString()
	}
	r.log = logging.WithRequestID(logging.CategoryRender, r.runID).WithField("perspective", perspective.ID())
	return r
}

// Perspective returns the side the renderer narrates for.
func (r *Renderer) Perspective() Side { return r.perspective }

// Player returns the current name of a side.
func (r *Renderer) Player(s Side) string {
	if s == Side2 {
		return r.players[1]
	}
	return r.players[0]
}

// Generation returns the current generation and whether it parsed as a number.
func (r *Renderer) Generation() (int, bool) { return r.gen.n, r.gen.ok }

// Phase returns the phase of the last classified event.
func (r *Renderer) Phase() Phase { return r.phase }

// RunID returns the correlation id used in logs.
func (r *Renderer) RunID() string { return r.runID }

// Consume renders every line of a raw multi-line protocol buffer and returns
// the concatenated narrative.
func (r *Renderer) Consume(buf string) string {
	timer := logging.StartTimer(logging.CategoryRender, "Consume")
	defer timer.StopWithThreshold(slowConsume)

	var out strings.Builder
	for _, line := range protocol.SplitLines(buf) {
		out.WriteString(r.ConsumeEvent(protocol.ParseLine(line), false))
	}
	return out.String()
}

// ConsumeEvent renders one tokenized event. With noSectionBreak the paragraph
// break logic is skipped and the phase left untouched.
func (r *Renderer) ConsumeEvent(ev protocol.Event, noSectionBreak bool) string {
	text, _ := r.Render(ev, noSectionBreak)
	return text
}

// Render is ConsumeEvent that also reports whether the command was recognized.
// Unrecognized commands produce no text beyond a possible section break.
func (r *Renderer) Render(ev protocol.Event, noSectionBreak bool) (string, bool) {
	brk := ""
	if !noSectionBreak && r.sectionBreak(ev) {
		brk = "\n"
	}
	text, ok := r.dispatch(ev)
	if !ok {
		r.log.Debug("unrecognized command %q", ev.Command)
	}
	return brk + r.fixLowercase(text), ok
}
