package client

import (
	"math"
	"testing"

	"bombarena/internal/score"
	"bombarena/pkg/core"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	g := core.NewGame(core.DefaultLayout(1), 1)
	g.AddPlayer(false)
	g.AddPlayer(false)
	g.Phase = core.PhasePlaying
	return NewSession(g, score.NewBoard())
}

func TestSessionRunsWholeTicks(t *testing.T) {
	s := newTestSession(t)

	before := s.Game().Time
	s.Advance(2.5*core.TickSeconds, make([]core.Intent, 2))

	elapsed := s.Game().Time - before
	if math.Abs(elapsed-2*core.TickSeconds) > 1e-9 {
		t.Errorf("simulated %.6fs, want exactly 2 ticks", elapsed)
	}
	if a := s.Alpha(); math.Abs(a-0.5) > 1e-9 {
		t.Errorf("alpha = %v, want 0.5 (half a tick left over)", a)
	}
}

func TestSessionClampsLongStall(t *testing.T) {
	s := newTestSession(t)

	s.Advance(10, make([]core.Intent, 2))

	if s.Game().Time > maxFrameSeconds {
		t.Errorf("simulated %.3fs after a stall, want at most %.3fs",
			s.Game().Time, maxFrameSeconds)
	}
}

func TestSessionCollectsEventsAcrossTicks(t *testing.T) {
	s := newTestSession(t)
	intents := make([]core.Intent, 2)
	intents[0].PlaceBomb = true

	events := s.Advance(core.TickSeconds, intents)

	placed := 0
	for _, ev := range events {
		if ev.Kind == core.EventBombPlaced {
			placed++
		}
	}
	if placed != 1 {
		t.Errorf("got %d bomb-placed events, want 1", placed)
	}
}
