package tui

import "testing"

func TestFrameClockStartIsIdempotent(t *testing.T) {
	c := NewFrameClock(60)
	if c.Running() {
		t.Fatal("new clock should be stopped")
	}
	if c.Next() != nil {
		t.Error("stopped clock should not schedule ticks")
	}

	if c.Start() == nil {
		t.Fatal("Start on a stopped clock should schedule a tick")
	}
	gen := c.gen
	if c.Start() != nil {
		t.Error("Start on a running clock should return nil")
	}
	if c.gen != gen {
		t.Errorf("second Start changed generation: %d -> %d", gen, c.gen)
	}
}

func TestFrameClockRejectsStaleTicks(t *testing.T) {
	c := NewFrameClock(60)
	c.Start()
	old := TickMsg{Gen: c.gen}
	if !c.Accept(old) {
		t.Fatal("tick of current generation should be accepted")
	}

	c.Stop()
	c.Stop()
	if c.Accept(old) {
		t.Error("stopped clock should reject ticks")
	}

	c.Start()
	if c.Accept(old) {
		t.Error("tick from before the restart should be rejected")
	}
	if !c.Accept(TickMsg{Gen: c.gen}) {
		t.Error("tick of new generation should be accepted")
	}
}

func TestFrameClockDefaultRate(t *testing.T) {
	if c := NewFrameClock(0); c.rate != 60 {
		t.Errorf("rate = %d, want 60", c.rate)
	}
}
