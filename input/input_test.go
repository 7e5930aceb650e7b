package input

import "testing"

func TestEdgeFiresOncePerPress(t *testing.T) {
	levels := []bool{false, true, true, true, false, true, false, false, true}
	want := []bool{false, true, false, false, false, true, false, false, true}

	var e Edge
	for i, down := range levels {
		if got := e.Update(down); got != want[i] {
			t.Fatalf("frame %d: expected %v, got %v", i, want[i], got)
		}
	}
}

func TestEdgeReset(t *testing.T) {
	var e Edge
	e.Update(true)
	e.Reset()
	if !e.Update(true) {
		t.Fatalf("expected press after reset")
	}
}

func TestAxis(t *testing.T) {
	cases := []struct {
		name     string
		pos, neg bool
		want     float64
	}{
		{"none", false, false, 0},
		{"positive", true, false, 1},
		{"negative", false, true, -1},
		{"both_cancel", true, true, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Axis(c.pos, c.neg); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestClampAxis(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"inside_deadzone", 0.1, 0},
		{"negative_deadzone", -0.19, 0},
		{"passthrough", 0.5, 0.5},
		{"over", 1.7, 1},
		{"under", -3, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClampAxis(c.in, 0.2); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestScriptReplaysThenIdles(t *testing.T) {
	s := NewScript(Frame{Forward: 1}, Frame{Jump: true})
	if f := s.Sample(); f.Forward != 1 {
		t.Fatalf("expected forward frame, got %+v", f)
	}
	if f := s.Sample(); !f.Jump {
		t.Fatalf("expected jump frame, got %+v", f)
	}
	if !s.Done() {
		t.Fatalf("expected script to be done")
	}
	if f := s.Sample(); f != (Frame{}) {
		t.Fatalf("expected zero frame after script end, got %+v", f)
	}
}
