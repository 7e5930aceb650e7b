package input

// Edge turns a held button into a one-frame press signal.
type Edge struct {
	held bool
}

// Update records the current button level and reports whether it went from
// released to pressed since the previous call.
func (e *Edge) Update(down bool) bool {
	pressed := down && !e.held
	e.held = down
	return pressed
}

// Reset forgets the previous level, e.g. after focus loss.
func (e *Edge) Reset() {
	e.held = false
}

// Script replays a fixed sequence of frames, then returns zero frames. It is
// useful for demos and tests that drive a controller without a device.
type Script struct {
	frames []Frame
	next   int
}

func NewScript(frames ...Frame) *Script {
	return &Script{frames: append([]Frame(nil), frames...)}
}

func (s *Script) Sample() Frame {
	if s == nil || s.next >= len(s.frames) {
		return Frame{}
	}
	f := s.frames[s.next]
	s.next++
	return f
}

func (s *Script) Done() bool {
	return s == nil || s.next >= len(s.frames)
}
