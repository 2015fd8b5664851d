package input

import "image"

// Snapshot is the mouse state observed during one window tick.
type Snapshot struct {
	X, Y int

	PrimaryHeld   bool
	SecondaryHeld bool

	PrimaryPressed    bool
	PrimaryReleased   bool
	SecondaryPressed  bool
	SecondaryReleased bool
}

// Poller diffs consecutive snapshots into pointer samples.
type Poller struct {
	last image.Point
	seen bool
}

// Poll returns the samples for s in the order motion, releases, presses.
// Since the bus keeps only the newest sample, a press is the one that
// survives when several things happen within one tick.
func (p *Poller) Poll(s Snapshot) []Pointer {
	var out []Pointer
	pos := image.Pt(s.X, s.Y)
	if p.seen && pos != p.last {
		btn := ButtonNone
		switch {
		case s.PrimaryHeld:
			btn = ButtonPrimary
		case s.SecondaryHeld:
			btn = ButtonSecondary
		}
		out = append(out, Pointer{Button: btn, Action: Motion, X: s.X, Y: s.Y})
	}
	p.last, p.seen = pos, true

	if s.PrimaryReleased {
		out = append(out, Pointer{Button: ButtonPrimary, Action: Release, X: s.X, Y: s.Y})
	}
	if s.SecondaryReleased {
		out = append(out, Pointer{Button: ButtonSecondary, Action: Release, X: s.X, Y: s.Y})
	}
	if s.PrimaryPressed {
		out = append(out, Pointer{Button: ButtonPrimary, Action: Press, X: s.X, Y: s.Y})
	}
	if s.SecondaryPressed {
		out = append(out, Pointer{Button: ButtonSecondary, Action: Press, X: s.X, Y: s.Y})
	}
	return out
}
