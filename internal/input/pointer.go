package input

import "image"

type Button uint8

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

type Action uint8

const (
	Motion Action = iota
	Press
	Release
)

// Pointer is one raw sample as reported by the window host.
type Pointer struct {
	Button Button
	Action Action
	X, Y   int
}

// Translate maps a raw sample to an Event. Presses and releases of the
// middle button have no meaning here and map to None; motion with any
// button held is a drag.
func Translate(p Pointer) Event {
	ev := Event{Point: image.Pt(p.X, p.Y)}
	switch p.Action {
	case Press:
		switch p.Button {
		case ButtonPrimary:
			ev.Type = PrimaryDown
		case ButtonSecondary:
			ev.Type = SecondaryDown
		}
	case Release:
		switch p.Button {
		case ButtonPrimary:
			ev.Type = PrimaryUp
		case ButtonSecondary:
			ev.Type = SecondaryUp
		}
	case Motion:
		if p.Button == ButtonNone {
			ev.Type = Move
		} else {
			ev.Type = Drag
		}
	}
	return ev
}
