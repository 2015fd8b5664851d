// Package input turns raw pointer samples from the window into the click
// and motion events the controller understands.
package input

import (
	"fmt"
	"image"
)

// Type tags an input event.
type Type uint8

const (
	None Type = iota
	PrimaryDown
	PrimaryUp
	SecondaryDown
	SecondaryUp
	Move
	Drag
)

var typeNames = [...]string{
	None:          "none",
	PrimaryDown:   "primary-down",
	PrimaryUp:     "primary-up",
	SecondaryDown: "secondary-down",
	SecondaryUp:   "secondary-up",
	Move:          "move",
	Drag:          "drag",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

// Event is a typed pointer event at a canvas pixel.
type Event struct {
	Type  Type
	Point image.Point
}

func (e Event) String() string { return fmt.Sprintf("%s@%d,%d", e.Type, e.Point.X, e.Point.Y) }
