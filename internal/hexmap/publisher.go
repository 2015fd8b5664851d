package hexmap

import (
	"image"
	"image/png"
	"io"
	"sync"
	"time"
)

// Frame is one published rendering. The image is never written after
// publication.
type Frame struct {
	Seq      uint64
	Image    *image.RGBA
	Rendered time.Time
}

// slot keeps only the most recent frame. Writers never wait for readers;
// a reader that falls behind simply sees the newest frame next time.
type slot struct {
	mu     sync.RWMutex
	latest *Frame
	notify chan struct{}
}

func newSlot() *slot {
	return &slot{notify: make(chan struct{}, 1)}
}

func (s *slot) store(f *Frame) {
	s.mu.Lock()
	s.latest = f
	s.mu.Unlock()
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *slot) load() *Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// WritePNG encodes the frame image.
func (f *Frame) WritePNG(w io.Writer) error {
	return png.Encode(w, f.Image)
}
