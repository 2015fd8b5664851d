package input

import "sync"

// Bus carries pointer samples from the window to the controller. It holds
// at most one unread sample: Publish replaces it and never blocks, so a
// slow consumer skips intermediate samples instead of building a backlog.
// An unread press or release is never displaced by plain motion; the
// motion is dropped instead.
type Bus struct {
	mu     sync.Mutex
	ch     chan Pointer
	closed bool
}

func NewBus() *Bus {
	return &Bus{ch: make(chan Pointer, 1)}
}

// Publish makes p the latest sample. It is a no-op after Close.
func (b *Bus) Publish(p Pointer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	select {
	case old := <-b.ch:
		if old.Action != Motion && p.Action == Motion {
			p = old
		}
	default:
	}
	b.ch <- p
}

// C is the consumer side of the bus. It is closed by Close.
func (b *Bus) C() <-chan Pointer { return b.ch }

// Close stops accepting samples. Safe to call more than once.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.closed = true
		close(b.ch)
	}
}
