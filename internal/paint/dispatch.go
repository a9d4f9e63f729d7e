package paint

import "github.com/example/paintpad/internal/geom"

// Listener receives the pointer events that follow a pointer-down.
type Listener interface {
	PointerMove(client geom.Point)
	PointerUp(client geom.Point)
	// PointerCancel ends the gesture without a pointer-up, for example
	// when the window loses focus mid-drag.
	PointerCancel()
}

// Dispatcher fans pointer-move, pointer-up and cancel events out to the
// listeners of the gestures in progress.
type Dispatcher struct {
	subs []*Subscription
	next uint64
}

// Subscription is the handle returned when a listener is registered.
// Closing it unregisters the listener.
type Subscription struct {
	d      *Dispatcher
	id     uint64
	l      Listener
	closed bool
}

// Subscribe registers l until the returned subscription is closed.
func (d *Dispatcher) Subscribe(l Listener) *Subscription {
	d.next++
	s := &Subscription{d: d, id: d.next, l: l}
	d.subs = append(d.subs, s)
	return s
}

// Close unregisters the listener. Closing twice is a no-op.
func (s *Subscription) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	subs := s.d.subs
	for i, o := range subs {
		if o == s {
			s.d.subs = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
}

// Closed reports whether the subscription has ended. A nil subscription is
// closed.
func (s *Subscription) Closed() bool {
	return s == nil || s.closed
}

// Active returns the number of registered listeners.
func (d *Dispatcher) Active() int { return len(d.subs) }

// Move delivers a pointer-move to every listener.
func (d *Dispatcher) Move(client geom.Point) {
	d.each(func(l Listener) { l.PointerMove(client) })
}

// Up delivers a pointer-up to every listener.
func (d *Dispatcher) Up(client geom.Point) {
	d.each(func(l Listener) { l.PointerUp(client) })
}

// Cancel ends every gesture in progress.
func (d *Dispatcher) Cancel() {
	d.each(func(l Listener) { l.PointerCancel() })
}

// each calls fn on a snapshot of the listeners, skipping any that were
// unregistered by an earlier call in the same round.
func (d *Dispatcher) each(fn func(Listener)) {
	subs := append([]*Subscription(nil), d.subs...)
	for _, s := range subs {
		if !s.closed {
			fn(s.l)
		}
	}
}
