package paint

// Frames defers drawing to the next animation frame. Only the most recent
// request survives until the frame runs; nothing is ever drawn between
// frames.
type Frames struct {
	pending func()
	// Coalesced counts requests replaced before their frame ran.
	Coalesced int
}

// Request schedules fn for the next frame, replacing any earlier request.
func (f *Frames) Request(fn func()) {
	if f.pending != nil {
		f.Coalesced++
	}
	f.pending = fn
}

// Pending reports whether a frame has been requested.
func (f *Frames) Pending() bool { return f.pending != nil }

// Run executes the pending request, if any, and reports whether it did.
func (f *Frames) Run() bool {
	fn := f.pending
	if fn == nil {
		return false
	}
	f.pending = nil
	fn()
	return true
}
