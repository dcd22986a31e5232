package layout

import "sync"

// ResizeObserver coalesces container size notifications. Any number of
// Notify calls between two flushes deliver a single callback with the latest
// size; the caller schedules the flush (for example once per frame).
type ResizeObserver struct {
	callback     func(Size)
	pending      Size
	hasPending   bool
	last         Size
	hasLast      bool
	disconnected bool

	mu sync.Mutex
}

// NewResizeObserver creates an observer delivering sizes to callback.
func NewResizeObserver(callback func(Size)) *ResizeObserver {
	return &ResizeObserver{callback: callback}
}

// Notify records size as the latest observed extent. It returns true when
// this is the first notification since the last flush, meaning the caller
// should schedule exactly one Flush.
func (o *ResizeObserver) Notify(size Size) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.disconnected {
		return false
	}
	schedule := !o.hasPending
	o.pending = size
	o.hasPending = true
	return schedule
}

// Pending reports whether a notification awaits a flush.
func (o *ResizeObserver) Pending() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.hasPending
}

// Flush delivers the pending size, if any and if it differs from the last
// delivered one. It returns whether the callback ran.
func (o *ResizeObserver) Flush() bool {
	o.mu.Lock()
	if o.disconnected || !o.hasPending {
		o.mu.Unlock()
		return false
	}
	size := o.pending
	o.hasPending = false
	if o.hasLast && size == o.last {
		o.mu.Unlock()
		return false
	}
	o.last = size
	o.hasLast = true
	callback := o.callback
	o.mu.Unlock()

	if callback != nil {
		callback(size)
	}
	return true
}

// Disconnect stops all further deliveries. Only the first call has an effect;
// it returns whether this call released the observer.
func (o *ResizeObserver) Disconnect() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.disconnected {
		return false
	}
	o.disconnected = true
	o.callback = nil
	o.hasPending = false
	return true
}

// Connected reports whether Disconnect has not been called yet.
func (o *ResizeObserver) Connected() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return !o.disconnected
}
