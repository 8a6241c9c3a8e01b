// Package timer provides the world clock and one-shot delayed callbacks used by
// gameplay code. Everything runs on the game goroutine; nothing here locks.
package timer

import "sort"

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

type entry struct {
	handle Handle
	due    float64
	fn     func()
}

// Queue is a world clock plus an ordered set of pending callbacks.
type Queue struct {
	now     float64
	last    Handle
	pending []entry
}

func NewQueue() *Queue {
	return &Queue{}
}

// Now returns world time in seconds.
func (q *Queue) Now() float64 {
	return q.now
}

// Schedule runs fn once, delay seconds from now. Negative delays fire on the
// next Advance.
func (q *Queue) Schedule(delay float64, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	q.last++
	e := entry{handle: q.last, due: q.now + delay, fn: fn}

	// Keep sorted by due time, FIFO for equal times.
	i := sort.Search(len(q.pending), func(i int) bool {
		return q.pending[i].due > e.due
	})
	q.pending = append(q.pending, entry{})
	copy(q.pending[i+1:], q.pending[i:])
	q.pending[i] = e
	return e.handle
}

// Cancel drops a pending callback. Unknown or already fired handles are ignored.
func (q *Queue) Cancel(h Handle) {
	for i, e := range q.pending {
		if e.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// IsPending reports whether h is still waiting to fire.
func (q *Queue) IsPending(h Handle) bool {
	for _, e := range q.pending {
		if e.handle == h {
			return true
		}
	}
	return false
}

func (q *Queue) Len() int {
	return len(q.pending)
}

// Advance moves the clock forward by dt seconds and fires every callback that
// became due, in due order. While a callback runs, Now reports its due time.
// Callbacks scheduled during Advance fire in the same call if they are due.
func (q *Queue) Advance(dt float64) {
	q.AdvanceTo(q.now + dt)
}

func (q *Queue) AdvanceTo(t float64) {
	for len(q.pending) > 0 && q.pending[0].due <= t {
		e := q.pending[0]
		q.pending = q.pending[1:]
		if e.due > q.now {
			q.now = e.due
		}
		e.fn()
	}
	if t > q.now {
		q.now = t
	}
}

// Clear drops every pending callback without firing it.
func (q *Queue) Clear() {
	q.pending = nil
}
