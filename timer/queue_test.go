package timer

import (
	"reflect"
	"testing"
)

func TestQueueFiresInDueOrder(t *testing.T) {
	q := NewQueue()
	var got []string
	q.Schedule(0.3, func() { got = append(got, "c") })
	q.Schedule(0.1, func() { got = append(got, "a") })
	q.Schedule(0.1, func() { got = append(got, "b") })

	q.Advance(0.05)
	if len(got) != 0 {
		t.Fatalf("nothing should fire before it is due, got %v", got)
	}
	q.Advance(0.5)
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("fire order = %v, want %v", got, want)
	}
	if q.Len() != 0 {
		t.Fatalf("expected empty queue, got %d", q.Len())
	}
}

func TestQueueNowDuringCallback(t *testing.T) {
	q := NewQueue()
	var at float64
	q.Schedule(0.25, func() { at = q.Now() })
	q.Advance(1)
	if at != 0.25 {
		t.Fatalf("Now() inside callback = %v, want 0.25", at)
	}
	if q.Now() != 1 {
		t.Fatalf("Now() after advance = %v, want 1", q.Now())
	}
}

func TestQueueCancel(t *testing.T) {
	q := NewQueue()
	fired := false
	h := q.Schedule(0.1, func() { fired = true })
	if !q.IsPending(h) {
		t.Fatalf("handle should be pending")
	}
	q.Cancel(h)
	q.Cancel(h)
	q.Advance(1)
	if fired {
		t.Fatalf("cancelled callback fired")
	}
}

func TestQueueNestedSchedule(t *testing.T) {
	q := NewQueue()
	var got []float64
	q.Schedule(0.1, func() {
		got = append(got, q.Now())
		q.Schedule(0.1, func() { got = append(got, q.Now()) })
	})
	q.Advance(0.5)
	if want := []float64{0.1, 0.2}; len(got) != 2 || got[0] != want[0] || got[1] < 0.2-1e-12 || got[1] > 0.2+1e-12 {
		t.Fatalf("nested schedule fired at %v, want %v", got, want)
	}
}

func TestQueueClear(t *testing.T) {
	q := NewQueue()
	fired := 0
	q.Schedule(0, func() { fired++ })
	q.Schedule(1, func() { fired++ })
	q.Clear()
	q.Advance(2)
	if fired != 0 {
		t.Fatalf("cleared callbacks fired %d times", fired)
	}
}
