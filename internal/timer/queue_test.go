package timer

import (
	"reflect"
	"testing"
)

func TestRunDueOrdersByTimeThenInsertion(t *testing.T) {
	q := NewQueue()
	var got []string
	rec := func(s string) Action { return func(float64) { got = append(got, s) } }

	q.Schedule(200, "b", rec("b"))
	q.Schedule(100, "a1", rec("a1"))
	q.Schedule(100, "a2", rec("a2"))
	q.Schedule(300, "c", rec("c"))

	if n := q.RunDue(250); n != 3 {
		t.Fatalf("fired %d, want 3", n)
	}
	if want := []string{"a1", "a2", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	if q.Len() != 1 || q.Pending("c") != 1 {
		t.Fatalf("expected only c pending, len=%d", q.Len())
	}
}

func TestRunDuePicksUpNewlyDueEntries(t *testing.T) {
	q := NewQueue()
	fired := 0
	q.Schedule(0, "first", func(now float64) {
		fired++
		q.After(now, 0, "chained", func(float64) { fired++ })
		q.After(now, 1000, "later", func(float64) { fired++ })
	})
	q.RunDue(10)
	if fired != 2 {
		t.Fatalf("fired %d, want 2", fired)
	}
	if q.Pending("later") != 1 {
		t.Fatalf("later entry should remain queued")
	}
}

func TestStaleEntriesFireAfterLongGap(t *testing.T) {
	q := NewQueue()
	fired := false
	q.After(0, 2000, "spawn", func(float64) { fired = true })
	q.RunDue(100)
	if fired {
		t.Fatalf("fired early")
	}
	// Возобновление после долгой паузы.
	q.RunDue(60000)
	if !fired {
		t.Fatalf("stale action did not fire")
	}
}
