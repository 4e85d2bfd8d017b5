// internal/timer/queue.go
package timer

import (
	"container/heap"
	"log/slog"
)

// Action is a deferred callback; now is the sim clock at firing time.
type Action func(now float64)

type entry struct {
	fireAt float64
	seq    uint64
	name   string
	action Action
}

type entries []*entry

func (e entries) Len() int { return len(e) }
func (e entries) Less(i, j int) bool {
	if e[i].fireAt != e[j].fireAt {
		return e[i].fireAt < e[j].fireAt
	}
	return e[i].seq < e[j].seq
}
func (e entries) Swap(i, j int) { e[i], e[j] = e[j], e[i] }
func (e *entries) Push(x any)   { *e = append(*e, x.(*entry)) }
func (e *entries) Pop() any {
	old := *e
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*e = old[:n-1]
	return it
}

// Queue — очередь отложенных действий на симуляционных часах (мс).
// Не потокобезопасна: вся работа идёт внутри одного тика.
// Паузы не отменяют записи: после возобновления просроченные действия
// срабатывают на первом же тике.
type Queue struct {
	items entries
	seq   uint64
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule adds an action that fires once the clock reaches fireAt.
func (q *Queue) Schedule(fireAt float64, name string, action Action) {
	q.seq++
	heap.Push(&q.items, &entry{fireAt: fireAt, seq: q.seq, name: name, action: action})
}

// After schedules relative to now.
func (q *Queue) After(now, delayMs float64, name string, action Action) {
	q.Schedule(now+delayMs, name, action)
}

// RunDue fires every entry with fireAt <= now in (fireAt, insertion) order.
// Entries scheduled by a running action are picked up in the same pass if
// they are already due. Returns the number of actions fired.
func (q *Queue) RunDue(now float64) int {
	fired := 0
	for len(q.items) > 0 && q.items[0].fireAt <= now {
		it := heap.Pop(&q.items).(*entry)
		slog.Debug("timer fired", "name", it.name, "at", it.fireAt, "now", now)
		it.action(now)
		fired++
	}
	return fired
}

// Len returns the number of pending entries.
func (q *Queue) Len() int { return len(q.items) }

// Pending counts entries with the given name.
func (q *Queue) Pending(name string) int {
	n := 0
	for _, it := range q.items {
		if it.name == name {
			n++
		}
	}
	return n
}
