// Package notify abstracts the local notification capability the scheduler
// registers reminders with. The native runtime delivers reminders best-effort
// at their wall-clock fire time; contexts without a delivery runtime degrade
// to a no-op rather than an error.
package notify

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Reminder is one scheduled local notification
type Reminder struct {
	ID     int       `json:"id"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	FireAt time.Time `json:"fireAt"`
}

// Notifier is the delivery capability contract
type Notifier interface {
	RequestPermission() bool
	Schedule(reminders []Reminder) error
	Cancel(ids []int) error
	ListPending() []int
}

// Sender dispatches a reminder whose fire time has arrived
type Sender interface {
	Send(reminder Reminder) error
}

// Local registers reminders with in-process timers and hands each to a
// Sender when its fire time arrives. It is the delivery capability for
// native deployments; web-only deployments use Noop instead.
type Local struct {
	mu     sync.Mutex
	sender Sender
	timers map[int]*time.Timer
}

// NewLocal returns a Local notifier dispatching through the given sender
func NewLocal(sender Sender) *Local {
	return &Local{
		sender: sender,
		timers: make(map[int]*time.Timer),
	}
}

// RequestPermission always succeeds for in-process delivery
func (l *Local) RequestPermission() bool { return true }

// Schedule registers a timer per reminder. Reminders already in the past
// fire immediately.
func (l *Local) Schedule(reminders []Reminder) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, reminder := range reminders {
		r := reminder
		delay := time.Until(r.FireAt)
		if delay < 0 {
			delay = 0
		}
		l.timers[r.ID] = time.AfterFunc(delay, func() {
			l.fire(r)
		})
	}
	return nil
}

// Cancel stops and forgets the timers for the given ids. Unknown ids are
// ignored.
func (l *Local) Cancel(ids []int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, id := range ids {
		if timer, ok := l.timers[id]; ok {
			timer.Stop()
			delete(l.timers, id)
		}
	}
	return nil
}

// ListPending returns the ids of all reminders not yet fired or cancelled
func (l *Local) ListPending() []int {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := make([]int, 0, len(l.timers))
	for id := range l.timers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (l *Local) fire(r Reminder) {
	l.mu.Lock()
	delete(l.timers, r.ID)
	l.mu.Unlock()

	if err := l.sender.Send(r); err != nil {
		zap.S().Errorw("failed to deliver reminder",
			"reminderID", r.ID,
			"title", r.Title,
			"error", err,
		)
	}
}

// Noop is the delivery capability for contexts with no notification runtime.
// Every call succeeds and does nothing; the feature degrades gracefully.
type Noop struct{}

// RequestPermission reports no permission in a web-only context
func (Noop) RequestPermission() bool { return false }

// Schedule does nothing
func (Noop) Schedule([]Reminder) error { return nil }

// Cancel does nothing
func (Noop) Cancel([]int) error { return nil }

// ListPending reports nothing pending
func (Noop) ListPending() []int { return nil }
