// Package feed holds the activity feed domain model: the people directory,
// the entry variants, the cart value types shared with point-of-sale
// payloads, and the append-only store the TUI renders.
package feed

import (
	"sync"
	"time"
)

// EntryType discriminates the feed entry variants.
type EntryType string

const (
	EntryGuest     EntryType = "guest"     // inbound guest message
	EntryTask      EntryType = "task"      // assigned or completed work item
	EntryConcierge EntryType = "concierge" // outbound operator message
	EntrySystem    EntryType = "system"    // executed action or venue notice
)

// TaskStatus tracks a task entry's lifecycle.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskAssigned  TaskStatus = "assigned"
	TaskCompleted TaskStatus = "completed"
)

// POSPayload is the deferred point-of-sale detail carried by an assigned
// task that wraps a purchase.
type POSPayload struct {
	Cart    Cart
	Payment Payment
}

// Receipt records an executed point-of-sale transaction.
type Receipt struct {
	Cart     Cart
	Payment  Payment
	Total    int
	ForGuest *Person
}

// Entry is one item in the activity feed. The populated fields depend on
// Type; unused fields stay zero.
type Entry struct {
	ID        string
	Type      EntryType
	Timestamp time.Time

	// Guest entries.
	Name    string
	Avatar  string
	Message string // also the body of concierge entries

	// Task entries.
	Category    string
	Title       string // also the headline of system entries
	Description string
	Status      TaskStatus
	AssignedTo  *Person
	ForGuest    *Person
	Location    string
	POS         *POSPayload

	// Concierge entries.
	Sender     *Person
	Recipients []Person

	// System entries.
	Note    string
	Receipt *Receipt
}

// Feed is the append-only ordered sequence of entries. The composer core
// only ever appends; existing entries are never edited or removed.
type Feed struct {
	mu      sync.Mutex
	entries []Entry
}

// New creates a feed pre-populated with the given entries.
func New(entries ...Entry) *Feed {
	f := &Feed{}
	f.Append(entries...)
	return f
}

// Append adds entries to the end of the feed.
func (f *Feed) Append(entries ...Entry) {
	if len(entries) == 0 {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entries...)
}

// Entries returns a snapshot copy of the feed contents.
func (f *Feed) Entries() []Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}

// Len reports the number of entries.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}
