// Package composer implements the pill state machine behind the input bar:
// which modifier combinations are legal, how they project into an ordered
// set of pills, and how a single submit resolves into domain events. It has
// no UI dependencies; the TUI drives it through mutations and reads its
// projections.
package composer

import "github.com/rowanvale/foyer/internal/feed"

// Action is the single dominant operation the composer performs on submit.
// At most one is active at a time.
type Action int

const (
	ActionNone Action = iota
	ActionPOS
	ActionCheckIn
)

func (a Action) String() string {
	switch a {
	case ActionPOS:
		return "pos"
	case ActionCheckIn:
		return "check-in"
	default:
		return "none"
	}
}

// State is the composer's in-progress modifier set. The zero value is the
// empty initial state; every successful submission returns to it exactly.
type State struct {
	Recipients []feed.Person
	Action     Action
	Assign     bool
	Cart       feed.Cart
	Payment    feed.Payment
	Text       string
}

// Empty reports whether the state equals the initial empty state.
func (s State) Empty() bool {
	return len(s.Recipients) == 0 &&
		s.Action == ActionNone &&
		!s.Assign &&
		len(s.Cart) == 0 &&
		s.Payment == feed.PaymentNone &&
		s.Text == ""
}

// HasRecipient reports whether a recipient with the id is selected.
func (s State) HasRecipient(id string) bool {
	for _, r := range s.Recipients {
		if r.ID == id {
			return true
		}
	}
	return false
}

// Guests returns the selected guest-type recipients in selection order.
func (s State) Guests() []feed.Person {
	var out []feed.Person
	for _, r := range s.Recipients {
		if r.Type == feed.PersonGuest {
			out = append(out, r)
		}
	}
	return out
}

// Assignee resolves the task assignee: the first selected staff or AI
// recipient, falling back to the injected operator identity. First match
// wins when several are selected.
func (s State) Assignee(operator feed.Person) feed.Person {
	for _, r := range s.Recipients {
		if r.Type == feed.PersonStaff || r.Type == feed.PersonAI {
			return r
		}
	}
	return operator
}

// ForGuest resolves the subject guest: the first selected guest, or nil.
func (s State) ForGuest() *feed.Person {
	for _, r := range s.Recipients {
		if r.Type == feed.PersonGuest {
			g := r
			return &g
		}
	}
	return nil
}
