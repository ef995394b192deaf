package composer

import (
	"errors"

	"github.com/rowanvale/foyer/internal/feed"
)

// ErrInvalidPerson rejects a recipient with no id. The state is left
// unchanged; callers log and move on.
var ErrInvalidPerson = errors.New("composer: person is missing an id")

// Notice is a transient user-visible message produced when a mutation
// converts a conflicting modifier combination into an explicit switch.
type Notice string

const (
	NoticeNone            Notice = ""
	NoticeSwitchedPOS     Notice = "Switched to POS"
	NoticeSwitchedCheckIn Notice = "Switched to Check-in"
	NoticeSwitchedAssign  Notice = "Switched to Assign"
)

// Mutation is one discrete change to the composer state. Mutations are
// applied through Apply, which is the only place the legality rules live.
type Mutation interface {
	isMutation()
}

// AddRecipient appends a person to the selection. Idempotent by id.
type AddRecipient struct{ Person feed.Person }

// RemoveRecipient drops a selected person by id. No-op if absent.
type RemoveRecipient struct{ ID string }

// ToggleRecipient adds the person if absent, removes if present. Used by
// checkbox-style selection that must not close the enclosing menu.
type ToggleRecipient struct{ Person feed.Person }

// SetAction activates a primary action, or clears it with ActionNone.
type SetAction struct{ Action Action }

// SetAssign sets or clears the Assign wrapper.
type SetAssign struct{ On bool }

// CartAdd merges an item into the cart, activating the point-of-sale
// action first when it is not already active.
type CartAdd struct{ Item feed.LineItem }

// CartRemove drops a cart line entirely.
type CartRemove struct{ ID string }

// SetPayment selects how the sale is settled.
type SetPayment struct{ Payment feed.Payment }

// SetText replaces the free text.
type SetText struct{ Text string }

// Reset returns the composer to the empty initial state.
type Reset struct{}

func (AddRecipient) isMutation()    {}
func (RemoveRecipient) isMutation() {}
func (ToggleRecipient) isMutation() {}
func (SetAction) isMutation()       {}
func (SetAssign) isMutation()       {}
func (CartAdd) isMutation()         {}
func (CartRemove) isMutation()      {}
func (SetPayment) isMutation()      {}
func (SetText) isMutation()         {}
func (Reset) isMutation()           {}

// Apply is the state-transition function. It returns the next state, a
// transient notice when a conflicting combination was converted into an
// explicit switch, and an error only for malformed input. Two invariants
// hold for every reachable state: a single primary action, and never
// Assign together with Check-in.
func Apply(s State, m Mutation) (State, Notice, error) {
	switch m := m.(type) {
	case AddRecipient:
		return addRecipient(s, m.Person)

	case RemoveRecipient:
		out := make([]feed.Person, 0, len(s.Recipients))
		for _, r := range s.Recipients {
			if r.ID != m.ID {
				out = append(out, r)
			}
		}
		if len(out) == 0 {
			out = nil
		}
		s.Recipients = out
		return s, NoticeNone, nil

	case ToggleRecipient:
		if m.Person.ID == "" {
			return s, NoticeNone, ErrInvalidPerson
		}
		if s.HasRecipient(m.Person.ID) {
			return Apply(s, RemoveRecipient{ID: m.Person.ID})
		}
		return addRecipient(s, m.Person)

	case SetAction:
		return setAction(s, m.Action)

	case SetAssign:
		if !m.On {
			s.Assign = false
			return s, NoticeNone, nil
		}
		notice := NoticeNone
		if s.Action == ActionCheckIn {
			s.Action = ActionNone
			notice = NoticeSwitchedAssign
		}
		s.Assign = true
		return s, notice, nil

	case CartAdd:
		s, notice, _ := setAction(s, ActionPOS)
		s.Cart = s.Cart.Add(m.Item)
		return s, notice, nil

	case CartRemove:
		s.Cart = s.Cart.Remove(m.ID)
		return s, NoticeNone, nil

	case SetPayment:
		if m.Payment == feed.PaymentNone {
			if s.Action == ActionPOS {
				s.Payment = feed.PaymentNone
			}
			return s, NoticeNone, nil
		}
		s, notice, _ := setAction(s, ActionPOS)
		s.Payment = m.Payment
		return s, notice, nil

	case SetText:
		s.Text = m.Text
		return s, NoticeNone, nil

	case Reset:
		return State{}, NoticeNone, nil
	}
	return s, NoticeNone, nil
}

func addRecipient(s State, p feed.Person) (State, Notice, error) {
	if p.ID == "" {
		return s, NoticeNone, ErrInvalidPerson
	}
	if s.HasRecipient(p.ID) {
		return s, NoticeNone, nil
	}
	out := make([]feed.Person, len(s.Recipients), len(s.Recipients)+1)
	copy(out, s.Recipients)
	s.Recipients = append(out, p)
	return s, NoticeNone, nil
}

// setAction enforces the mutual-exclusion rules: one primary action at a
// time, payload cleared when leaving point-of-sale, and Assign cancelled
// when Check-in activates.
func setAction(s State, next Action) (State, Notice, error) {
	if s.Action == next {
		return s, NoticeNone, nil
	}
	notice := NoticeNone
	switch next {
	case ActionCheckIn:
		if s.Assign || s.Action == ActionPOS {
			notice = NoticeSwitchedCheckIn
		}
		s.Assign = false
	case ActionPOS:
		if s.Action == ActionCheckIn {
			notice = NoticeSwitchedPOS
		}
	}
	if s.Action == ActionPOS {
		s.Cart = nil
		s.Payment = feed.PaymentNone
	}
	s.Action = next
	return s, notice, nil
}
