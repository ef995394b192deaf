package composer

import (
	"fmt"

	"github.com/rowanvale/foyer/internal/feed"
)

// PillKind classifies the visual token variants.
type PillKind int

const (
	PillRecipient PillKind = iota
	PillCheckIn
	PillPOS
	PillCartItem
	PillTotal
	PillPayment
	PillAssign
)

// Pill is one removable token in the composer. OnRemove carries the exact
// mutation the removal affordance performs; the derived total pill is the
// one kind without one.
type Pill struct {
	Kind      PillKind
	Label     string
	Emoji     string
	Removable bool
	OnRemove  Mutation

	// Recipient is set for PillRecipient so renderers can color by person
	// type, matching the entity pill treatment of the web client.
	Recipient *feed.Person
}

// Pills projects the state into its fixed render order: staff/AI
// recipients, guest recipients, Check-in, POS, cart lines, total, payment,
// Assign. Who precedes what, what precedes detail, detail precedes the
// wrapper. The order is a contract and not configurable.
func Pills(s State) []Pill {
	var pills []Pill
	for _, r := range s.Recipients {
		if r.Type == feed.PersonStaff || r.Type == feed.PersonAI {
			pills = append(pills, recipientPill(r))
		}
	}
	for _, r := range s.Recipients {
		if r.Type == feed.PersonGuest {
			pills = append(pills, recipientPill(r))
		}
	}
	if s.Action == ActionCheckIn {
		pills = append(pills, Pill{
			Kind: PillCheckIn, Label: "Check-in", Removable: true,
			OnRemove: SetAction{Action: ActionNone},
		})
	}
	if s.Action == ActionPOS {
		pills = append(pills, Pill{
			Kind: PillPOS, Label: "POS", Removable: true,
			OnRemove: SetAction{Action: ActionNone},
		})
		for _, item := range s.Cart {
			pills = append(pills, Pill{
				Kind:      PillCartItem,
				Label:     fmt.Sprintf("%s ×%d", item.Name, item.Quantity),
				Emoji:     item.Emoji,
				Removable: true,
				OnRemove:  CartRemove{ID: item.ID},
			})
		}
		if total := s.Cart.Total(); total > 0 {
			pills = append(pills, Pill{Kind: PillTotal, Label: feed.FormatCents(total)})
		}
		if s.Payment != feed.PaymentNone {
			pills = append(pills, Pill{
				Kind: PillPayment, Label: s.Payment.Label(), Removable: true,
				OnRemove: SetPayment{Payment: feed.PaymentNone},
			})
		}
	}
	if s.Assign {
		pills = append(pills, Pill{
			Kind: PillAssign, Label: "Assign", Removable: true,
			OnRemove: SetAssign{On: false},
		})
	}
	return pills
}

func recipientPill(r feed.Person) Pill {
	person := r
	return Pill{
		Kind:      PillRecipient,
		Label:     r.Name,
		Emoji:     r.Avatar,
		Removable: true,
		OnRemove:  RemoveRecipient{ID: r.ID},
		Recipient: &person,
	}
}
