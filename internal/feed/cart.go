package feed

import (
	"fmt"
	"strings"
)

// Payment identifies how a point-of-sale total is settled.
type Payment string

const (
	PaymentNone       Payment = ""
	PaymentCash       Payment = "cash"
	PaymentCard       Payment = "card"
	PaymentCardOnFile Payment = "card-on-file"
)

// Label returns the display name used in pills and receipt titles.
func (p Payment) Label() string {
	switch p {
	case PaymentCash:
		return "Cash"
	case PaymentCard:
		return "Card"
	case PaymentCardOnFile:
		return "Card on File"
	default:
		return "No payment"
	}
}

// LineItem is one cart line. UnitPrice is in cents.
type LineItem struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Emoji     string `yaml:"emoji,omitempty"`
	UnitPrice int    `yaml:"price_cents"`
	Quantity  int    `yaml:"quantity"`
}

// Cart is an insertion-ordered list of line items.
type Cart []LineItem

// Add returns a cart with the item merged in: re-adding an existing id
// increments its quantity rather than duplicating the line.
func (c Cart) Add(item LineItem) Cart {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	out := c.Clone()
	for i := range out {
		if out[i].ID == item.ID {
			out[i].Quantity += item.Quantity
			return out
		}
	}
	return append(out, item)
}

// Remove returns a cart without the identified line. There is no decrement:
// removing a line drops it entirely.
func (c Cart) Remove(id string) Cart {
	out := make(Cart, 0, len(c))
	for _, item := range c {
		if item.ID != id {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Total is the derived sum of quantity × unit price, in cents.
func (c Cart) Total() int {
	total := 0
	for _, item := range c {
		total += item.Quantity * item.UnitPrice
	}
	return total
}

// Summary renders the comma-joined receipt form, e.g. "2× Ticket, 1× Wine".
func (c Cart) Summary() string {
	parts := make([]string, 0, len(c))
	for _, item := range c {
		parts = append(parts, fmt.Sprintf("%d× %s", item.Quantity, item.Name))
	}
	return strings.Join(parts, ", ")
}

// Clone returns a copy safe to mutate independently.
func (c Cart) Clone() Cart {
	if len(c) == 0 {
		return nil
	}
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

// FormatCents renders a cent amount as dollars, e.g. 5000 → "$50.00".
func FormatCents(cents int) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
