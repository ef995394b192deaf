package feed

import "testing"

func ticket() LineItem {
	return LineItem{ID: "ticket", Name: "Ticket", Emoji: "🎫", UnitPrice: 2500, Quantity: 1}
}

func wine() LineItem {
	return LineItem{ID: "wine", Name: "Wine", Emoji: "🍷", UnitPrice: 1200, Quantity: 1}
}

func TestCartAddMergesByID(t *testing.T) {
	var c Cart
	c = c.Add(ticket())
	c = c.Add(wine())
	c = c.Add(ticket())

	if len(c) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(c))
	}
	if c[0].ID != "ticket" || c[0].Quantity != 2 {
		t.Fatalf("expected ticket ×2 first, got %s ×%d", c[0].ID, c[0].Quantity)
	}
	if c[1].ID != "wine" || c[1].Quantity != 1 {
		t.Fatalf("expected wine ×1 second, got %s ×%d", c[1].ID, c[1].Quantity)
	}
}

func TestCartAddDoesNotMutateReceiver(t *testing.T) {
	base := Cart{ticket()}
	_ = base.Add(ticket())
	if base[0].Quantity != 1 {
		t.Fatalf("Add mutated the original cart: quantity %d", base[0].Quantity)
	}
}

func TestCartAddDefaultsQuantity(t *testing.T) {
	item := ticket()
	item.Quantity = 0
	c := Cart{}.Add(item)
	if c[0].Quantity != 1 {
		t.Fatalf("expected zero quantity to default to 1, got %d", c[0].Quantity)
	}
}

func TestCartRemoveDropsWholeLine(t *testing.T) {
	c := Cart{}.Add(ticket()).Add(ticket()).Add(wine())
	c = c.Remove("ticket")
	if len(c) != 1 || c[0].ID != "wine" {
		t.Fatalf("expected only wine to remain, got %v", c)
	}
	if c := c.Remove("wine"); c != nil {
		t.Fatalf("expected empty cart to be nil, got %v", c)
	}
}

func TestCartRemoveUnknownIDIsNoop(t *testing.T) {
	c := Cart{ticket()}
	out := c.Remove("cocktail")
	if len(out) != 1 || out[0].ID != "ticket" {
		t.Fatalf("unexpected cart after removing unknown id: %v", out)
	}
}

func TestCartTotalAndSummary(t *testing.T) {
	c := Cart{}.Add(ticket()).Add(ticket()).Add(wine())
	if got := c.Total(); got != 6200 {
		t.Fatalf("expected total 6200, got %d", got)
	}
	if got := c.Summary(); got != "2× Ticket, 1× Wine" {
		t.Fatalf("unexpected summary: %q", got)
	}
}

func TestFormatCents(t *testing.T) {
	cases := map[int]string{
		0:    "$0.00",
		500:  "$5.00",
		1250: "$12.50",
		6200: "$62.00",
	}
	for cents, want := range cases {
		if got := FormatCents(cents); got != want {
			t.Errorf("FormatCents(%d) = %q, want %q", cents, got, want)
		}
	}
}

func TestPaymentLabels(t *testing.T) {
	cases := map[Payment]string{
		PaymentCash:       "Cash",
		PaymentCard:       "Card",
		PaymentCardOnFile: "Card on File",
		PaymentNone:       "No payment",
	}
	for payment, want := range cases {
		if got := payment.Label(); got != want {
			t.Errorf("Label(%q) = %q, want %q", payment, got, want)
		}
	}
}
