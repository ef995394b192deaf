package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/rowanvale/foyer/internal/composer"
	"github.com/rowanvale/foyer/internal/feed"
)

// pickerKind identifies which overlay menu, if any, is open.
type pickerKind int

const (
	pickerNone pickerKind = iota
	pickerPeople
	pickerCatalog
	pickerPayment
)

// catalogItem implements list.Item for the point-of-sale catalog menu.
type catalogItem struct {
	item feed.LineItem
}

func (c catalogItem) Title() string {
	label := c.item.Name
	if c.item.Emoji != "" {
		label = c.item.Emoji + " " + label
	}
	return fmt.Sprintf("%s · %s", label, feed.FormatCents(c.item.UnitPrice))
}
func (c catalogItem) Description() string { return "Add to cart" }
func (c catalogItem) FilterValue() string { return c.item.Name }

// paymentItem implements list.Item for the payment method menu.
type paymentItem struct {
	payment feed.Payment
}

func (p paymentItem) Title() string       { return p.payment.Label() }
func (p paymentItem) Description() string { return "Settle the sale this way" }
func (p paymentItem) FilterValue() string { return p.payment.Label() }

func newCatalogMenu(items []feed.LineItem) list.Model {
	entries := make([]list.Item, len(items))
	for i, item := range items {
		entries[i] = catalogItem{item: item}
	}
	menu := list.New(entries, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Point of Sale"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	return menu
}

func newPaymentMenu() list.Model {
	entries := []list.Item{
		paymentItem{payment: feed.PaymentCash},
		paymentItem{payment: feed.PaymentCard},
		paymentItem{payment: feed.PaymentCardOnFile},
	}
	menu := list.New(entries, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Payment"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	return menu
}

// peoplePicker is the searchable directory menu. The search box filters by
// case-insensitive substring; rows render a checkbox that reflects the
// current selection without closing the menu.
type peoplePicker struct {
	search    textinput.Model
	selection int
}

func newPeoplePicker() peoplePicker {
	search := textinput.New()
	search.Placeholder = "Search people..."
	search.Prompt = "@ "
	return peoplePicker{search: search}
}

// visible returns the directory rows matching the current query.
func (p *peoplePicker) visible(entries []feed.Entry) []feed.Person {
	people := feed.Filter(feed.Directory(entries), p.search.Value())
	if p.selection >= len(people) {
		p.selection = max(0, len(people)-1)
	}
	return people
}

func (p *peoplePicker) open() {
	p.search.SetValue("")
	p.selection = 0
	p.search.Focus()
}

func (p *peoplePicker) close() {
	p.search.Blur()
}

func (p *peoplePicker) moveSelection(delta, total int) {
	if total == 0 {
		p.selection = 0
		return
	}
	p.selection += delta
	if p.selection < 0 {
		p.selection = 0
	}
	if p.selection >= total {
		p.selection = total - 1
	}
}

func (p *peoplePicker) view(people []feed.Person, state composer.State, width int) string {
	rows := []string{p.search.View()}
	if len(people) == 0 {
		rows = append(rows, dimStyle.Render("No people found"))
	}
	for i, person := range people {
		mark := "[ ]"
		if state.HasRecipient(person.ID) {
			mark = "[✓]"
		}
		label := fmt.Sprintf("%s %s %s", mark, person.Avatar, person.Name)
		if person.Special {
			tag := "Staff"
			if person.Type == feed.PersonAI {
				tag = "AI"
			}
			label += " · " + tag
		}
		style := lipgloss.NewStyle()
		if i == p.selection {
			style = style.Bold(true).Foreground(accentColor)
		}
		rows = append(rows, style.Render(label))
	}
	rows = append(rows, dimStyle.Render("Enter → add    Space → toggle    Esc → close"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(max(30, width)).
		Render(strings.Join(rows, "\n"))
}
