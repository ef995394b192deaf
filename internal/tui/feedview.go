package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rowanvale/foyer/internal/feed"
)

var (
	guestLineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F2A7CC"))
	conciergeLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AFCBFF"))
	taskLineStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD66B"))
	systemLineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9AE6B4"))
	timestampStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// entryMarkers renders the star/pin prefix for a feed entry.
func (a *App) entryMarkers(id string) string {
	marks := ""
	if a.pins != nil && a.pins.Pinned(id) {
		marks += "📌"
	}
	if a.pins != nil && a.pins.Starred(id) {
		marks += "★"
	}
	if marks != "" {
		marks += " "
	}
	return marks
}

// renderEntry renders one feed entry as a short multi-line block.
func (a *App) renderEntry(entry feed.Entry, selected bool, width int) string {
	stamp := timestampStyle.Render(entry.Timestamp.Format("15:04"))
	head := a.entryMarkers(entry.ID)
	var lines []string

	switch entry.Type {
	case feed.EntryGuest:
		head += guestLineStyle.Render(fmt.Sprintf("%s %s", entry.Avatar, entry.Name))
		lines = append(lines, fmt.Sprintf("%s %s", stamp, head), "  "+entry.Message)

	case feed.EntryConcierge:
		sender := "Concierge"
		if entry.Sender != nil {
			sender = entry.Sender.Name
		}
		head += conciergeLineStyle.Render(sender)
		if len(entry.Recipients) > 0 {
			names := make([]string, len(entry.Recipients))
			for i, r := range entry.Recipients {
				names[i] = r.Name
			}
			head += dimStyle.Render(" → " + strings.Join(names, ", "))
		}
		lines = append(lines, fmt.Sprintf("%s %s", stamp, head), "  "+entry.Message)

	case feed.EntryTask:
		head += taskLineStyle.Render(fmt.Sprintf("[%s] %s", entry.Status, entry.Title))
		lines = append(lines, fmt.Sprintf("%s %s", stamp, head))
		if entry.Description != "" && entry.Description != entry.Title {
			lines = append(lines, "  "+entry.Description)
		}
		detail := ""
		if entry.AssignedTo != nil {
			detail = "→ " + entry.AssignedTo.Name
		}
		if entry.ForGuest != nil {
			detail += " · for " + entry.ForGuest.Name
		}
		if entry.POS != nil {
			detail += fmt.Sprintf(" · %s · %s · %s",
				entry.POS.Cart.Summary(),
				feed.FormatCents(entry.POS.Cart.Total()),
				entry.POS.Payment.Label(),
			)
		}
		if detail != "" {
			lines = append(lines, "  "+dimStyle.Render(detail))
		}

	case feed.EntrySystem:
		head += systemLineStyle.Render("⚑ " + entry.Title)
		lines = append(lines, fmt.Sprintf("%s %s", stamp, head))
		// A note equal to the headline is never shown twice.
		if entry.Note != "" && entry.Note != entry.Title {
			lines = append(lines, "  "+dimStyle.Render(entry.Note))
		}
	}

	block := strings.Join(lines, "\n")
	style := lipgloss.NewStyle().Width(max(20, width))
	if selected {
		style = style.Bold(true).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(accentColor).
			PaddingLeft(1)
	}
	return style.Render(block)
}

// renderFeedContent renders the whole feed and records the first line of
// each entry so selection can be scrolled into view.
func (a *App) renderFeedContent(width int) (string, []int) {
	entries := a.feed.Entries()
	blocks := make([]string, 0, len(entries))
	offsets := make([]int, 0, len(entries))
	line := 0
	for i, entry := range entries {
		selected := a.focus == focusFeed && i == a.feedSelection
		block := a.renderEntry(entry, selected, width)
		offsets = append(offsets, line)
		line += lipgloss.Height(block) + 1
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n"), offsets
}
