package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rowanvale/foyer/internal/composer"
	"github.com/rowanvale/foyer/internal/feed"
)

var (
	accentColor = lipgloss.Color("#5B8DEF")
	borderColor = lipgloss.Color("#444444")
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	pillPeopleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AFCBFF")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2D5CC8")).
			Padding(0, 1)
	pillGuestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F2A7CC")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#A23B6E")).
			Padding(0, 1)
	pillActionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD66B")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#B8860B")).
			Padding(0, 1)
	pillWrapperStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#CCCCCC")).
				Border(lipgloss.NormalBorder()).
				BorderForeground(borderColor).
				Padding(0, 1)
)

// suggestedPrompts fills the empty composer the way the web client's
// prompt chips did.
var suggestedPrompts = []string{
	"Check arrivals status",
	"View active tasks",
	"Performance schedule",
	"Guest requests",
}

// renderPills lays the pill row out in the contract order produced by
// composer.Pills.
func renderPills(pills []composer.Pill) string {
	if len(pills) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(pills))
	for _, pill := range pills {
		label := pill.Label
		if pill.Emoji != "" {
			label = pill.Emoji + " " + label
		}
		if pill.Removable {
			label += " ✕"
		}
		rendered = append(rendered, pillStyleFor(pill).Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
}

func pillStyleFor(pill composer.Pill) lipgloss.Style {
	switch pill.Kind {
	case composer.PillRecipient:
		if pill.Recipient != nil && pill.Recipient.Type == feed.PersonGuest {
			return pillGuestStyle
		}
		return pillPeopleStyle
	case composer.PillAssign:
		return pillWrapperStyle
	default:
		return pillActionStyle
	}
}

// placeholderFor matches the web composer's contextual input hints.
func placeholderFor(state composer.State) string {
	switch {
	case state.Assign:
		return "Task description…"
	case state.Action == composer.ActionPOS:
		return "Add note (optional)…"
	default:
		return "Ask or act…"
	}
}
