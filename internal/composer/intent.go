package composer

import (
	"fmt"

	"github.com/rowanvale/foyer/internal/feed"
)

// Summarize previews what submit will do for the current modifier
// combination. Informational only; it never affects routing. The second
// return is false when nothing useful can be said yet.
func Summarize(s State, operator feed.Person) (string, bool) {
	guest := s.ForGuest()
	assignee := s.Assignee(operator)

	switch s.Action {
	case ActionCheckIn:
		if s.Assign {
			name := "guest"
			if guest != nil {
				name = guest.Name
			}
			return fmt.Sprintf("Assign → %s · Check-in %s", assignee.Name, name), true
		}
		if guest == nil {
			return "", false
		}
		return fmt.Sprintf("Check-in %s", guest.Name), true

	case ActionPOS:
		name := "no guest"
		if guest != nil {
			name = guest.Name
		}
		if s.Assign {
			return fmt.Sprintf("Assign → %s · POS for %s", assignee.Name, name), true
		}
		return fmt.Sprintf("POS for %s", name), true
	}

	if s.Assign {
		target := "task"
		if guest != nil {
			target = "for " + guest.Name
		}
		return fmt.Sprintf("Assign → %s · %s", assignee.Name, target), true
	}
	return "", false
}
