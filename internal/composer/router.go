package composer

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rowanvale/foyer/internal/feed"
)

// CanSubmit is the readiness predicate: free text, a recipient, an active
// point-of-sale, the Assign wrapper, or a check-in with at least one guest.
func CanSubmit(s State) bool {
	if strings.TrimSpace(s.Text) != "" || len(s.Recipients) > 0 {
		return true
	}
	if s.Action == ActionPOS || s.Assign {
		return true
	}
	return s.Action == ActionCheckIn && len(s.Guests()) > 0
}

// CheckInBlocked reports the check-in specific guard: the action is active
// but no guest is selected. It is stricter than CanSubmit and takes
// precedence; the UI prompts for a guest or a QR scan.
func CheckInBlocked(s State) bool {
	return s.Action == ActionCheckIn && len(s.Guests()) == 0
}

// Router turns a submitted composer state into domain events for the host
// feed. Clock and NewID are injectable for deterministic tests.
type Router struct {
	Operator feed.Person
	Clock    func() time.Time
	NewID    func() string
}

// NewRouter builds a router emitting on behalf of the given operator.
func NewRouter(operator feed.Person) *Router {
	return &Router{
		Operator: operator,
		Clock:    time.Now,
		NewID:    uuid.NewString,
	}
}

// Submit resolves the state into one of four outcomes: executed check-ins
// (one per guest), an executed sale, an assigned task, or a plain message.
// It returns the reset state plus the emitted entries, or (s, nil, false)
// when submission is blocked. Emission and reset are one atomic step; a
// stale double-submit finds an empty state and no-ops.
func (r *Router) Submit(s State) (State, []feed.Entry, bool) {
	if !CanSubmit(s) || CheckInBlocked(s) {
		return s, nil, false
	}
	text := strings.TrimSpace(s.Text)
	now := r.Clock()
	var out []feed.Entry

	switch {
	case s.Action == ActionCheckIn:
		assignee := s.Assignee(r.Operator)
		for _, g := range s.Guests() {
			g := g
			if s.Assign {
				desc := "Check-in " + g.Name
				if text != "" {
					desc += " - " + text
				}
				out = append(out, r.task(desc, nil, assignee, &g, now))
				continue
			}
			out = append(out, feed.Entry{
				ID:        "checkin-" + r.NewID(),
				Type:      feed.EntrySystem,
				Title:     "Checked in: " + g.Name,
				Note:      text,
				Timestamp: now,
			})
		}

	case s.Action == ActionPOS:
		assignee := s.Assignee(r.Operator)
		if s.Assign {
			payload := &feed.POSPayload{Cart: s.Cart.Clone(), Payment: s.Payment}
			out = append(out, r.task(text, payload, assignee, s.ForGuest(), now))
			break
		}
		total := s.Cart.Total()
		out = append(out, feed.Entry{
			ID:        "pos-" + r.NewID(),
			Type:      feed.EntrySystem,
			Title:     "POS completed: " + s.Cart.Summary() + " · " + feed.FormatCents(total) + " · " + s.Payment.Label(),
			Note:      text,
			Timestamp: now,
			Receipt: &feed.Receipt{
				Cart:     s.Cart.Clone(),
				Payment:  s.Payment,
				Total:    total,
				ForGuest: s.ForGuest(),
			},
		})

	case s.Assign:
		out = append(out, r.task(text, nil, s.Assignee(r.Operator), s.ForGuest(), now))

	default:
		body := text
		if body == "" {
			body = "No message"
		}
		sender := r.Operator
		recipients := make([]feed.Person, len(s.Recipients))
		copy(recipients, s.Recipients)
		out = append(out, feed.Entry{
			ID:         "message-" + r.NewID(),
			Type:       feed.EntryConcierge,
			Message:    body,
			Timestamp:  now,
			Sender:     &sender,
			Recipients: recipients,
		})
	}

	return State{}, out, true
}

// task builds an assigned-task entry. With a POS payload the title is
// always the literal "Complete purchase" and the description survives only
// as a note when it differs from that title; without one the title is the
// description itself, falling back to a generic placeholder. A description
// equal to the title is never stored twice.
func (r *Router) task(description string, payload *feed.POSPayload, assignee feed.Person, forGuest *feed.Person, now time.Time) feed.Entry {
	description = strings.TrimSpace(description)
	title := description
	if payload != nil {
		title = "Complete purchase"
	} else if title == "" {
		title = "New Task"
	}
	note := description
	if note == title {
		note = ""
	}
	return feed.Entry{
		ID:          "task-" + r.NewID(),
		Type:        feed.EntryTask,
		Category:    "service",
		Title:       title,
		Description: note,
		Status:      feed.TaskAssigned,
		Timestamp:   now,
		AssignedTo:  &assignee,
		ForGuest:    forGuest,
		POS:         payload,
	}
}
