package feed

// PersonType classifies who a directory entry represents.
type PersonType string

const (
	PersonUser  PersonType = "user"
	PersonStaff PersonType = "staff"
	PersonAI    PersonType = "ai"
	PersonGuest PersonType = "guest"
)

// Person is a selectable identity: the operator, a staff member, a guest
// discovered from the feed, or one of the two synthetic directory entries.
type Person struct {
	ID     string
	Name   string
	Avatar string
	Type   PersonType

	// Special marks the synthetic "AI Concierge" and "Staff" group entries,
	// as opposed to concrete people discovered from feed history.
	Special bool
}

// AIConcierge is the synthetic AI directory entry, always listed first.
func AIConcierge() Person {
	return Person{ID: "ai", Name: "AI Concierge", Avatar: "🤖", Type: PersonAI, Special: true}
}

// StaffGroup is the synthetic group proxy for all staff, listed second.
func StaffGroup() Person {
	return Person{ID: "staff", Name: "Staff", Avatar: "👔", Type: PersonStaff, Special: true}
}
