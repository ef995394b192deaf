package feed

import "strings"

// Directory derives the selectable people from the feed contents. The two
// synthetic entries come first, in fixed order, then people discovered in
// feed-scan order: guests keyed by entry id, staff keyed by name (from task
// assignees and concierge senders). First occurrence wins in both cases.
// Name collisions across distinct ids stay distinct.
func Directory(entries []Entry) []Person {
	people := []Person{AIConcierge(), StaffGroup()}
	seen := map[string]struct{}{}
	for _, entry := range entries {
		switch entry.Type {
		case EntryGuest:
			if entry.Name == "" {
				continue
			}
			key := "guest-" + entry.ID
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			people = append(people, Person{
				ID:     entry.ID,
				Name:   entry.Name,
				Avatar: avatarFor(entry.Avatar, entry.Name),
				Type:   PersonGuest,
			})
		case EntryTask:
			people = appendStaff(people, seen, entry.AssignedTo)
		case EntryConcierge:
			people = appendStaff(people, seen, entry.Sender)
		}
	}
	return people
}

// Staff returns only the individually discovered staff members, excluding
// the group proxy. Used to populate the staff sub-menu.
func Staff(entries []Entry) []Person {
	all := Directory(entries)
	out := make([]Person, 0, len(all))
	for _, p := range all {
		if p.Type == PersonStaff && !p.Special {
			out = append(out, p)
		}
	}
	return out
}

// Filter narrows people by case-insensitive substring match on name. An
// empty query returns the input unfiltered.
func Filter(people []Person, query string) []Person {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return people
	}
	out := make([]Person, 0, len(people))
	for _, p := range people {
		if strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p)
		}
	}
	return out
}

func appendStaff(people []Person, seen map[string]struct{}, p *Person) []Person {
	if p == nil || p.Type != PersonStaff || p.Name == "" {
		return people
	}
	key := "staff-" + p.Name
	if _, ok := seen[key]; ok {
		return people
	}
	seen[key] = struct{}{}
	return append(people, Person{
		ID:     key,
		Name:   p.Name,
		Avatar: avatarFor(p.Avatar, p.Name),
		Type:   PersonStaff,
	})
}

func avatarFor(avatar, name string) string {
	if avatar != "" {
		return avatar
	}
	if name == "" {
		return "?"
	}
	return string([]rune(name)[0])
}
