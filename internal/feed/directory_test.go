package feed

import "testing"

func directoryFixture() []Entry {
	ana := Person{ID: "staff-ana", Name: "Ana Silva", Avatar: "AS", Type: PersonStaff}
	jordan := Person{Name: "Jordan Kim", Type: PersonStaff}
	guestTyped := Person{ID: "g-x", Name: "Sarah Chen", Type: PersonGuest}
	return []Entry{
		{ID: "guest-1", Type: EntryGuest, Name: "Sarah Chen", Avatar: "SC"},
		{ID: "task-1", Type: EntryTask, Title: "Restock", AssignedTo: &ana},
		{ID: "guest-2", Type: EntryGuest, Name: "Marcus Johnson"},
		// Same name, different entry id: stays a distinct person.
		{ID: "guest-3", Type: EntryGuest, Name: "Sarah Chen", Avatar: "SC"},
		// Duplicate discovery by name is collapsed, first wins.
		{ID: "task-2", Type: EntryTask, Title: "Clean up", AssignedTo: &ana},
		{ID: "conc-1", Type: EntryConcierge, Message: "On it", Sender: &jordan},
		// Guest-typed assignee never lands in the staff list.
		{ID: "task-3", Type: EntryTask, Title: "Scan ticket", AssignedTo: &guestTyped},
	}
}

func TestDirectorySyntheticEntriesFirst(t *testing.T) {
	people := Directory(nil)
	if len(people) != 2 {
		t.Fatalf("expected only synthetic entries for empty feed, got %d", len(people))
	}
	if people[0].ID != "ai" || !people[0].Special {
		t.Fatalf("expected AI Concierge first, got %+v", people[0])
	}
	if people[1].ID != "staff" || people[1].Type != PersonStaff {
		t.Fatalf("expected Staff group second, got %+v", people[1])
	}
}

func TestDirectoryDiscoversPeopleInScanOrder(t *testing.T) {
	people := Directory(directoryFixture())

	wantNames := []string{"AI Concierge", "Staff", "Sarah Chen", "Ana Silva", "Marcus Johnson", "Sarah Chen", "Jordan Kim"}
	if len(people) != len(wantNames) {
		t.Fatalf("expected %d people, got %d: %+v", len(wantNames), len(people), people)
	}
	for i, want := range wantNames {
		if people[i].Name != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, people[i].Name)
		}
	}

	// The two Sarah Chens come from distinct entries and keep distinct ids.
	if people[2].ID == people[5].ID {
		t.Fatalf("name collision collapsed distinct guests: %q", people[2].ID)
	}
}

func TestDirectoryStaffFirstOccurrenceWins(t *testing.T) {
	first := Person{Name: "Ana Silva", Avatar: "A1", Type: PersonStaff}
	second := Person{Name: "Ana Silva", Avatar: "A2", Type: PersonStaff}
	people := Directory([]Entry{
		{ID: "t1", Type: EntryTask, AssignedTo: &first},
		{ID: "t2", Type: EntryTask, AssignedTo: &second},
	})
	var found []Person
	for _, p := range people {
		if p.Name == "Ana Silva" {
			found = append(found, p)
		}
	}
	if len(found) != 1 {
		t.Fatalf("expected one Ana Silva, got %d", len(found))
	}
	if found[0].Avatar != "A1" {
		t.Fatalf("expected first occurrence to win, got avatar %q", found[0].Avatar)
	}
}

func TestDirectoryGuestAvatarFallsBackToInitial(t *testing.T) {
	people := Directory([]Entry{{ID: "g1", Type: EntryGuest, Name: "Marcus Johnson"}})
	if got := people[2].Avatar; got != "M" {
		t.Fatalf("expected initial fallback avatar, got %q", got)
	}
}

func TestStaffExcludesGroupProxy(t *testing.T) {
	staff := Staff(directoryFixture())
	if len(staff) != 2 {
		t.Fatalf("expected 2 staff, got %d: %+v", len(staff), staff)
	}
	for _, p := range staff {
		if p.Special {
			t.Fatalf("group proxy leaked into staff list: %+v", p)
		}
	}
}

func TestFilter(t *testing.T) {
	people := Directory(directoryFixture())

	if got := Filter(people, ""); len(got) != len(people) {
		t.Fatalf("empty query should return everyone, got %d of %d", len(got), len(people))
	}
	if got := Filter(people, "  "); len(got) != len(people) {
		t.Fatalf("whitespace query should return everyone, got %d", len(got))
	}

	got := Filter(people, "sArAh")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for sarah, got %d", len(got))
	}
	for _, p := range got {
		if p.Name != "Sarah Chen" {
			t.Fatalf("unexpected match %q", p.Name)
		}
	}

	if got := Filter(people, "nobody"); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}
