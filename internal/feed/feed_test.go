package feed

import (
	"testing"
	"time"
)

func TestFeedAppendAndSnapshot(t *testing.T) {
	f := New(Entry{ID: "a", Type: EntrySystem, Title: "one"})
	f.Append(Entry{ID: "b", Type: EntrySystem, Title: "two"})

	if f.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", f.Len())
	}
	snapshot := f.Entries()
	snapshot[0].Title = "mutated"
	if f.Entries()[0].Title != "one" {
		t.Fatal("Entries must return a copy, not the backing slice")
	}
}

func TestSeedIsChronological(t *testing.T) {
	now := time.Date(2026, 8, 31, 19, 0, 0, 0, time.UTC)
	entries := Seed(now)
	if len(entries) == 0 {
		t.Fatal("seed produced no entries")
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.Before(entries[i-1].Timestamp) {
			t.Fatalf("entry %d (%s) is older than its predecessor", i, entries[i].ID)
		}
	}
	for _, entry := range entries {
		if entry.ID == "" || entry.Type == "" {
			t.Fatalf("seed entry missing id or type: %+v", entry)
		}
	}
}

func TestSeedFeedsTheDirectory(t *testing.T) {
	entries := Seed(time.Now())
	people := Directory(entries)
	var guests, staff int
	for _, p := range people {
		switch {
		case p.Type == PersonGuest:
			guests++
		case p.Type == PersonStaff && !p.Special:
			staff++
		}
	}
	if guests == 0 {
		t.Fatal("seed should surface guests in the directory")
	}
	if staff == 0 {
		t.Fatal("seed should surface staff in the directory")
	}
}
