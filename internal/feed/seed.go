package feed

import (
	"sort"
	"time"
)

// Seed generates the demo shift: a mix of guest messages, tasks, concierge
// replies, and system notices spread over the last half hour. Chronological
// order, oldest first.
func Seed(now time.Time) []Entry {
	ago := func(minutes int) time.Time { return now.Add(-time.Duration(minutes) * time.Minute) }
	staff := func(name, avatar string) *Person {
		return &Person{ID: "staff-" + name, Name: name, Avatar: avatar, Type: PersonStaff}
	}
	guest := func(name, avatar string) *Person {
		return &Person{Name: name, Avatar: avatar, Type: PersonGuest}
	}

	entries := []Entry{
		{ID: "sys-1", Type: EntrySystem, Title: "Arrivals spike: +12 in 10m", Note: "Unusual increase in arrivals detected", Timestamp: ago(5)},
		{ID: "sys-2", Type: EntrySystem, Title: "Performance starting soon", Note: "DOKU performance begins in 12 minutes", Timestamp: ago(3)},
		{ID: "sys-3", Type: EntrySystem, Title: "High service demand", Note: "3 active drink orders pending", Timestamp: ago(9)},
		{ID: "sys-4", Type: EntrySystem, Title: "Ticket sales update", Note: "139 tickets sold out of 150 capacity", Timestamp: ago(11)},

		{ID: "task-1", Type: EntryTask, Category: "ticket", Title: "Scan ticket for Gallery 4", Description: "Guest at entrance needs ticket validation", Status: TaskPending, AssignedTo: guest("Sarah Chen", "SC"), Timestamp: ago(3)},
		{ID: "task-2", Type: EntryTask, Category: "ticket", Title: "Ticket scan failed - manual entry required", Description: "QR code unreadable, need to enter ticket number manually", Status: TaskPending, AssignedTo: guest("Marcus Johnson", "MJ"), Timestamp: ago(8)},
		{ID: "task-3", Type: EntryTask, Category: "ticket", Title: "Walk-up ticket sale completed", Description: "Sold 2 tickets at Gallery 1 entrance", Status: TaskCompleted, AssignedTo: staff("Alex Rivera", "AR"), Timestamp: ago(12)},
		{ID: "task-4", Type: EntryTask, Category: "service", Title: "Drink order for Gallery 4", Description: "Wine order for table 3", Location: "gallery-4", Status: TaskPending, AssignedTo: guest("Emma Rodriguez", "ER"), Timestamp: ago(2)},
		{ID: "task-5", Type: EntryTask, Category: "service", Title: "Restock bar supplies", Description: "Low on wine glasses and napkins", Status: TaskPending, AssignedTo: staff("Jordan Kim", "JK"), Timestamp: ago(18)},
		{ID: "task-6", Type: EntryTask, Category: "service", Title: "Clean up Gallery 2", Description: "Spill reported near installation", Status: TaskCompleted, AssignedTo: staff("Taylor Morgan", "TM"), Timestamp: ago(25)},
		{ID: "task-7", Type: EntryTask, Category: "service", Title: "Assist guest with accessibility needs", Description: "Guest requested wheelchair access information", Status: TaskPending, AssignedTo: guest("David Kim", "DK"), Timestamp: ago(6)},
		{ID: "task-8", Type: EntryTask, Category: "ticket", Title: "Process group booking", Description: "Party of 8 needs tickets for tonight's performance", Status: TaskPending, AssignedTo: guest("Priya Patel", "PP"), Timestamp: ago(13)},
		{ID: "task-9", Type: EntryTask, Category: "service", Title: "Check temperature in Gallery 3", Description: "Guest reported it feels too warm", Status: TaskCompleted, AssignedTo: staff("Casey Lee", "CL"), Timestamp: ago(20)},

		{ID: "guest-1", Type: EntryGuest, Name: "Sarah Chen", Avatar: "SC", Message: "Can we get another drink? We're at table 5 in Gallery 3.", Timestamp: ago(1)},
		{ID: "guest-2", Type: EntryGuest, Name: "Marcus Johnson", Avatar: "MJ", Message: "Where is the restroom?", Timestamp: ago(4)},
		{ID: "guest-3", Type: EntryGuest, Name: "Emma Rodriguez", Avatar: "ER", Message: "Is the performance still happening? We want to buy tickets.", Timestamp: ago(7)},
		{ID: "guest-4", Type: EntryGuest, Name: "David Kim", Avatar: "DK", Message: "The audio in Gallery 1 seems too loud. Can someone check?", Timestamp: ago(10)},
		{ID: "guest-5", Type: EntryGuest, Name: "Alex Thompson", Avatar: "AT", Message: "Can someone help us find the exit? We're near Gallery 2.", Timestamp: ago(14)},
		{ID: "guest-6", Type: EntryGuest, Name: "Priya Patel", Avatar: "PP", Message: "The artwork description card is missing in Gallery 1. Can it be replaced?", Timestamp: ago(16)},

		{ID: "concierge-1", Type: EntryConcierge, Message: "Performance starts in 12 minutes. You can purchase tickets at the Gallery 4 entrance or use the ticket scanner.", Timestamp: ago(6)},
		{ID: "concierge-2", Type: EntryConcierge, Message: "Restrooms are located on the second floor, near the main staircase. There are also facilities on the ground floor near Gallery 2.", Timestamp: ago(4)},
		{ID: "concierge-3", Type: EntryConcierge, Message: "I've notified the service team about your drink order. It should arrive at table 5 within 5-7 minutes.", Timestamp: ago(1)},
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	return entries
}
