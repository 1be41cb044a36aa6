// Package favorites ranks a customer's bays for quick rebooking and
// persists starred favorites. Everything here is best-effort: a favorites
// failure must never block or fail the booking path.
package favorites

import (
	"sort"

	"github.com/simlane/bay-booking-backend/internal/booking"
	"github.com/simlane/bay-booking-backend/internal/resource"
)

// Entry is one ranked bay.
type Entry struct {
	ResourceID string
	Number     int
	Name       string
	Starred    bool
	Frequency  int
}

// Rank orders a location's resources for the quick-rebook list: starred
// favorites first (by number), then the rest by descending booking
// frequency with ties broken by ascending number. history is the
// customer's bookings at this location, newest first.
func Rank(resources []*resource.Resource, starred map[string]bool, history []*booking.Booking) []Entry {
	freq := make(map[string]int)
	for _, b := range history {
		for _, id := range b.ResourceIDs {
			freq[id]++
		}
	}

	entries := make([]Entry, 0, len(resources))
	for _, res := range resources {
		entries = append(entries, Entry{
			ResourceID: res.ID,
			Number:     res.Number,
			Name:       res.Name,
			Starred:    starred[res.ID],
			Frequency:  freq[res.ID],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Starred != b.Starred {
			return a.Starred
		}
		if a.Starred && b.Starred {
			return a.Number < b.Number
		}
		if a.Frequency != b.Frequency {
			return a.Frequency > b.Frequency
		}
		return a.Number < b.Number
	})

	return entries
}

// LastSetup returns the resource ids of the customer's most recent
// booking, used for one-click "rebook last setup". history must be newest
// first; an empty history yields nil.
func LastSetup(history []*booking.Booking) []string {
	if len(history) == 0 {
		return nil
	}
	return append([]string(nil), history[0].ResourceIDs...)
}
