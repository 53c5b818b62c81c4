package domain

import "sort"

// SortByTriage orders bookings in place for dispatch: priority score
// descending, then booking time ascending, so the highest-urgency
// longest-waiting request comes first. The sort is stable and is meant
// to be recomputed on every call, since bookings are created, confirmed
// and removed continuously.
func SortByTriage(bookings []*Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		scoreI := bookings[i].Priority.Score()
		scoreJ := bookings[j].Priority.Score()
		if scoreI != scoreJ {
			return scoreI > scoreJ
		}
		return bookings[i].BookingTime.Before(bookings[j].BookingTime)
	})
}
