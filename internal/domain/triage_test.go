package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityScore(t *testing.T) {
	assert.Equal(t, 3, PriorityEmergency.Score())
	assert.Equal(t, 2, PriorityUrgent.Score())
	assert.Equal(t, 1, PriorityNormal.Score())
	assert.Equal(t, 0, Priority("WHATEVER").Score())
	assert.Equal(t, 0, Priority("").Score())
}

func TestSortByTriage_PriorityBeatsBookingTime(t *testing.T) {
	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	urgent := &Booking{ID: 1, Priority: PriorityUrgent, BookingTime: base}
	emergency := &Booking{ID: 2, Priority: PriorityEmergency, BookingTime: base.Add(time.Hour)}

	queue := []*Booking{urgent, emergency}
	SortByTriage(queue)

	// EMERGENCY идёт первым, даже если заявка создана позже
	require.Equal(t, int64(2), queue[0].ID)
	require.Equal(t, int64(1), queue[1].ID)
}

func TestSortByTriage_TieBreakByBookingTime(t *testing.T) {
	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	a := &Booking{ID: 1, Priority: PriorityNormal, BookingTime: base}
	b := &Booking{ID: 2, Priority: PriorityNormal, BookingTime: base.Add(time.Minute)}

	queue := []*Booking{b, a}
	SortByTriage(queue)

	require.Equal(t, int64(1), queue[0].ID)
	require.Equal(t, int64(2), queue[1].ID)
}

func TestSortByTriage_UnknownPriorityGoesLast(t *testing.T) {
	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	unknown := &Booking{ID: 1, Priority: Priority("CRITICAL"), BookingTime: base}
	normal := &Booking{ID: 2, Priority: PriorityNormal, BookingTime: base.Add(time.Hour)}

	queue := []*Booking{unknown, normal}
	SortByTriage(queue)

	require.Equal(t, int64(2), queue[0].ID)
	require.Equal(t, int64(1), queue[1].ID)
}

func TestSortByTriage_AdjacentPairsOrdered(t *testing.T) {
	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	queue := []*Booking{
		{ID: 1, Priority: PriorityNormal, BookingTime: base.Add(3 * time.Minute)},
		{ID: 2, Priority: PriorityEmergency, BookingTime: base.Add(5 * time.Minute)},
		{ID: 3, Priority: PriorityUrgent, BookingTime: base.Add(1 * time.Minute)},
		{ID: 4, Priority: Priority("???"), BookingTime: base},
		{ID: 5, Priority: PriorityUrgent, BookingTime: base.Add(2 * time.Minute)},
		{ID: 6, Priority: PriorityEmergency, BookingTime: base},
	}
	SortByTriage(queue)

	for i := 0; i < len(queue)-1; i++ {
		a, b := queue[i], queue[i+1]
		if a.Priority.Score() == b.Priority.Score() {
			assert.False(t, a.BookingTime.After(b.BookingTime),
				"bookings %d and %d out of order by time", a.ID, b.ID)
		} else {
			assert.Greater(t, a.Priority.Score(), b.Priority.Score(),
				"bookings %d and %d out of order by score", a.ID, b.ID)
		}
	}
}
