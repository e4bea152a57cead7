package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mergedRow(teeTime time.Time) *MergedRow {
	return &MergedRow{TeeTime: teeTime, Tee: "1", Capacity: 4}
}

func TestIsClosedAt(t *testing.T) {
	now := time.Date(2024, 3, 14, 10, 17, 0, 0, time.UTC)

	cases := []struct {
		name    string
		teeTime time.Time
		want    bool
	}{
		{"yesterday", time.Date(2024, 3, 13, 16, 0, 0, 0, time.UTC), true},
		{"tomorrow early morning", time.Date(2024, 3, 15, 6, 30, 0, 0, time.UTC), false},
		{"today before interval boundary", time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC), true},
		// 10:17 усекается до границы интервала 10:10
		{"today at interval boundary", time.Date(2024, 3, 14, 10, 10, 0, 0, time.UTC), false},
		{"today later", time.Date(2024, 3, 14, 15, 0, 0, 0, time.UTC), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, mergedRow(c.teeTime).IsClosedAt(now, DefaultIntervalMinutes))
		})
	}
}

func TestSlotsPadsToCapacity(t *testing.T) {
	now := time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)

	row := mergedRow(time.Date(2024, 3, 14, 15, 0, 0, 0, time.UTC))
	row.Bookings = []BookingSummary{{ID: 1, PlayerName: "Smith", Status: StatusBooked}}

	slots := row.Slots(now, DefaultIntervalMinutes)

	assert.Len(t, slots, 4)
	assert.Equal(t, SlotBooked, slots[0].State)
	assert.Equal(t, "Smith", slots[0].Booking.PlayerName)
	for _, s := range slots[1:] {
		assert.Equal(t, SlotOpen, s.State)
	}
}

func TestSlotsClosedRow(t *testing.T) {
	now := time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)

	row := mergedRow(time.Date(2024, 3, 13, 15, 0, 0, 0, time.UTC))
	row.Bookings = []BookingSummary{{ID: 1, PlayerName: "Smith", Status: StatusCompleted}}

	slots := row.Slots(now, DefaultIntervalMinutes)

	// Бронирования видны и на закрытой строке
	assert.Equal(t, SlotBooked, slots[0].State)
	for _, s := range slots[1:] {
		assert.Equal(t, SlotClosed, s.State)
	}
}

func TestSlotsOverCapacityKeepsAllBookings(t *testing.T) {
	now := time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)

	row := mergedRow(time.Date(2024, 3, 14, 15, 0, 0, 0, time.UTC))
	row.Capacity = 2
	row.Bookings = []BookingSummary{
		{ID: 1, Status: StatusBooked},
		{ID: 2, Status: StatusBooked},
		{ID: 3, Status: StatusBooked},
	}

	slots := row.Slots(now, DefaultIntervalMinutes)

	assert.Len(t, slots, 3)
	for _, s := range slots {
		assert.Equal(t, SlotBooked, s.State)
	}
}

func TestOccupies(t *testing.T) {
	assert.True(t, (&BookingSummary{Status: StatusBooked}).Occupies())
	assert.True(t, (&BookingSummary{Status: StatusCheckedIn}).Occupies())
	assert.True(t, (&BookingSummary{Status: StatusCompleted}).Occupies())
	assert.False(t, (&BookingSummary{Status: StatusCancelled}).Occupies())
	assert.False(t, (&BookingSummary{Status: StatusNoShow}).Occupies())
}

func TestResolvedFee(t *testing.T) {
	selected := 60.0
	auto := 90.0
	id := int64(1)

	row := &DraftRow{SelectedFeeID: &id, SelectedFeePrice: &selected, AutoFeeID: &id, AutoFeePrice: &auto}
	price, priced := row.ResolvedFee()
	assert.True(t, priced)
	assert.InDelta(t, 60, price, 1e-9)

	row = &DraftRow{AutoFeeID: &id, AutoFeePrice: &auto}
	price, priced = row.ResolvedFee()
	assert.True(t, priced)
	assert.InDelta(t, 90, price, 1e-9)

	row = &DraftRow{PricingUnavailable: true}
	price, priced = row.ResolvedFee()
	assert.False(t, priced)
	assert.InDelta(t, 0, price, 1e-9)
}
