package domain

import "time"

// BookingStatus represents the status of a tee sheet booking
type BookingStatus string

const (
	StatusBooked    BookingStatus = "booked"
	StatusCheckedIn BookingStatus = "checked_in"
	StatusCompleted BookingStatus = "completed"
	StatusNoShow    BookingStatus = "no_show"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingSummary represents one player booked into a tee time
type BookingSummary struct {
	ID             int64
	PlayerName     string
	PlayerEmail    *string
	Status         BookingStatus
	Price          float64
	MemberID       *int64
	HandicapNumber *string
}

// Occupies returns true if the booking takes up a slot on the tee sheet.
// Cancelled and no-show bookings do not block capacity.
func (b *BookingSummary) Occupies() bool {
	for _, status := range NonOccupyingStatuses {
		if b.Status == status {
			return false
		}
	}
	return true
}

// TeeTime represents a raw scheduled tee-off fetched from the club backend
type TeeTime struct {
	ID       int64
	TeeTime  time.Time
	Tee      string // starting hole label, e.g. "1" or "10"
	Capacity int
	Status   string
	Bookings []BookingSummary
}

// SlotState classification of a single player position within a merged row
type SlotState string

const (
	SlotBooked SlotState = "booked"
	SlotOpen   SlotState = "open"
	SlotClosed SlotState = "closed"
)

// Slot is one of Capacity player positions within a merged row
type Slot struct {
	State   SlotState
	Booking *BookingSummary // set only when State == SlotBooked
}

// MergedRow groups all raw tee time records sharing the same
// minute-truncated instant and tee label into one display row
type MergedRow struct {
	TeeTimeID int64 // ID of the first raw record in the group
	TeeTime   time.Time
	Tee       string
	Capacity  int
	Bookings  []BookingSummary
	// OverCapacity signals a data integrity problem: the group holds more
	// occupying bookings than the first record's capacity. Rendered, not fatal.
	OverCapacity bool
}

// IsClosedAt returns true if the row is no longer bookable at the given moment.
// A row is closed when its calendar date is before today, or - on the current
// day - when its instant is earlier than now truncated down to the scheduling
// interval boundary. Rows on future dates are never closed.
func (r *MergedRow) IsClosedAt(now time.Time, intervalMinutes int) bool {
	rowDate := time.Date(r.TeeTime.Year(), r.TeeTime.Month(), r.TeeTime.Day(), 0, 0, 0, 0, r.TeeTime.Location())
	nowDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if rowDate.Before(nowDate) {
		return true
	}
	if rowDate.After(nowDate) {
		return false
	}

	if intervalMinutes <= 0 {
		intervalMinutes = DefaultIntervalMinutes
	}
	boundaryMinute := (now.Hour()*60 + now.Minute()) / intervalMinutes * intervalMinutes
	boundary := nowDate.Add(time.Duration(boundaryMinute) * time.Minute)

	return r.TeeTime.Before(boundary)
}

// Slots expands the row into exactly Capacity positions: occupied bookings
// first, then open or closed placeholders depending on the evaluation moment.
// Over-capacity rows return more than Capacity positions so every booking
// stays visible.
func (r *MergedRow) Slots(now time.Time, intervalMinutes int) []Slot {
	closed := r.IsClosedAt(now, intervalMinutes)

	total := r.Capacity
	if len(r.Bookings) > total {
		total = len(r.Bookings)
	}

	slots := make([]Slot, 0, total)
	for i := range r.Bookings {
		slots = append(slots, Slot{State: SlotBooked, Booking: &r.Bookings[i]})
	}
	for len(slots) < total {
		if closed {
			slots = append(slots, Slot{State: SlotClosed})
		} else {
			slots = append(slots, Slot{State: SlotOpen})
		}
	}

	return slots
}
