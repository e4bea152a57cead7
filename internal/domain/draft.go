package domain

import "time"

// DraftStatus represents the lifecycle state of a booking draft
type DraftStatus string

const (
	DraftOpen   DraftStatus = "open"
	DraftClosed DraftStatus = "closed"
)

// PlayerType determines which fee table applies to a draft row
type PlayerType string

const (
	PlayerMember  PlayerType = "member"
	PlayerVisitor PlayerType = "visitor"
)

// BookingDraft is an in-progress multi-player booking form for one open slot.
// Drafts are shared between pro shop terminals, so they live in storage
// rather than in a single browser session.
type BookingDraft struct {
	ID              int64
	TeeTimeID       int64
	TeeTime         time.Time
	Holes           int
	Status          DraftStatus
	CreatedBookings int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOpen returns true if the draft still accepts row changes and submission
func (d *BookingDraft) IsOpen() bool {
	return d.Status == DraftOpen
}

// DraftRow is one player line within a booking draft
type DraftRow struct {
	ID             int64
	DraftID        int64
	Position       int
	PlayerType     PlayerType
	Senior         bool
	Name           string
	Email          *string
	HandicapNumber *string
	MemberID       *int64
	Age            *int
	Prepaid        bool

	// Manually selected fee overrides the auto suggestion
	SelectedFeeID    *int64
	SelectedFeePrice *float64

	// Last applied auto suggestion
	AutoFeeID          *int64
	AutoFeePrice       *float64
	AutoFeeDescription *string
	// PricingUnavailable is set when the last suggestion lookup failed; the
	// row then contributes 0 to the total but must not look like a free round
	PricingUnavailable bool

	CartRequested   bool
	CartPrice       *float64
	CartDescription *string
	CartUnavailable bool

	PushCart bool
	Caddy    bool

	// SuggestionSeq is a monotonic sequence per row; a suggestion result is
	// applied only if its sequence is still the latest issued for the row
	SuggestionSeq int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsMember returns true for rows priced from the member fee table
func (r *DraftRow) IsMember() bool {
	return r.PlayerType == PlayerMember
}

// ResolvedFee returns the fee price charged for the row and whether the row
// is actually priced. Priority: manual selection, then the last successful
// auto suggestion. An unpriced row resolves to 0 but priced == false.
func (r *DraftRow) ResolvedFee() (price float64, priced bool) {
	if r.SelectedFeeID != nil && r.SelectedFeePrice != nil {
		return *r.SelectedFeePrice, true
	}
	if r.AutoFeeID != nil && r.AutoFeePrice != nil {
		return *r.AutoFeePrice, true
	}
	return 0, false
}

// IndividualCartPrice returns the row's own full cart price, 0 when the cart
// suggestion is missing or the row does not request a cart
func (r *DraftRow) IndividualCartPrice() float64 {
	if !r.CartRequested || r.CartPrice == nil {
		return 0
	}
	return *r.CartPrice
}

// FeeCategory is a fee table entry from the club backend, cached for the
// lifetime of one draft
type FeeCategory struct {
	ID          int64
	Code        int
	Description string
	Price       float64
}
