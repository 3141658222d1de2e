package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("illegal status transition")
	ErrInvalidPrice      = errors.New("price must be positive")
	ErrAlreadyFinalized  = errors.New("booking is already finalized")
)

// MissingFieldError names the absent required field so callers can report it
// back to the client verbatim.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing field: %s", e.Field)
}

type Booking struct {
	id         uuid.UUID
	userEmail  string
	courtID    uuid.UUID
	courtTitle string
	courtType  string
	date       time.Time
	slots      []string
	priceCents int64
	couponCode *string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(
	userEmail string,
	courtID uuid.UUID,
	courtTitle, courtType string,
	date time.Time,
	slots []string,
	priceCents int64,
	couponCode *string,
	now time.Time,
) (*Booking, error) {
	if strings.TrimSpace(userEmail) == "" {
		return nil, MissingFieldError{Field: "userEmail"}
	}
	if courtID == uuid.Nil {
		return nil, MissingFieldError{Field: "courtId"}
	}
	if strings.TrimSpace(courtTitle) == "" {
		return nil, MissingFieldError{Field: "courtTitle"}
	}
	if strings.TrimSpace(courtType) == "" {
		return nil, MissingFieldError{Field: "courtType"}
	}
	if date.IsZero() {
		return nil, MissingFieldError{Field: "date"}
	}
	if len(slots) == 0 {
		return nil, MissingFieldError{Field: "slots"}
	}
	for _, s := range slots {
		if strings.TrimSpace(s) == "" {
			return nil, MissingFieldError{Field: "slots"}
		}
	}
	if priceCents <= 0 {
		return nil, ErrInvalidPrice
	}

	return &Booking{
		id:         uuid.New(),
		userEmail:  userEmail,
		courtID:    courtID,
		courtTitle: courtTitle,
		courtType:  courtType,
		date:       date,
		slots:      slots,
		priceCents: priceCents,
		couponCode: couponCode,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	userEmail string,
	courtID uuid.UUID,
	courtTitle, courtType string,
	date time.Time,
	slots []string,
	priceCents int64,
	couponCode *string,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		userEmail:  userEmail,
		courtID:    courtID,
		courtTitle: courtTitle,
		courtType:  courtType,
		date:       date,
		slots:      slots,
		priceCents: priceCents,
		couponCode: couponCode,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// TransitionTo enforces the legal transition set:
// pending→approved, pending→rejected, approved→confirmed, approved→rejected.
func (b *Booking) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	b.updatedAt = now
	return nil
}

// Confirmed bookings are paid; they cannot be deleted without a refund flow.
func (b *Booking) IsDeletable() bool {
	return b.status != StatusConfirmed
}

func (b *Booking) IsActive() bool {
	return b.status != StatusRejected
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserEmail() string    { return b.userEmail }
func (b *Booking) CourtID() uuid.UUID   { return b.courtID }
func (b *Booking) CourtTitle() string   { return b.courtTitle }
func (b *Booking) CourtType() string    { return b.courtType }
func (b *Booking) Date() time.Time      { return b.date }
func (b *Booking) Slots() []string      { return b.slots }
func (b *Booking) PriceCents() int64    { return b.priceCents }
func (b *Booking) CouponCode() *string  { return b.couponCode }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
