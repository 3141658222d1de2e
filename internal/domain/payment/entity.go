package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrBookingRequired = errors.New("booking reference is required")
	ErrPayerRequired   = errors.New("payer identity is required")
)

// StatusPaid is the only status this path ever produces; payments are
// immutable once written.
const StatusPaid = "paid"

type Payment struct {
	id            uuid.UUID
	userEmail     string
	bookingID     uuid.UUID
	amountCents   int64
	transactionID string
	status        string
	createdAt     time.Time
}

func NewPayment(userEmail string, bookingID uuid.UUID, amountCents int64, transactionID string, now time.Time) (*Payment, error) {
	if userEmail == "" {
		return nil, ErrPayerRequired
	}
	if bookingID == uuid.Nil {
		return nil, ErrBookingRequired
	}
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	return &Payment{
		id:            uuid.New(),
		userEmail:     userEmail,
		bookingID:     bookingID,
		amountCents:   amountCents,
		transactionID: transactionID,
		status:        StatusPaid,
		createdAt:     now,
	}, nil
}

func (p *Payment) ID() uuid.UUID         { return p.id }
func (p *Payment) UserEmail() string     { return p.userEmail }
func (p *Payment) BookingID() uuid.UUID  { return p.bookingID }
func (p *Payment) AmountCents() int64    { return p.amountCents }
func (p *Payment) TransactionID() string { return p.transactionID }
func (p *Payment) Status() string        { return p.status }
func (p *Payment) CreatedAt() time.Time  { return p.createdAt }
