package coupon

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCode        = errors.New("coupon code is required")
	ErrInvalidDiscount  = errors.New("discount amount must be positive")
	ErrCouponExpired    = errors.New("coupon has expired")
	ErrCouponNotStarted = errors.New("coupon is not yet valid")
)

type Coupon struct {
	id            uuid.UUID
	code          string
	discountCents int64
	validFrom     *time.Time
	validTo       *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewCoupon(code string, discountCents int64, validFrom, validTo *time.Time, now time.Time) (*Coupon, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrEmptyCode
	}
	if discountCents <= 0 {
		return nil, ErrInvalidDiscount
	}

	return &Coupon{
		id:            uuid.New(),
		code:          code,
		discountCents: discountCents,
		validFrom:     validFrom,
		validTo:       validTo,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructCoupon(
	id uuid.UUID,
	code string,
	discountCents int64,
	validFrom, validTo *time.Time,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:            id,
		code:          code,
		discountCents: discountCents,
		validFrom:     validFrom,
		validTo:       validTo,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ValidateUsage checks the optional validity window. Coupons without a window
// are always usable.
func (c *Coupon) ValidateUsage(t time.Time) error {
	if c.validFrom != nil && t.Before(*c.validFrom) {
		return ErrCouponNotStarted
	}
	if c.validTo != nil && t.After(*c.validTo) {
		return ErrCouponExpired
	}
	return nil
}

// ApplyDiscount subtracts the absolute discount, clamped at zero.
func (c *Coupon) ApplyDiscount(basePriceCents int64) int64 {
	result := basePriceCents - c.discountCents
	if result < 0 {
		result = 0
	}
	return result
}

func (c *Coupon) ID() uuid.UUID         { return c.id }
func (c *Coupon) Code() string          { return c.code }
func (c *Coupon) DiscountCents() int64  { return c.discountCents }
func (c *Coupon) ValidFrom() *time.Time { return c.validFrom }
func (c *Coupon) ValidTo() *time.Time   { return c.validTo }
func (c *Coupon) CreatedAt() time.Time  { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time  { return c.updatedAt }
