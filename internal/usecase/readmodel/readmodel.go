// Package readmodel holds the read-side DTOs returned by repositories and
// use cases. They are flat projections of store rows, never domain entities.
package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type BookingRM struct {
	ID         uuid.UUID `json:"id"`
	UserEmail  string    `json:"userEmail"`
	CourtID    uuid.UUID `json:"courtId"`
	CourtTitle string    `json:"courtTitle"`
	CourtType  string    `json:"courtType"`
	Date       time.Time `json:"date"`
	Slots      []string  `json:"slots"`
	PriceCents int64     `json:"priceCents"`
	CouponCode *string   `json:"couponCode,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type UserRM struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	PhotoURL    *string    `json:"photoURL,omitempty"`
	Role        string     `json:"role"`
	MemberSince *time.Time `json:"memberSince,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type PaymentRM struct {
	ID            uuid.UUID `json:"id"`
	UserEmail     string    `json:"userEmail"`
	BookingID     uuid.UUID `json:"bookingId"`
	AmountCents   int64     `json:"amountCents"`
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CouponRM struct {
	ID            uuid.UUID  `json:"id"`
	Code          string     `json:"code"`
	DiscountCents int64      `json:"discountCents"`
	ValidFrom     *time.Time `json:"validFrom,omitempty"`
	ValidTo       *time.Time `json:"validTo,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type CourtRM struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Image      string    `json:"image"`
	Location   string    `json:"location"`
	PriceCents int64     `json:"priceCents"`
	Slots      []string  `json:"slots"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type RatingRM struct {
	ID        uuid.UUID `json:"id"`
	CourtID   uuid.UUID `json:"courtId"`
	UserEmail string    `json:"userEmail"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PopularCourtRM is one row of the ratings-by-court aggregation joined with
// the court's display attributes.
type PopularCourtRM struct {
	CourtID      uuid.UUID `json:"courtId"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Image        string    `json:"image"`
	Location     string    `json:"location"`
	PriceCents   int64     `json:"priceCents"`
	AverageScore float64   `json:"averageRating"`
	TotalRatings int64     `json:"totalRatings"`
}

type AdminStatsRM struct {
	TotalCourts  int64 `json:"totalCourts"`
	TotalUsers   int64 `json:"totalUsers"`
	TotalMembers int64 `json:"totalMembers"`
}
