package usecase

import (
	"context"
	"time"

	"scms/internal/domain/booking"
	"scms/internal/domain/coupon"
	"scms/internal/domain/court"
	"scms/internal/domain/payment"
	"scms/internal/domain/rating"
	"scms/internal/domain/user"
	"scms/internal/infra"
	"scms/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// UnitOfWork runs fn inside a single store transaction. The two dual-write
// paths (approve+promote, pay+confirm) depend on it; everything else uses the
// repositories' own pool handle.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx infra.DBTX) error) error
}

type BookingFilter struct {
	Email  string
	Status string
	Search string
}

type BookingRepository interface {
	Create(ctx context.Context, tx infra.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	FindByIDForUpdate(ctx context.Context, tx infra.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx infra.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter BookingFilter) ([]*readmodel.BookingRM, error)
	HasSlotConflict(ctx context.Context, tx infra.DBTX, courtID uuid.UUID, date time.Time, slots []string) (bool, error)
}

type UserRepository interface {
	Upsert(ctx context.Context, u *user.User) (created bool, err error)
	FindByEmail(ctx context.Context, email string) (*readmodel.UserRM, error)
	FindByEmailForUpdate(ctx context.Context, tx infra.DBTX, email string) (*user.User, error)
	SaveMembership(ctx context.Context, tx infra.DBTX, u *user.User) error
	ListMembers(ctx context.Context, search string) ([]*readmodel.UserRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Counts(ctx context.Context) (totalUsers, totalMembers int64, err error)
}

type CouponRepository interface {
	Create(ctx context.Context, c *coupon.Coupon) error
	FindByCode(ctx context.Context, code string) (*readmodel.CouponRM, error)
	List(ctx context.Context) ([]*readmodel.CouponRM, error)
	Update(ctx context.Context, id uuid.UUID, patch CouponPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CouponPatch struct {
	Code          *string
	DiscountCents *int64
	ValidFrom     *time.Time
	ValidTo       *time.Time
}

type PaymentRepository interface {
	Create(ctx context.Context, tx infra.DBTX, p *payment.Payment) error
	ListByEmail(ctx context.Context, email string) ([]*readmodel.PaymentRM, error)
}

type CourtFilter struct {
	Search     string
	Type       string
	SlotPeriod string // Morning, Afternoon, Evening
	Sort       string // LowToHigh, HighToLow
	Page       int
	Size       int
}

type CourtRepository interface {
	Create(ctx context.Context, c *court.Court) error
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CourtRM, error)
	List(ctx context.Context, filter CourtFilter) ([]*readmodel.CourtRM, error)
	Update(ctx context.Context, id uuid.UUID, patch CourtPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type CourtPatch struct {
	Name       *string
	Type       *string
	Image      *string
	Location   *string
	PriceCents *int64
	Slots      []string
}

type RatingFilter struct {
	CourtID *uuid.UUID
	Email   string
}

type RatingRepository interface {
	Create(ctx context.Context, r *rating.Rating) error
	FindByID(ctx context.Context, id uuid.UUID) (*rating.Rating, error)
	Save(ctx context.Context, r *rating.Rating) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter RatingFilter) ([]*readmodel.RatingRM, error)
	RankCourts(ctx context.Context, limit int) ([]*readmodel.PopularCourtRM, error)
}

// ChargeIntent is the opaque client-side completion token handed back by the
// payment gateway.
type ChargeIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

type PaymentGateway interface {
	CreateChargeIntent(ctx context.Context, amountMinorUnits int64, currency string) (*ChargeIntent, error)
}
