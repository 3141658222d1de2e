//go:build unit

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
	"github.com/stretchr/testify/mock"
)

// stubUoW runs the callback outside any transaction; atomicity itself is
// covered by the store-backed tests.
type stubUoW struct{}

func (stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx infra.DBTX) error) error {
	return fn(ctx, nil)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, tx infra.DBTX, b *booking.Booking) error {
	args := m.Called(ctx, tx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.BookingRM), args.Error(1)
}

func (m *MockBookingRepository) FindByIDForUpdate(ctx context.Context, tx infra.DBTX, id uuid.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, tx infra.DBTX, b *booking.Booking) error {
	args := m.Called(ctx, tx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) List(ctx context.Context, filter BookingFilter) ([]*readmodel.BookingRM, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.BookingRM), args.Error(1)
}

func (m *MockBookingRepository) HasSlotConflict(ctx context.Context, tx infra.DBTX, courtID uuid.UUID, date time.Time, slots []string) (bool, error) {
	args := m.Called(ctx, tx, courtID, date, slots)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Upsert(ctx context.Context, u *user.User) (bool, error) {
	args := m.Called(ctx, u)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.UserRM, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.UserRM), args.Error(1)
}

func (m *MockUserRepository) FindByEmailForUpdate(ctx context.Context, tx infra.DBTX, email string) (*user.User, error) {
	args := m.Called(ctx, tx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) SaveMembership(ctx context.Context, tx infra.DBTX, u *user.User) error {
	args := m.Called(ctx, tx, u)
	return args.Error(0)
}

func (m *MockUserRepository) ListMembers(ctx context.Context, search string) ([]*readmodel.UserRM, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.UserRM), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Counts(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCouponRepository) FindByCode(ctx context.Context, code string) (*readmodel.CouponRM, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.CouponRM), args.Error(1)
}

func (m *MockCouponRepository) List(ctx context.Context) ([]*readmodel.CouponRM, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.CouponRM), args.Error(1)
}

func (m *MockCouponRepository) Update(ctx context.Context, id uuid.UUID, patch CouponPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockCouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, tx infra.DBTX, p *payment.Payment) error {
	args := m.Called(ctx, tx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListByEmail(ctx context.Context, email string) ([]*readmodel.PaymentRM, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.PaymentRM), args.Error(1)
}

type MockCourtRepository struct {
	mock.Mock
}

func (m *MockCourtRepository) Create(ctx context.Context, c *court.Court) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourtRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CourtRM, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.CourtRM), args.Error(1)
}

func (m *MockCourtRepository) List(ctx context.Context, filter CourtFilter) ([]*readmodel.CourtRM, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.CourtRM), args.Error(1)
}

func (m *MockCourtRepository) Update(ctx context.Context, id uuid.UUID, patch CourtPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockCourtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCourtRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, r *rating.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRatingRepository) FindByID(ctx context.Context, id uuid.UUID) (*rating.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rating.Rating), args.Error(1)
}

func (m *MockRatingRepository) Save(ctx context.Context, r *rating.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRatingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRatingRepository) List(ctx context.Context, filter RatingFilter) ([]*readmodel.RatingRM, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.RatingRM), args.Error(1)
}

func (m *MockRatingRepository) RankCourts(ctx context.Context, limit int) ([]*readmodel.PopularCourtRM, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.PopularCourtRM), args.Error(1)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateChargeIntent(ctx context.Context, amountMinorUnits int64, currency string) (*ChargeIntent, error) {
	args := m.Called(ctx, amountMinorUnits, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ChargeIntent), args.Error(1)
}
