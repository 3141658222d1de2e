//go:build unit

package usecase

import (
	"context"
	"testing"
	"time"

	"scms/internal/domain/booking"
	"scms/internal/domain/user"
	"scms/internal/infra"
	"scms/internal/pkg/clock"
	"scms/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newBookingUseCaseForTest(bookingRepo *MockBookingRepository, userRepo *MockUserRepository) BookingUseCase {
	return NewBookingUseCase(bookingRepo, userRepo, stubUoW{}, clock.NewMockClock(testNow))
}

func validCreateBookingInput() CreateBookingInput {
	return CreateBookingInput{
		CourtID:    uuid.New(),
		CourtTitle: "Center Court",
		CourtType:  "Tennis",
		Date:       testNow.AddDate(0, 0, 7),
		Slots:      []string{"9:00 AM - 10:00 AM"},
		PriceCents: 150000,
	}
}

func pendingBooking(id uuid.UUID, email string) *booking.Booking {
	return booking.ReconstructBooking(
		id, email, uuid.New(), "Center Court", "Tennis",
		testNow.AddDate(0, 0, 7), []string{"9:00 AM - 10:00 AM"},
		150000, nil, booking.StatusPending, testNow, testNow,
	)
}

func approvedBooking(id uuid.UUID, email string) *booking.Booking {
	return booking.ReconstructBooking(
		id, email, uuid.New(), "Center Court", "Tennis",
		testNow.AddDate(0, 0, 7), []string{"9:00 AM - 10:00 AM"},
		150000, nil, booking.StatusApproved, testNow, testNow,
	)
}

func TestCreateBooking(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)
	uc := newBookingUseCaseForTest(bookingRepo, userRepo)

	input := validCreateBookingInput()
	rm := &readmodel.BookingRM{UserEmail: "player@example.com", Status: "pending"}

	bookingRepo.On("HasSlotConflict", mock.Anything, mock.Anything, input.CourtID, input.Date, input.Slots).Return(false, nil)
	bookingRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	bookingRepo.On("FindByID", mock.Anything, mock.Anything).Return(rm, nil)

	got, err := uc.Create(context.Background(), input, "player@example.com")
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)
	bookingRepo.AssertExpectations(t)
}

func TestCreateBookingSlotConflict(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)
	uc := newBookingUseCaseForTest(bookingRepo, userRepo)

	input := validCreateBookingInput()
	bookingRepo.On("HasSlotConflict", mock.Anything, mock.Anything, input.CourtID, input.Date, input.Slots).Return(true, nil)

	got, err := uc.Create(context.Background(), input, "player@example.com")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrBookingConflict)
	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBookingLosesInsertRace(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)
	uc := newBookingUseCaseForTest(bookingRepo, userRepo)

	// The pre-check saw a free slot, but a concurrent transaction committed
	// first and the slot index rejects the insert.
	input := validCreateBookingInput()
	bookingRepo.On("HasSlotConflict", mock.Anything, mock.Anything, input.CourtID, input.Date, input.Slots).Return(false, nil)
	bookingRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Return(infra.WrapRepoErr("failed to reserve booking slots", assert.AnError, infra.KindDuplicateKey))

	got, err := uc.Create(context.Background(), input, "player@example.com")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrBookingConflict)
	bookingRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCreateBookingValidationFailsBeforeStore(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)
	uc := newBookingUseCaseForTest(bookingRepo, userRepo)

	input := validCreateBookingInput()
	input.Slots = nil

	_, err := uc.Create(context.Background(), input, "player@example.com")

	var missing booking.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "slots", missing.Field)
	bookingRepo.AssertNotCalled(t, "HasSlotConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApproveBookingPromotesOwner(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)
	uc := newBookingUseCaseForTest(bookingRepo, userRepo)

	id := uuid.New()
	email := "player@example.com"
	entity := pendingBooking(id, email)
	owner := user.ReconstructUser(uuid.New(), "Player", email, nil, user.RoleUser, nil, testNow, testNow)
	rm := &readmodel.BookingRM{ID: id, UserEmail: email, Status: "approved"}

	bookingRepo.On("FindByIDForUpdate", mock.Anything, mock.Anything, id).Return(entity, nil)
	bookingRepo.On("UpdateStatus", mock.Anything, mock.Anything, entity).Return(nil)
	userRepo.On("FindByEmailForUpdate", mock.Anything, mock.Anything, email).Return(owner, nil)
	userRepo.On("SaveMembership", mock.Anything, mock.Anything, owner).Return(nil)
	bookingRepo.On("FindByID", mock.Anything, id).Return(rm, nil)

	result, err := uc.Transition(context.Background(), id, "approved", "")
	require.NoError(t, err)

	assert.Equal(t, "approved", result.Booking.Status)
	require.NotNil(t, result.Promotion)
	assert.True(t, result.Promotion.Promoted)
	assert.False(t, result.Promotion.AlreadyMember)
	assert.Equal(t, email, result.Promotion.Email)
	require.NotNil(t, result.Promotion.MemberSince)
	assert.Equal(t, testNow, *result.Promotion.MemberSince)
	userRepo.AssertExpectations(t)
}

func TestApproveBookingAlreadyMemberKeepsMemberSince(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)
	uc := newBookingUseCaseForTest(bookingRepo, userRepo)

	id := uuid.New()
	email := "member@example.com"
	since := testNow.AddDate(0, -6, 0)
	entity := pendingBooking(id, email)
	owner := user.ReconstructUser(uuid.New(), "Member", email, nil, user.RoleMember, &since, testNow, testNow)
	rm := &readmodel.BookingRM{ID: id, UserEmail: email, Status: "approved"}

	bookingRepo.On("FindByIDForUpdate", mock.Anything, mock.Anything, id).Return(entity, nil)
	bookingRepo.On("UpdateStatus", mock.Anything, mock.Anything, entity).Return(nil)
	userRepo.On("FindByEmailForUpdate", mock.Anything, mock.Anything, email).Return(owner, nil)
	bookingRepo.On("FindByID", mock.Anything, id).Return(rm, nil)

	result, err := uc.Transition(context.Background(), id, "approved", "")
	require.NoError(t, err)

	require.NotNil(t, result.Promotion)
	assert.False(t, result.Promotion.Promoted)
	assert.True(t, result.Promotion.AlreadyMember)
	require.NotNil(t, result.Promotion.MemberSince)
	assert.Equal(t, since, *result.Promotion.MemberSince)
	// No write when nothing changed.
	userRepo.AssertNotCalled(t, "SaveMembership", mock.Anything, mock.Anything, mock.Anything)
}

func TestApproveBookingPromotionFailureAbortsTransition(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)
	uc := newBookingUseCaseForTest(bookingRepo, userRepo)

	id := uuid.New()
	email := "player@example.com"
	entity := pendingBooking(id, email)

	bookingRepo.On("FindByIDForUpdate", mock.Anything, mock.Anything, id).Return(entity, nil)
	bookingRepo.On("UpdateStatus", mock.Anything, mock.Anything, entity).Return(nil)
	userRepo.On("FindByEmailForUpdate", mock.Anything, mock.Anything, email).
		Return(nil, infra.WrapRepoErr("user not found", assert.AnError, infra.KindNotFound))

	result, err := uc.Transition(context.Background(), id, "approved", "")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrPromotionFailed)
}

func TestRejectBookingSkipsPromotion(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)
	uc := newBookingUseCaseForTest(bookingRepo, userRepo)

	id := uuid.New()
	entity := pendingBooking(id, "player@example.com")
	rm := &readmodel.BookingRM{ID: id, Status: "rejected"}

	bookingRepo.On("FindByIDForUpdate", mock.Anything, mock.Anything, id).Return(entity, nil)
	bookingRepo.On("UpdateStatus", mock.Anything, mock.Anything, entity).Return(nil)
	bookingRepo.On("FindByID", mock.Anything, id).Return(rm, nil)

	result, err := uc.Transition(context.Background(), id, "rejected", "")
	require.NoError(t, err)
	assert.Nil(t, result.Promotion)
	userRepo.AssertNotCalled(t, "FindByEmailForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransitionIllegalMove(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)
	uc := newBookingUseCaseForTest(bookingRepo, userRepo)

	id := uuid.New()
	confirmed := booking.ReconstructBooking(
		id, "player@example.com", uuid.New(), "Center Court", "Tennis",
		testNow, []string{"9:00 AM - 10:00 AM"}, 150000, nil,
		booking.StatusConfirmed, testNow, testNow,
	)
	bookingRepo.On("FindByIDForUpdate", mock.Anything, mock.Anything, id).Return(confirmed, nil)

	_, err := uc.Transition(context.Background(), id, "pending", "")
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransitionUnknownStatus(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)
	uc := newBookingUseCaseForTest(bookingRepo, userRepo)

	_, err := uc.Transition(context.Background(), uuid.New(), "cancelled", "")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func TestGetBookingAccessControl(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)
	uc := newBookingUseCaseForTest(bookingRepo, userRepo)

	id := uuid.New()
	rm := &readmodel.BookingRM{ID: id, UserEmail: "owner@example.com"}
	bookingRepo.On("FindByID", mock.Anything, id).Return(rm, nil)

	_, err := uc.Get(context.Background(), id, "owner@example.com", false)
	assert.NoError(t, err)

	_, err = uc.Get(context.Background(), id, "other@example.com", false)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = uc.Get(context.Background(), id, "other@example.com", true)
	assert.NoError(t, err)
}

func TestListBookingsPinsNonAdminToOwnEmail(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)
	uc := newBookingUseCaseForTest(bookingRepo, userRepo)

	bookingRepo.On("List", mock.Anything, BookingFilter{Email: "me@example.com"}).
		Return([]*readmodel.BookingRM{}, nil)

	_, err := uc.List(context.Background(), BookingFilter{Email: "someone@example.com"}, "me@example.com", false)
	require.NoError(t, err)
	bookingRepo.AssertExpectations(t)
}

func TestDeleteConfirmedBookingRefused(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)
	uc := newBookingUseCaseForTest(bookingRepo, userRepo)

	id := uuid.New()
	rm := &readmodel.BookingRM{ID: id, UserEmail: "owner@example.com", Status: "confirmed"}
	bookingRepo.On("FindByID", mock.Anything, id).Return(rm, nil)

	err := uc.Delete(context.Background(), id, "owner@example.com", false)
	assert.ErrorIs(t, err, ErrBookingConfirmed)
	bookingRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteBookingNotFound(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)
	uc := newBookingUseCaseForTest(bookingRepo, userRepo)

	id := uuid.New()
	bookingRepo.On("FindByID", mock.Anything, id).
		Return(nil, infra.WrapRepoErr("booking not found", assert.AnError, infra.KindNotFound))

	err := uc.Delete(context.Background(), id, "owner@example.com", true)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
