//go:build unit

package usecase

import (
	"context"
	"testing"

	"scms/internal/infra"
	"scms/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListCourtsPageSizeClamping(t *testing.T) {
	tests := []struct {
		name     string
		filter   CourtFilter
		wantSize int
		wantPage int
	}{
		{"defaults applied", CourtFilter{}, 10, 0},
		{"size capped", CourtFilter{Size: 500}, 100, 0},
		{"negative page reset", CourtFilter{Size: 20, Page: -1}, 20, 0},
		{"explicit values pass through", CourtFilter{Size: 25, Page: 3}, 25, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCourtRepository)
			uc := NewCourtUseCase(repo)

			expected := tt.filter
			expected.Size = tt.wantSize
			expected.Page = tt.wantPage
			repo.On("List", mock.Anything, expected).Return([]*readmodel.CourtRM{}, nil)

			_, err := uc.List(context.Background(), tt.filter)
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestGetCourtNotFound(t *testing.T) {
	repo := new(MockCourtRepository)
	uc := NewCourtUseCase(repo)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).
		Return(nil, infra.WrapRepoErr("court not found", assert.AnError, infra.KindNotFound))

	_, err := uc.Get(context.Background(), id)
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestUpdateCourtNotFound(t *testing.T) {
	repo := new(MockCourtRepository)
	uc := NewCourtUseCase(repo)

	id := uuid.New()
	repo.On("Update", mock.Anything, id, mock.Anything).
		Return(infra.WrapRepoErr("court not found", assert.AnError, infra.KindNotFound))

	err := uc.Update(context.Background(), id, CourtPatch{})
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestDeleteCourtNotFound(t *testing.T) {
	repo := new(MockCourtRepository)
	uc := NewCourtUseCase(repo)

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).
		Return(infra.WrapRepoErr("court not found", assert.AnError, infra.KindNotFound))

	err := uc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, ErrCourtNotFound)
}
