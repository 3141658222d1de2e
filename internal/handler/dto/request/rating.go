package request

import (
	"scms/internal/usecase"

	"github.com/google/uuid"
)

type CreateRatingRequest struct {
	CourtID uuid.UUID `json:"courtId" binding:"required"`
	Score   int       `json:"score" binding:"required,min=1,max=5"`
	Comment string    `json:"comment" binding:"max=1000"`
}

func (r *CreateRatingRequest) ToInput() usecase.CreateRatingInput {
	return usecase.CreateRatingInput{
		CourtID: r.CourtID,
		Score:   r.Score,
		Comment: r.Comment,
	}
}

type UpdateRatingRequest struct {
	Score   int    `json:"score" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}
