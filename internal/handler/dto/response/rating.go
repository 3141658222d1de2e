package response

import "scms/internal/usecase/readmodel"

type RatingResponse struct {
	ID        string `json:"id"`
	CourtID   string `json:"courtId"`
	UserEmail string `json:"userEmail"`
	Score     int    `json:"score"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

func FromRatingRM(rm *readmodel.RatingRM) *RatingResponse {
	return &RatingResponse{
		ID:        rm.ID.String(),
		CourtID:   rm.CourtID.String(),
		UserEmail: rm.UserEmail,
		Score:     rm.Score,
		Comment:   rm.Comment,
		CreatedAt: rm.CreatedAt.Unix(),
		UpdatedAt: rm.UpdatedAt.Unix(),
	}
}

func FromRatingList(rms []*readmodel.RatingRM) []*RatingResponse {
	res := make([]*RatingResponse, len(rms))
	for i, rm := range rms {
		res[i] = FromRatingRM(rm)
	}
	return res
}
