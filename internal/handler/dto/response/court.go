package response

import "scms/internal/usecase/readmodel"

type CourtResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Image     string   `json:"image"`
	Location  string   `json:"location"`
	Price     float64  `json:"price"`
	Slots     []string `json:"slots"`
	CreatedAt int64    `json:"createdAt"`
	UpdatedAt int64    `json:"updatedAt"`
}

func FromCourtRM(rm *readmodel.CourtRM) *CourtResponse {
	return &CourtResponse{
		ID:        rm.ID.String(),
		Name:      rm.Name,
		Type:      rm.Type,
		Image:     rm.Image,
		Location:  rm.Location,
		Price:     fromCents(rm.PriceCents),
		Slots:     rm.Slots,
		CreatedAt: rm.CreatedAt.Unix(),
		UpdatedAt: rm.UpdatedAt.Unix(),
	}
}

func FromCourtList(rms []*readmodel.CourtRM) []*CourtResponse {
	res := make([]*CourtResponse, len(rms))
	for i, rm := range rms {
		res[i] = FromCourtRM(rm)
	}
	return res
}

type CourtCountResponse struct {
	Count int64 `json:"count"`
}

type PopularCourtResponse struct {
	CourtID       string  `json:"courtId"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Image         string  `json:"image"`
	Location      string  `json:"location"`
	Price         float64 `json:"price"`
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int64   `json:"totalRatings"`
}

func FromPopularCourtList(rms []*readmodel.PopularCourtRM) []*PopularCourtResponse {
	res := make([]*PopularCourtResponse, len(rms))
	for i, rm := range rms {
		res[i] = &PopularCourtResponse{
			CourtID:       rm.CourtID.String(),
			Name:          rm.Name,
			Type:          rm.Type,
			Image:         rm.Image,
			Location:      rm.Location,
			Price:         fromCents(rm.PriceCents),
			AverageRating: rm.AverageScore,
			TotalRatings:  rm.TotalRatings,
		}
	}
	return res
}
