package response

import "scms/internal/usecase/readmodel"

type UserResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhotoURL    *string `json:"photoURL,omitempty"`
	Role        string  `json:"role"`
	MemberSince *int64  `json:"memberSince,omitempty"`
	CreatedAt   int64   `json:"createdAt"`
	UpdatedAt   int64   `json:"updatedAt"`
}

func FromUserRM(rm *readmodel.UserRM) *UserResponse {
	resp := &UserResponse{
		ID:        rm.ID.String(),
		Name:      rm.Name,
		Email:     rm.Email,
		PhotoURL:  rm.PhotoURL,
		Role:      rm.Role,
		CreatedAt: rm.CreatedAt.Unix(),
		UpdatedAt: rm.UpdatedAt.Unix(),
	}
	if rm.MemberSince != nil {
		since := rm.MemberSince.Unix()
		resp.MemberSince = &since
	}
	return resp
}

func FromUserList(rms []*readmodel.UserRM) []*UserResponse {
	res := make([]*UserResponse, len(rms))
	for i, rm := range rms {
		res[i] = FromUserRM(rm)
	}
	return res
}

type UpsertUserResponse struct {
	User    *UserResponse `json:"user"`
	Created bool          `json:"created"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

type AdminStatsResponse struct {
	TotalCourts  int64 `json:"totalCourts"`
	TotalUsers   int64 `json:"totalUsers"`
	TotalMembers int64 `json:"totalMembers"`
}

func FromAdminStatsRM(rm *readmodel.AdminStatsRM) *AdminStatsResponse {
	return &AdminStatsResponse{
		TotalCourts:  rm.TotalCourts,
		TotalUsers:   rm.TotalUsers,
		TotalMembers: rm.TotalMembers,
	}
}
