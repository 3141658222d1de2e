package request

import "scms/internal/usecase"

type UpsertUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email" binding:"required,email"`
	PhotoURL *string `json:"photoURL"`
}

func (r *UpsertUserRequest) ToInput() usecase.UpsertUserInput {
	return usecase.UpsertUserInput{
		Name:     r.Name,
		Email:    r.Email,
		PhotoURL: r.PhotoURL,
	}
}
