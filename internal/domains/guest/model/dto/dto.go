package dto

import (
	"posada/internal/domains/guest/model"
)

type GuestResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
}

type GetGuestsResponse struct {
	Guests []GuestResponse `json:"guests"`
	Total  int             `json:"total"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest) {
	r.Total = len(models)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
