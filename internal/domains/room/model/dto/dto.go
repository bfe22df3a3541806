package dto

import (
	"posada/internal/domains/room/model"
)

type RoomResponse struct {
	ID          string  `json:"id"`
	Number      string  `json:"number"`
	Type        string  `json:"type"`
	NightlyRate float64 `json:"nightly_rate"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.NightlyRate = model.NightlyRate
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.Total = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
