package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"posada/shared/failure"
	"posada/shared/validator"
)

type createRequest struct {
	RoomID   string `json:"room_id"   validate:"required"`
	GuestID  string `json:"guest_id"  validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Notes    string `json:"notes"     validate:"omitempty,max=500"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid payload",
			body:    `{"room_id":"r1","guest_id":"g1","check_in":"2026-06-10","check_out":"2026-06-12"}`,
			wantErr: false,
		},
		{
			name:    "missing required field",
			body:    `{"guest_id":"g1","check_in":"2026-06-10","check_out":"2026-06-12"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"room_id":`,
			wantErr: true,
		},
		{
			name:    "notes too long",
			body:    `{"room_id":"r1","guest_id":"g1","check_in":"2026-06-10","check_out":"2026-06-12","notes":"` + strings.Repeat("a", 501) + `"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req createRequest
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}

				if code := failure.GetCode(err); code != http.StatusBadRequest {
					t.Errorf("expected code %d, got %d", http.StatusBadRequest, code)
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	valid := createRequest{RoomID: "r1", GuestID: "g1", CheckIn: "2026-06-10", CheckOut: "2026-06-12"}
	if err := validator.ValidateStruct(&valid); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	invalid := createRequest{RoomID: "r1"}
	if err := validator.ValidateStruct(&invalid); err == nil {
		t.Error("expected error for missing fields")
	}
}
