package model

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldNumber      = "number"
	FieldType        = "type"
	FieldNightlyRate = "nightly_rate"
)

// Room is a bookable unit. Rooms are created at bootstrap and are immutable
// through the public surface.
type Room struct {
	ID          string  `db:"id"`
	Number      string  `db:"number"`
	Type        string  `db:"type"`
	NightlyRate float64 `db:"nightly_rate"`
}
