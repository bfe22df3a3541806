package model

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID       = "id"
	FieldFullName = "full_name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
)

// Guest is created at bootstrap and read-only through the public surface.
type Guest struct {
	ID       string `db:"id"`
	FullName string `db:"full_name"`
	Email    string `db:"email"`
	Phone    string `db:"phone"`
}
