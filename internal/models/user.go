package models

// Collection and field names of user documents.
const (
	UsersCollection = "users"

	FieldEmail = "email"
)
