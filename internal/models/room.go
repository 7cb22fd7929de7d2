package models

// Collection and field names of room documents.
const (
	RoomsCollection = "rooms"

	FieldHost      = "host"
	FieldHostEmail = "host.email"
	FieldBooked    = "booked"
)

// RoomStatus is the body of a room status update.
type RoomStatus struct {
	Status *bool `json:"status"`
}
