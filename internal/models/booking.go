package models

// Collection and field names of booking documents.
//
// A booking embeds its guest ({"guest": {"email": ...}}) and stores the host
// as a plain email string ({"host": "h@x.com"}). Older bookings may embed the
// host like rooms do; host lookups match both shapes.
const (
	BookingsCollection = "bookings"

	FieldGuest      = "guest"
	FieldGuestEmail = "guest.email"
)
