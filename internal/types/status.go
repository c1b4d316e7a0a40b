package types

// Status is a type for the lifecycle status of a resource in the database.
// This is used to determine if a resource should be included in queries.
type Status string

const (
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
	StatusDeleted   Status = "deleted"
)

// BookingStatus is the commercial status of a booking. Billing only ever
// transitions active to cancelled; pending and completed are managed by
// collaborators outside this core and are opaque to it.
type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) Validate() bool {
	switch s {
	case BookingStatusActive, BookingStatusCancelled, BookingStatusPending, BookingStatusCompleted:
		return true
	}
	return false
}
