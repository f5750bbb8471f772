package domain

// Category is a named tag applicable to many events.
type Category struct {
	ID          int64
	Name        string
	Description *string
}
