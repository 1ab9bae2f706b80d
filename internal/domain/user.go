package domain

// User represents a tracker profile
type User struct {
	ID    int64
	Name  string
	Color string
}
