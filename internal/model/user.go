package model

import "time"

// User represents a seller account as read from the store.
type User struct {
	ID        int64
	Name      string
	Role      string // free-text category, e.g. "rep", "manager"
	CreatedAt time.Time
}
