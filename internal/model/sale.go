package model

import "time"

// Sale represents a single sales transaction. Immutable once created; this
// service never writes.
type Sale struct {
	ID        int64
	UserID    int64
	UserName  string
	Amount    float64
	SaleDate  time.Time
	CreatedAt time.Time
}
