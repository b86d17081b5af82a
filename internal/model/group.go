package model

import "time"

// Group represents a sales group. Users reach groups through membership only;
// a sale never references a group directly.
type Group struct {
	ID          int64
	Name        string
	MemberCount int64
	CreatedAt   time.Time
}
