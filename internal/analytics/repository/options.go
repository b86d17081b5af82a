package repository

import "time"

// SaleFilterOptions is the shared filter set for sale queries. Every statement
// derived from one request (listing, count, summary, trend) takes the same
// options value, so their WHERE semantics always agree.
type SaleFilterOptions struct {
	UserID    *int64
	GroupID   *int64
	Role      string
	MinAmount *float64
	MaxAmount *float64
	StartDate *time.Time
	EndDate   *time.Time
}

// ListSalesOptions adds ordering and pagination on top of the filter set.
// OrderBy must already be allow-list validated by the caller; it is the only
// part spliced into query text.
type ListSalesOptions struct {
	Filter  SaleFilterOptions
	OrderBy string
	Limit   int64
	Offset  int64
}

type ListUsersOptions struct {
	Role    string
	OrderBy string
	Limit   int64
	Offset  int64
}

type ListGroupsOptions struct {
	OrderBy string
	Limit   int64
	Offset  int64
}

// TrendOptions configures a time-bucketed trend query. Interval must already
// be allow-list validated; it is bound as a parameter to date_trunc, never
// interpolated.
type TrendOptions struct {
	Filter   SaleFilterOptions
	Interval string
}

type RankingOptions struct {
	UserID    int64
	StartDate *time.Time
	EndDate   *time.Time
}

type TopPerformersOptions struct {
	GroupID   int64
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int64
}
