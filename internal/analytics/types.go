package analytics

import (
	"time"

	"sales-analytics-srv/internal/model"
	"sales-analytics-srv/pkg/paginator"
)

// Sort and interval allow-lists. These are the only caller-controlled
// identifiers ever spliced into query text; everything else is bound.
var (
	UserSortColumns  = []string{"name", "role", "id"}
	GroupSortColumns = []string{"name", "id"}
	SaleSortColumns  = []string{"amount", "sale_date", "id"}
	Intervals        = []string{"day", "week", "month", "quarter", "year"}
)

const (
	DefaultInterval = "month"

	// Default date window for performance/summary views when the caller
	// provides no (or an unparseable) bound.
	DefaultStartDate = "2021-01-01"
	DefaultEndDate   = "2021-12-31"
)

// ResolvedFilters echoes the filter values actually applied to the queries,
// after validation fallbacks. Responses expose these (meta.filters, links) so
// that resubmitting them reproduces an identical result set.
type ResolvedFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Interval  string
	Role      string
	UserID    *int64
	GroupID   *int64
	MinAmount *float64
	MaxAmount *float64
	SortBy    string
	SortOrder string
}

type ListUsersInput struct {
	Role      string
	SortBy    string
	SortOrder string
	Paginate  paginator.PaginateQuery
}

type ListUsersOutput struct {
	Users     []model.User
	Paginator paginator.Paginator
	Filters   ResolvedFilters
}

type GetUserInput struct {
	UserID int64
}

type GetUserOutput struct {
	User model.User
}

type GetUserSalesInput struct {
	UserID    int64
	StartDate string
	EndDate   string
	MinAmount string
	MaxAmount string
	SortBy    string
	SortOrder string
	Paginate  paginator.PaginateQuery
}

type GetUserSalesOutput struct {
	Sales     []model.Sale
	Paginator paginator.Paginator
	Filters   ResolvedFilters
}

type GetUserPerformanceInput struct {
	UserID    int64
	StartDate string
	EndDate   string
	Interval  string
}

type GetUserPerformanceOutput struct {
	User     model.User
	Summary  model.SalesSummary
	Trends   []model.TrendPoint
	Rankings []model.GroupRanking
	Filters  ResolvedFilters
}

type ListGroupsInput struct {
	SortBy    string
	SortOrder string
	Paginate  paginator.PaginateQuery
}

type ListGroupsOutput struct {
	Groups    []model.Group
	Paginator paginator.Paginator
	Filters   ResolvedFilters
}

type GetGroupInput struct {
	GroupID int64
}

type GetGroupOutput struct {
	Group model.Group
}

type GetGroupSalesInput struct {
	GroupID   int64
	StartDate string
	EndDate   string
	MinAmount string
	MaxAmount string
	SortBy    string
	SortOrder string
	Paginate  paginator.PaginateQuery
}

type GetGroupSalesOutput struct {
	Sales     []model.Sale
	Paginator paginator.Paginator
	Filters   ResolvedFilters
}

type GetGroupPerformanceInput struct {
	GroupID   int64
	StartDate string
	EndDate   string
	Interval  string
}

type GetGroupPerformanceOutput struct {
	Group         model.Group
	Summary       model.SalesSummary
	Trends        []model.TrendPoint
	TopPerformers []model.PerformerRank
	Filters       ResolvedFilters
}

type ListSalesInput struct {
	UserID    string
	GroupID   string
	MinAmount string
	MaxAmount string
	StartDate string
	EndDate   string
	SortBy    string
	SortOrder string
	Paginate  paginator.PaginateQuery
}

type ListSalesOutput struct {
	Sales     []model.Sale
	Paginator paginator.Paginator
	Filters   ResolvedFilters
}

type GetSaleInput struct {
	SaleID int64
}

type GetSaleOutput struct {
	Sale model.Sale
}

type GetSalesSummaryInput struct {
	Role      string
	GroupID   string
	StartDate string
	EndDate   string
	Interval  string
}

type GetSalesSummaryOutput struct {
	Summary model.SalesSummary
	Trends  []model.TrendPoint
	Filters ResolvedFilters
}
