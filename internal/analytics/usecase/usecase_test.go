package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-analytics-srv/internal/analytics"
	"sales-analytics-srv/internal/model"
	"sales-analytics-srv/pkg/paginator"
)

func newTestUseCase(repo *mockRepository) *implUseCase {
	return &implUseCase{l: noopLogger{}, repo: repo}
}

func TestListUsers(t *testing.T) {
	repo := newMockRepository()
	repo.users = []model.User{
		{ID: 1, Name: "Alice", Role: "sales"},
		{ID: 2, Name: "Bob", Role: "sales"},
	}
	repo.total = 25

	uc := newTestUseCase(repo)

	out, err := uc.ListUsers(context.Background(), analytics.ListUsersInput{
		Role:     "sales",
		Paginate: paginator.PaginateQuery{Page: 2, Limit: 10},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(25), out.Paginator.Total)
	assert.Equal(t, 2, out.Paginator.CurrentPage)
	assert.Equal(t, 3, out.Paginator.TotalPages())
	assert.Equal(t, "sales", repo.lastListUsers.Role)
	assert.Equal(t, int64(10), repo.lastListUsers.Limit)
	assert.Equal(t, int64(10), repo.lastListUsers.Offset)
	assert.Equal(t, "name ASC", repo.lastListUsers.OrderBy)
}

func TestListUsersSortFallback(t *testing.T) {
	repo := newMockRepository()
	uc := newTestUseCase(repo)

	out, err := uc.ListUsers(context.Background(), analytics.ListUsersInput{
		SortBy:    "password_hash",
		SortOrder: "sideways",
	})
	require.NoError(t, err)

	assert.Equal(t, "name ASC", repo.lastListUsers.OrderBy)
	assert.Equal(t, "name", out.Filters.SortBy)
	assert.Equal(t, "asc", out.Filters.SortOrder)
}

func TestGetUserNotFound(t *testing.T) {
	uc := newTestUseCase(newMockRepository())

	_, err := uc.GetUser(context.Background(), analytics.GetUserInput{UserID: 404})
	assert.ErrorIs(t, err, analytics.ErrUserNotFound)
}

func TestGetUserSalesGuard(t *testing.T) {
	repo := newMockRepository()
	uc := newTestUseCase(repo)

	_, err := uc.GetUserSales(context.Background(), analytics.GetUserSalesInput{UserID: 404})
	assert.ErrorIs(t, err, analytics.ErrUserNotFound)

	// The listing and its count must never run for a nonexistent user.
	assert.Equal(t, 0, repo.callCount("ListSales"))
	assert.Equal(t, 0, repo.callCount("CountSales"))
}

func TestGetUserSales(t *testing.T) {
	repo := newMockRepository()
	repo.user = &model.User{ID: 7, Name: "Alice", Role: "sales"}
	repo.sales = []model.Sale{{ID: 1, UserID: 7, Amount: 99.5}}
	repo.total = 1

	uc := newTestUseCase(repo)

	out, err := uc.GetUserSales(context.Background(), analytics.GetUserSalesInput{
		UserID:    7,
		MinAmount: "50",
		MaxAmount: "bogus",
		StartDate: "2021-03-01",
	})
	require.NoError(t, err)

	filter := repo.lastListSales.Filter
	require.NotNil(t, filter.UserID)
	assert.Equal(t, int64(7), *filter.UserID)
	require.NotNil(t, filter.MinAmount)
	assert.Equal(t, 50.0, *filter.MinAmount)
	assert.Nil(t, filter.MaxAmount, "malformed bound is dropped, not an error")
	require.NotNil(t, filter.StartDate)
	assert.Nil(t, filter.EndDate, "listings get no default window")

	// The count statement sees the exact filter the listing saw.
	assert.Equal(t, filter, repo.lastCountSales)
	assert.Equal(t, int64(1), out.Paginator.Total)
}

func TestGetUserPerformanceGuard(t *testing.T) {
	repo := newMockRepository()
	uc := newTestUseCase(repo)

	_, err := uc.GetUserPerformance(context.Background(), analytics.GetUserPerformanceInput{UserID: 404})
	assert.ErrorIs(t, err, analytics.ErrUserNotFound)

	// None of the aggregate statements may run once the guard fails.
	assert.Equal(t, 0, repo.callCount("GetSalesSummary"))
	assert.Equal(t, 0, repo.callCount("GetSalesTrend"))
	assert.Equal(t, 0, repo.callCount("GetUserGroupRankings"))
}

func TestGetUserPerformance(t *testing.T) {
	total := 1500.0
	repo := newMockRepository()
	repo.user = &model.User{ID: 7, Name: "Alice", Role: "sales"}
	repo.summary = model.SalesSummary{TotalSales: 3, TotalAmount: &total}
	repo.trends = []model.TrendPoint{{Period: time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)}}
	repo.rankings = []model.GroupRanking{{GroupID: 2, GroupName: "North", Rank: 1, GroupSize: 5}}

	uc := newTestUseCase(repo)

	out, err := uc.GetUserPerformance(context.Background(), analytics.GetUserPerformanceInput{
		UserID:   7,
		Interval: "quarter",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), out.Summary.TotalSales)
	assert.Len(t, out.Trends, 1)
	assert.Len(t, out.Rankings, 1)
	assert.Equal(t, "quarter", repo.lastTrend.Interval)

	// Absent bounds resolve to the default window and are echoed back.
	require.NotNil(t, out.Filters.StartDate)
	require.NotNil(t, out.Filters.EndDate)
	assert.Equal(t, analytics.DefaultStartDate, out.Filters.StartDate.Format("2006-01-02"))
	assert.Equal(t, analytics.DefaultEndDate, out.Filters.EndDate.Format("2006-01-02"))

	assert.Equal(t, 1, repo.callCount("GetSalesSummary"))
	assert.Equal(t, 1, repo.callCount("GetSalesTrend"))
	assert.Equal(t, 1, repo.callCount("GetUserGroupRankings"))
}

func TestGetUserPerformanceIntervalFallback(t *testing.T) {
	repo := newMockRepository()
	repo.user = &model.User{ID: 7}

	uc := newTestUseCase(repo)

	out, err := uc.GetUserPerformance(context.Background(), analytics.GetUserPerformanceInput{
		UserID:   7,
		Interval: "fortnight",
	})
	require.NoError(t, err)

	assert.Equal(t, analytics.DefaultInterval, repo.lastTrend.Interval)
	assert.Equal(t, analytics.DefaultInterval, out.Filters.Interval)
}

func TestGetGroupPerformanceGuard(t *testing.T) {
	repo := newMockRepository()
	uc := newTestUseCase(repo)

	_, err := uc.GetGroupPerformance(context.Background(), analytics.GetGroupPerformanceInput{GroupID: 404})
	assert.ErrorIs(t, err, analytics.ErrGroupNotFound)

	assert.Equal(t, 0, repo.callCount("GetSalesSummary"))
	assert.Equal(t, 0, repo.callCount("GetSalesTrend"))
	assert.Equal(t, 0, repo.callCount("GetGroupTopPerformers"))
}

func TestGetGroupPerformance(t *testing.T) {
	repo := newMockRepository()
	repo.group = &model.Group{ID: 2, Name: "North", MemberCount: 5}
	repo.performers = []model.PerformerRank{
		{UserID: 7, UserName: "Alice", TotalAmount: 1500, Rank: 1},
	}

	uc := newTestUseCase(repo)

	out, err := uc.GetGroupPerformance(context.Background(), analytics.GetGroupPerformanceInput{GroupID: 2})
	require.NoError(t, err)

	assert.Equal(t, "North", out.Group.Name)
	require.Len(t, out.TopPerformers, 1)
	assert.Equal(t, "Alice", out.TopPerformers[0].UserName)
	assert.Equal(t, 1, repo.callCount("GetGroupTopPerformers"))
}

func TestListSales(t *testing.T) {
	repo := newMockRepository()
	repo.sales = []model.Sale{{ID: 1}, {ID: 2}}
	repo.total = 2

	uc := newTestUseCase(repo)

	out, err := uc.ListSales(context.Background(), analytics.ListSalesInput{
		UserID:  "7",
		GroupID: "2",
		SortBy:  "amount",
	})
	require.NoError(t, err)

	filter := repo.lastListSales.Filter
	require.NotNil(t, filter.UserID)
	assert.Equal(t, int64(7), *filter.UserID)
	require.NotNil(t, filter.GroupID)
	assert.Equal(t, int64(2), *filter.GroupID)
	assert.Equal(t, "amount DESC", repo.lastListSales.OrderBy)
	assert.Equal(t, filter, repo.lastCountSales)

	// Adjust applies the defaults when the caller sends nothing.
	assert.Equal(t, int64(paginator.DefaultLimit), repo.lastListSales.Limit)
	assert.Equal(t, int64(0), repo.lastListSales.Offset)
	assert.Equal(t, 1, out.Paginator.CurrentPage)
}

func TestGetSaleNotFound(t *testing.T) {
	uc := newTestUseCase(newMockRepository())

	_, err := uc.GetSale(context.Background(), analytics.GetSaleInput{SaleID: 404})
	assert.ErrorIs(t, err, analytics.ErrSaleNotFound)
}

func TestGetSalesSummaryEmptyWindow(t *testing.T) {
	repo := newMockRepository()
	repo.summary = model.SalesSummary{TotalSales: 0}
	repo.trends = []model.TrendPoint{}

	uc := newTestUseCase(repo)

	out, err := uc.GetSalesSummary(context.Background(), analytics.GetSalesSummaryInput{
		StartDate: "2021-06-01",
		EndDate:   "2021-06-02",
	})
	require.NoError(t, err)

	// A window with no sales is an empty result, never an error.
	assert.Equal(t, int64(0), out.Summary.TotalSales)
	assert.Nil(t, out.Summary.TotalAmount)
	assert.Empty(t, out.Trends)
}

func TestGetSalesSummaryScoped(t *testing.T) {
	repo := newMockRepository()
	uc := newTestUseCase(repo)

	_, err := uc.GetSalesSummary(context.Background(), analytics.GetSalesSummaryInput{
		Role:    "manager",
		GroupID: "2",
	})
	require.NoError(t, err)

	assert.Equal(t, "manager", repo.lastTrend.Filter.Role)
	require.NotNil(t, repo.lastTrend.Filter.GroupID)
	assert.Equal(t, int64(2), *repo.lastTrend.Filter.GroupID)
	assert.Equal(t, 1, repo.callCount("GetSalesSummary"))
	assert.Equal(t, 1, repo.callCount("GetSalesTrend"))
}
