package usecase

import (
	"context"
	"sync"

	"sales-analytics-srv/internal/analytics/repository"
	"sales-analytics-srv/internal/model"
)

// noopLogger satisfies log.Logger for tests.
type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any) {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Info(ctx context.Context, args ...any) {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any) {}
func (noopLogger) Warn(ctx context.Context, args ...any) {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Error(ctx context.Context, args ...any) {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Fatal(ctx context.Context, args ...any) {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

// mockRepository is a configurable in-memory stand-in for the Postgres
// repository. Call counts are tracked per method so tests can assert that the
// existence guard short-circuits the aggregation phase. Counters are mutex
// guarded because performance aggregates run concurrently.
type mockRepository struct {
	mu    sync.Mutex
	calls map[string]int

	user  *model.User
	group *model.Group
	sale  *model.Sale

	users  []model.User
	groups []model.Group
	sales  []model.Sale

	total      int64
	summary    model.SalesSummary
	trends     []model.TrendPoint
	rankings   []model.GroupRanking
	performers []model.PerformerRank

	err error

	lastListSales  repository.ListSalesOptions
	lastCountSales repository.SaleFilterOptions
	lastTrend      repository.TrendOptions
	lastListUsers  repository.ListUsersOptions
}

func newMockRepository() *mockRepository {
	return &mockRepository{calls: map[string]int{}}
}

func (m *mockRepository) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[method]++
}

func (m *mockRepository) callCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *mockRepository) GetUserByID(_ context.Context, id int64) (*model.User, error) {
	m.record("GetUserByID")
	if m.user == nil {
		return nil, repository.ErrUserNotFound
	}
	return m.user, m.err
}

func (m *mockRepository) ListUsers(_ context.Context, opts repository.ListUsersOptions) ([]model.User, error) {
	m.record("ListUsers")
	m.lastListUsers = opts
	return m.users, m.err
}

func (m *mockRepository) CountUsers(_ context.Context, opts repository.ListUsersOptions) (int64, error) {
	m.record("CountUsers")
	return m.total, m.err
}

func (m *mockRepository) GetGroupByID(_ context.Context, id int64) (*model.Group, error) {
	m.record("GetGroupByID")
	if m.group == nil {
		return nil, repository.ErrGroupNotFound
	}
	return m.group, m.err
}

func (m *mockRepository) ListGroups(_ context.Context, opts repository.ListGroupsOptions) ([]model.Group, error) {
	m.record("ListGroups")
	return m.groups, m.err
}

func (m *mockRepository) CountGroups(_ context.Context, opts repository.ListGroupsOptions) (int64, error) {
	m.record("CountGroups")
	return m.total, m.err
}

func (m *mockRepository) GetSaleByID(_ context.Context, id int64) (*model.Sale, error) {
	m.record("GetSaleByID")
	if m.sale == nil {
		return nil, repository.ErrSaleNotFound
	}
	return m.sale, m.err
}

func (m *mockRepository) ListSales(_ context.Context, opts repository.ListSalesOptions) ([]model.Sale, error) {
	m.record("ListSales")
	m.lastListSales = opts
	return m.sales, m.err
}

func (m *mockRepository) CountSales(_ context.Context, opts repository.SaleFilterOptions) (int64, error) {
	m.record("CountSales")
	m.lastCountSales = opts
	return m.total, m.err
}

func (m *mockRepository) GetSalesSummary(_ context.Context, opts repository.SaleFilterOptions) (model.SalesSummary, error) {
	m.record("GetSalesSummary")
	return m.summary, m.err
}

func (m *mockRepository) GetSalesTrend(_ context.Context, opts repository.TrendOptions) ([]model.TrendPoint, error) {
	m.record("GetSalesTrend")
	m.mu.Lock()
	m.lastTrend = opts
	m.mu.Unlock()
	return m.trends, m.err
}

func (m *mockRepository) GetUserGroupRankings(_ context.Context, opts repository.RankingOptions) ([]model.GroupRanking, error) {
	m.record("GetUserGroupRankings")
	return m.rankings, m.err
}

func (m *mockRepository) GetGroupTopPerformers(_ context.Context, opts repository.TopPerformersOptions) ([]model.PerformerRank, error) {
	m.record("GetGroupTopPerformers")
	return m.performers, m.err
}
