package repository

import (
	"context"

	"sales-analytics-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	ListUsers(ctx context.Context, opts ListUsersOptions) ([]model.User, error)
	CountUsers(ctx context.Context, opts ListUsersOptions) (int64, error)

	GetGroupByID(ctx context.Context, id int64) (*model.Group, error)
	ListGroups(ctx context.Context, opts ListGroupsOptions) ([]model.Group, error)
	CountGroups(ctx context.Context, opts ListGroupsOptions) (int64, error)

	GetSaleByID(ctx context.Context, id int64) (*model.Sale, error)
	ListSales(ctx context.Context, opts ListSalesOptions) ([]model.Sale, error)
	CountSales(ctx context.Context, opts SaleFilterOptions) (int64, error)

	GetSalesSummary(ctx context.Context, opts SaleFilterOptions) (model.SalesSummary, error)
	GetSalesTrend(ctx context.Context, opts TrendOptions) ([]model.TrendPoint, error)
	GetUserGroupRankings(ctx context.Context, opts RankingOptions) ([]model.GroupRanking, error)
	GetGroupTopPerformers(ctx context.Context, opts TopPerformersOptions) ([]model.PerformerRank, error)
}
