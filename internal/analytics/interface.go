package analytics

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	ListUsers(ctx context.Context, input ListUsersInput) (ListUsersOutput, error)
	GetUser(ctx context.Context, input GetUserInput) (GetUserOutput, error)
	GetUserSales(ctx context.Context, input GetUserSalesInput) (GetUserSalesOutput, error)
	GetUserPerformance(ctx context.Context, input GetUserPerformanceInput) (GetUserPerformanceOutput, error)

	ListGroups(ctx context.Context, input ListGroupsInput) (ListGroupsOutput, error)
	GetGroup(ctx context.Context, input GetGroupInput) (GetGroupOutput, error)
	GetGroupSales(ctx context.Context, input GetGroupSalesInput) (GetGroupSalesOutput, error)
	GetGroupPerformance(ctx context.Context, input GetGroupPerformanceInput) (GetGroupPerformanceOutput, error)

	ListSales(ctx context.Context, input ListSalesInput) (ListSalesOutput, error)
	GetSale(ctx context.Context, input GetSaleInput) (GetSaleOutput, error)
	GetSalesSummary(ctx context.Context, input GetSalesSummaryInput) (GetSalesSummaryOutput, error)
}
