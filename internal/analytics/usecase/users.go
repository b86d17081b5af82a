package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"sales-analytics-srv/internal/analytics"
	"sales-analytics-srv/internal/analytics/repository"
	"sales-analytics-srv/internal/model"
	"sales-analytics-srv/pkg/paginator"
)

// ListUsers - Paginated user listing with an optional role filter.
func (uc *implUseCase) ListUsers(ctx context.Context, input analytics.ListUsersInput) (analytics.ListUsersOutput, error) {
	input.Paginate.Adjust()
	column, order, orderBy := resolveSort(input.SortBy, analytics.UserSortColumns, "name", input.SortOrder, "ASC")

	opts := repository.ListUsersOptions{
		Role:    input.Role,
		OrderBy: orderBy,
		Limit:   input.Paginate.Limit,
		Offset:  input.Paginate.Offset(),
	}

	users, err := uc.repo.ListUsers(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.ListUsers: Failed to list users: %v", err)
		return analytics.ListUsersOutput{}, err
	}

	total, err := uc.repo.CountUsers(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.ListUsers: Failed to count users: %v", err)
		return analytics.ListUsersOutput{}, err
	}

	return analytics.ListUsersOutput{
		Users: users,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(users)),
			PerPage:     input.Paginate.Limit,
			CurrentPage: input.Paginate.Page,
		},
		Filters: analytics.ResolvedFilters{
			Role:      input.Role,
			SortBy:    column,
			SortOrder: strings.ToLower(order),
		},
	}, nil
}

// GetUser - Single user lookup; fails fast with NotFound.
func (uc *implUseCase) GetUser(ctx context.Context, input analytics.GetUserInput) (analytics.GetUserOutput, error) {
	user, err := uc.repo.GetUserByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return analytics.GetUserOutput{}, analytics.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "analytics.usecase.GetUser: Failed to get user: %v", err)
		return analytics.GetUserOutput{}, err
	}

	return analytics.GetUserOutput{User: *user}, nil
}

// GetUserSales - Guarded, paginated sales listing scoped to one user. The
// existence guard runs first; the listing and its count never execute for a
// nonexistent user.
func (uc *implUseCase) GetUserSales(ctx context.Context, input analytics.GetUserSalesInput) (analytics.GetUserSalesOutput, error) {
	if _, err := uc.repo.GetUserByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return analytics.GetUserSalesOutput{}, analytics.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "analytics.usecase.GetUserSales: Failed to get user: %v", err)
		return analytics.GetUserSalesOutput{}, err
	}

	input.Paginate.Adjust()
	column, order, orderBy := resolveSort(input.SortBy, analytics.SaleSortColumns, "sale_date", input.SortOrder, "DESC")

	filter := repository.SaleFilterOptions{
		UserID:    &input.UserID,
		MinAmount: parseOptionalFloat(input.MinAmount),
		MaxAmount: parseOptionalFloat(input.MaxAmount),
		StartDate: parseOptionalDate(input.StartDate),
		EndDate:   parseOptionalDate(input.EndDate),
	}

	sales, err := uc.repo.ListSales(ctx, repository.ListSalesOptions{
		Filter:  filter,
		OrderBy: orderBy,
		Limit:   input.Paginate.Limit,
		Offset:  input.Paginate.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.GetUserSales: Failed to list sales: %v", err)
		return analytics.GetUserSalesOutput{}, err
	}

	total, err := uc.repo.CountSales(ctx, filter)
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.GetUserSales: Failed to count sales: %v", err)
		return analytics.GetUserSalesOutput{}, err
	}

	return analytics.GetUserSalesOutput{
		Sales: sales,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(sales)),
			PerPage:     input.Paginate.Limit,
			CurrentPage: input.Paginate.Page,
		},
		Filters: analytics.ResolvedFilters{
			UserID:    &input.UserID,
			MinAmount: filter.MinAmount,
			MaxAmount: filter.MaxAmount,
			StartDate: filter.StartDate,
			EndDate:   filter.EndDate,
			SortBy:    column,
			SortOrder: strings.ToLower(order),
		},
	}, nil
}

// GetUserPerformance - Summary, trend and per-group rankings for one user over
// the resolved date window. The three aggregate statements share the same
// filter semantics and have no data dependency, so they run concurrently; any
// one failing fails the request. No transaction spans them: a writer landing
// between two statements can make them observe different snapshots, which is
// accepted for this read-only analytics path.
func (uc *implUseCase) GetUserPerformance(ctx context.Context, input analytics.GetUserPerformanceInput) (analytics.GetUserPerformanceOutput, error) {
	user, err := uc.repo.GetUserByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return analytics.GetUserPerformanceOutput{}, analytics.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "analytics.usecase.GetUserPerformance: Failed to get user: %v", err)
		return analytics.GetUserPerformanceOutput{}, err
	}

	start, end := resolveDateWindow(input.StartDate, input.EndDate)
	interval := oneOf(input.Interval, analytics.Intervals, analytics.DefaultInterval)

	filter := repository.SaleFilterOptions{
		UserID:    &input.UserID,
		StartDate: &start,
		EndDate:   &end,
	}

	var (
		summary  model.SalesSummary
		trends   []model.TrendPoint
		rankings []model.GroupRanking
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res, err := uc.repo.GetSalesSummary(gctx, filter)
		if err != nil {
			return err
		}
		summary = res
		return nil
	})

	g.Go(func() error {
		res, err := uc.repo.GetSalesTrend(gctx, repository.TrendOptions{Filter: filter, Interval: interval})
		if err != nil {
			return err
		}
		trends = res
		return nil
	})

	g.Go(func() error {
		res, err := uc.repo.GetUserGroupRankings(gctx, repository.RankingOptions{
			UserID:    input.UserID,
			StartDate: &start,
			EndDate:   &end,
		})
		if err != nil {
			return err
		}
		rankings = res
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.GetUserPerformance: Aggregation failed: %v", err)
		return analytics.GetUserPerformanceOutput{}, err
	}

	return analytics.GetUserPerformanceOutput{
		User:     *user,
		Summary:  summary,
		Trends:   trends,
		Rankings: rankings,
		Filters: analytics.ResolvedFilters{
			StartDate: &start,
			EndDate:   &end,
			Interval:  interval,
		},
	}, nil
}
