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

// ListGroups - Paginated group listing.
func (uc *implUseCase) ListGroups(ctx context.Context, input analytics.ListGroupsInput) (analytics.ListGroupsOutput, error) {
	input.Paginate.Adjust()
	column, order, orderBy := resolveSort(input.SortBy, analytics.GroupSortColumns, "name", input.SortOrder, "ASC")

	opts := repository.ListGroupsOptions{
		OrderBy: orderBy,
		Limit:   input.Paginate.Limit,
		Offset:  input.Paginate.Offset(),
	}

	groups, err := uc.repo.ListGroups(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.ListGroups: Failed to list groups: %v", err)
		return analytics.ListGroupsOutput{}, err
	}

	total, err := uc.repo.CountGroups(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.ListGroups: Failed to count groups: %v", err)
		return analytics.ListGroupsOutput{}, err
	}

	return analytics.ListGroupsOutput{
		Groups: groups,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(groups)),
			PerPage:     input.Paginate.Limit,
			CurrentPage: input.Paginate.Page,
		},
		Filters: analytics.ResolvedFilters{
			SortBy:    column,
			SortOrder: strings.ToLower(order),
		},
	}, nil
}

// GetGroup - Single group lookup; fails fast with NotFound.
func (uc *implUseCase) GetGroup(ctx context.Context, input analytics.GetGroupInput) (analytics.GetGroupOutput, error) {
	group, err := uc.repo.GetGroupByID(ctx, input.GroupID)
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return analytics.GetGroupOutput{}, analytics.ErrGroupNotFound
		}
		uc.l.Errorf(ctx, "analytics.usecase.GetGroup: Failed to get group: %v", err)
		return analytics.GetGroupOutput{}, err
	}

	return analytics.GetGroupOutput{Group: *group}, nil
}

// GetGroupSales - Guarded, paginated sales listing scoped to a group through
// membership.
func (uc *implUseCase) GetGroupSales(ctx context.Context, input analytics.GetGroupSalesInput) (analytics.GetGroupSalesOutput, error) {
	if _, err := uc.repo.GetGroupByID(ctx, input.GroupID); err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return analytics.GetGroupSalesOutput{}, analytics.ErrGroupNotFound
		}
		uc.l.Errorf(ctx, "analytics.usecase.GetGroupSales: Failed to get group: %v", err)
		return analytics.GetGroupSalesOutput{}, err
	}

	input.Paginate.Adjust()
	column, order, orderBy := resolveSort(input.SortBy, analytics.SaleSortColumns, "sale_date", input.SortOrder, "DESC")

	filter := repository.SaleFilterOptions{
		GroupID:   &input.GroupID,
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
		uc.l.Errorf(ctx, "analytics.usecase.GetGroupSales: Failed to list sales: %v", err)
		return analytics.GetGroupSalesOutput{}, err
	}

	total, err := uc.repo.CountSales(ctx, filter)
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.GetGroupSales: Failed to count sales: %v", err)
		return analytics.GetGroupSalesOutput{}, err
	}

	return analytics.GetGroupSalesOutput{
		Sales: sales,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(sales)),
			PerPage:     input.Paginate.Limit,
			CurrentPage: input.Paginate.Page,
		},
		Filters: analytics.ResolvedFilters{
			GroupID:   &input.GroupID,
			MinAmount: filter.MinAmount,
			MaxAmount: filter.MaxAmount,
			StartDate: filter.StartDate,
			EndDate:   filter.EndDate,
			SortBy:    column,
			SortOrder: strings.ToLower(order),
		},
	}, nil
}

// GetGroupPerformance - Summary, trend and top-performer ranking for one
// group over the resolved date window. Aggregates run concurrently after the
// existence guard.
func (uc *implUseCase) GetGroupPerformance(ctx context.Context, input analytics.GetGroupPerformanceInput) (analytics.GetGroupPerformanceOutput, error) {
	group, err := uc.repo.GetGroupByID(ctx, input.GroupID)
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return analytics.GetGroupPerformanceOutput{}, analytics.ErrGroupNotFound
		}
		uc.l.Errorf(ctx, "analytics.usecase.GetGroupPerformance: Failed to get group: %v", err)
		return analytics.GetGroupPerformanceOutput{}, err
	}

	start, end := resolveDateWindow(input.StartDate, input.EndDate)
	interval := oneOf(input.Interval, analytics.Intervals, analytics.DefaultInterval)

	filter := repository.SaleFilterOptions{
		GroupID:   &input.GroupID,
		StartDate: &start,
		EndDate:   &end,
	}

	var (
		summary    model.SalesSummary
		trends     []model.TrendPoint
		performers []model.PerformerRank
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
		res, err := uc.repo.GetGroupTopPerformers(gctx, repository.TopPerformersOptions{
			GroupID:   input.GroupID,
			StartDate: &start,
			EndDate:   &end,
			Limit:     defaultTopPerformers,
		})
		if err != nil {
			return err
		}
		performers = res
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.GetGroupPerformance: Aggregation failed: %v", err)
		return analytics.GetGroupPerformanceOutput{}, err
	}

	return analytics.GetGroupPerformanceOutput{
		Group:         *group,
		Summary:       summary,
		Trends:        trends,
		TopPerformers: performers,
		Filters: analytics.ResolvedFilters{
			StartDate: &start,
			EndDate:   &end,
			Interval:  interval,
		},
	}, nil
}
