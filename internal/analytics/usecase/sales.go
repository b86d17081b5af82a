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

// ListSales - Paginated sales listing over the full filter set: user scope,
// group scope (through membership), amount bounds and date range.
func (uc *implUseCase) ListSales(ctx context.Context, input analytics.ListSalesInput) (analytics.ListSalesOutput, error) {
	input.Paginate.Adjust()
	column, order, orderBy := resolveSort(input.SortBy, analytics.SaleSortColumns, "sale_date", input.SortOrder, "DESC")

	filter := repository.SaleFilterOptions{
		UserID:    parseOptionalInt64(input.UserID),
		GroupID:   parseOptionalInt64(input.GroupID),
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
		uc.l.Errorf(ctx, "analytics.usecase.ListSales: Failed to list sales: %v", err)
		return analytics.ListSalesOutput{}, err
	}

	total, err := uc.repo.CountSales(ctx, filter)
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.ListSales: Failed to count sales: %v", err)
		return analytics.ListSalesOutput{}, err
	}

	return analytics.ListSalesOutput{
		Sales: sales,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(sales)),
			PerPage:     input.Paginate.Limit,
			CurrentPage: input.Paginate.Page,
		},
		Filters: analytics.ResolvedFilters{
			UserID:    filter.UserID,
			GroupID:   filter.GroupID,
			MinAmount: filter.MinAmount,
			MaxAmount: filter.MaxAmount,
			StartDate: filter.StartDate,
			EndDate:   filter.EndDate,
			SortBy:    column,
			SortOrder: strings.ToLower(order),
		},
	}, nil
}

// GetSale - Single sale lookup; fails fast with NotFound.
func (uc *implUseCase) GetSale(ctx context.Context, input analytics.GetSaleInput) (analytics.GetSaleOutput, error) {
	sale, err := uc.repo.GetSaleByID(ctx, input.SaleID)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return analytics.GetSaleOutput{}, analytics.ErrSaleNotFound
		}
		uc.l.Errorf(ctx, "analytics.usecase.GetSale: Failed to get sale: %v", err)
		return analytics.GetSaleOutput{}, err
	}

	return analytics.GetSaleOutput{Sale: *sale}, nil
}

// GetSalesSummary - Fleet-wide summary and trend with optional role and group
// scope. The two aggregates share the same resolved filters and run
// concurrently.
func (uc *implUseCase) GetSalesSummary(ctx context.Context, input analytics.GetSalesSummaryInput) (analytics.GetSalesSummaryOutput, error) {
	start, end := resolveDateWindow(input.StartDate, input.EndDate)
	interval := oneOf(input.Interval, analytics.Intervals, analytics.DefaultInterval)

	filter := repository.SaleFilterOptions{
		Role:      input.Role,
		GroupID:   parseOptionalInt64(input.GroupID),
		StartDate: &start,
		EndDate:   &end,
	}

	var (
		summary model.SalesSummary
		trends  []model.TrendPoint
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

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.GetSalesSummary: Aggregation failed: %v", err)
		return analytics.GetSalesSummaryOutput{}, err
	}

	return analytics.GetSalesSummaryOutput{
		Summary: summary,
		Trends:  trends,
		Filters: analytics.ResolvedFilters{
			Role:      input.Role,
			GroupID:   filter.GroupID,
			StartDate: &start,
			EndDate:   &end,
			Interval:  interval,
		},
	}, nil
}
