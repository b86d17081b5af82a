package postgre

import (
	"fmt"

	"sales-analytics-srv/internal/analytics/repository"
	"sales-analytics-srv/pkg/sqlbuilder"
)

const defaultSaleOrder = "sale_date DESC"

// saleFrom renders the FROM clause for sale statements. Joins are appended
// conditionally in a fixed order, before any WHERE fragment is emitted: the
// users join when the projection or a role filter needs it, the membership
// join when a group scope is present. A sale reaches a group only through
// membership, so the join yields at most one row per sale for a single group
// scope.
func saleFrom(opts repository.SaleFilterOptions, withUser bool) string {
	from := " FROM sales s"
	if withUser || opts.Role != "" {
		from += " JOIN users u ON u.id = s.user_id"
	}
	if opts.GroupID != nil {
		from += " JOIN user_groups ug ON ug.user_id = s.user_id"
	}
	return from
}

// appendSaleFilter adds the shared filter fragments in a fixed order. Every
// statement derived from one request (listing, count, summary, trend) calls
// this with the same options, so their parameter lists always agree regardless
// of what each statement appends afterwards.
func appendSaleFilter(b *sqlbuilder.Builder, opts repository.SaleFilterOptions) {
	if opts.UserID != nil {
		b.Add("s.user_id = $?", *opts.UserID)
	}
	if opts.GroupID != nil {
		b.Add("ug.group_id = $?", *opts.GroupID)
	}
	if opts.Role != "" {
		b.Add("u.role = $?", opts.Role)
	}
	if opts.MinAmount != nil {
		b.Add("s.amount >= $?", *opts.MinAmount)
	}
	if opts.MaxAmount != nil {
		b.Add("s.amount <= $?", *opts.MaxAmount)
	}
	if opts.StartDate != nil {
		b.Add("s.sale_date >= $?", *opts.StartDate)
	}
	if opts.EndDate != nil {
		b.Add("s.sale_date <= $?", *opts.EndDate)
	}
}

// buildListSalesQuery - Build the paginated listing statement.
func buildListSalesQuery(opts repository.ListSalesOptions) (string, []any) {
	b := sqlbuilder.New()
	appendSaleFilter(b, opts.Filter)

	orderBy := opts.OrderBy
	if orderBy == "" {
		orderBy = defaultSaleOrder
	}

	query := "SELECT s.id, s.user_id, u.name, s.amount, s.sale_date, s.created_at" +
		saleFrom(opts.Filter, true) +
		b.Where() +
		fmt.Sprintf(" ORDER BY s.%s", orderBy)
	query = b.AppendPagination(query, opts.Limit, opts.Offset)

	return query, b.Args()
}

// buildCountSalesQuery - Build the twin count statement. It re-invokes the
// same filter logic on the same inputs, so its parameter list matches the
// listing statement's filter subset exactly and never includes pagination
// values.
func buildCountSalesQuery(opts repository.SaleFilterOptions) (string, []any) {
	b := sqlbuilder.New()
	appendSaleFilter(b, opts)

	query := "SELECT COUNT(*)" + saleFrom(opts, false) + b.Where()

	return query, b.Args()
}

// buildSalesSummaryQuery - Scalar aggregates over the filtered set. SUM/AVG/
// MIN/MAX stay NULL over zero rows; the scan preserves that.
func buildSalesSummaryQuery(opts repository.SaleFilterOptions) (string, []any) {
	b := sqlbuilder.New()
	appendSaleFilter(b, opts)

	query := "SELECT COUNT(*), SUM(s.amount), AVG(s.amount), MIN(s.amount), MAX(s.amount)" +
		saleFrom(opts, false) +
		b.Where()

	return query, b.Args()
}

// buildSalesTrendQuery - Time-bucketed trend. The validated granularity is
// bound as $1 via the builder's seed, so filter fragments continue from $2.
func buildSalesTrendQuery(opts repository.TrendOptions) (string, []any) {
	b := sqlbuilder.New(opts.Interval)
	appendSaleFilter(b, opts.Filter)

	query := "SELECT date_trunc($1, s.sale_date::timestamp) AS period, COUNT(*), SUM(s.amount)" +
		saleFrom(opts.Filter, false) +
		b.Where() +
		" GROUP BY period ORDER BY period"

	return query, b.Args()
}
