package postgre

import (
	"context"
	"database/sql"

	"sales-analytics-srv/internal/analytics/repository"
	"sales-analytics-srv/internal/model"
)

// nullFloat converts a nullable aggregate to a pointer. NULL stays nil so
// "no data" never reads as "zero activity".
func nullFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

// GetSalesSummary - Scalar summary (count, sum, avg, min, max) over the
// filtered set. Zero matching rows yields count 0 and nil aggregates.
func (r *implRepository) GetSalesSummary(ctx context.Context, opts repository.SaleFilterOptions) (model.SalesSummary, error) {
	query, args := buildSalesSummaryQuery(opts)

	var (
		summary                        model.SalesSummary
		sumAmt, avgAmt, minAmt, maxAmt sql.NullFloat64
	)
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&summary.TotalSales, &sumAmt, &avgAmt, &minAmt, &maxAmt)
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.GetSalesSummary: Failed to query summary: %v", err)
		return model.SalesSummary{}, err
	}

	summary.TotalAmount = nullFloat(sumAmt)
	summary.AverageAmount = nullFloat(avgAmt)
	summary.MinAmount = nullFloat(minAmt)
	summary.MaxAmount = nullFloat(maxAmt)

	return summary, nil
}

// GetSalesTrend - Time-bucketed trend grouped by the validated granularity.
// An empty window returns an empty slice, not an error.
func (r *implRepository) GetSalesTrend(ctx context.Context, opts repository.TrendOptions) ([]model.TrendPoint, error) {
	query, args := buildSalesTrendQuery(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.GetSalesTrend: Failed to query trend: %v", err)
		return nil, err
	}
	defer rows.Close()

	trends := make([]model.TrendPoint, 0)
	for rows.Next() {
		var (
			point model.TrendPoint
			total sql.NullFloat64
		)
		if err := rows.Scan(&point.Period, &point.SalesCount, &total); err != nil {
			r.l.Errorf(ctx, "analytics.repository.postgre.GetSalesTrend: Failed to scan trend point: %v", err)
			return nil, err
		}
		point.TotalAmount = nullFloat(total)
		trends = append(trends, point)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.GetSalesTrend: Rows error: %v", err)
		return nil, err
	}

	return trends, nil
}

// GetUserGroupRankings - The user's dense-rank standing in each group it
// belongs to. A user with no memberships gets an empty slice; a member with
// no sales in the window still ranks, with a zero total.
func (r *implRepository) GetUserGroupRankings(ctx context.Context, opts repository.RankingOptions) ([]model.GroupRanking, error) {
	query, args := buildUserGroupRankingsQuery(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.GetUserGroupRankings: Failed to query rankings: %v", err)
		return nil, err
	}
	defer rows.Close()

	rankings := make([]model.GroupRanking, 0)
	for rows.Next() {
		var ranking model.GroupRanking
		if err := rows.Scan(&ranking.GroupID, &ranking.GroupName, &ranking.Rank, &ranking.GroupSize); err != nil {
			r.l.Errorf(ctx, "analytics.repository.postgre.GetUserGroupRankings: Failed to scan ranking: %v", err)
			return nil, err
		}
		rankings = append(rankings, ranking)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.GetUserGroupRankings: Rows error: %v", err)
		return nil, err
	}

	return rankings, nil
}

// GetGroupTopPerformers - Members of a group ranked by summed amount.
func (r *implRepository) GetGroupTopPerformers(ctx context.Context, opts repository.TopPerformersOptions) ([]model.PerformerRank, error) {
	query, args := buildGroupTopPerformersQuery(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.GetGroupTopPerformers: Failed to query performers: %v", err)
		return nil, err
	}
	defer rows.Close()

	performers := make([]model.PerformerRank, 0)
	for rows.Next() {
		var performer model.PerformerRank
		if err := rows.Scan(&performer.UserID, &performer.UserName, &performer.TotalAmount, &performer.Rank); err != nil {
			r.l.Errorf(ctx, "analytics.repository.postgre.GetGroupTopPerformers: Failed to scan performer: %v", err)
			return nil, err
		}
		performers = append(performers, performer)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.GetGroupTopPerformers: Rows error: %v", err)
		return nil, err
	}

	return performers, nil
}
