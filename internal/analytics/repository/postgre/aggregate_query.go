package postgre

import (
	"fmt"

	"sales-analytics-srv/internal/analytics/repository"
	"sales-analytics-srv/pkg/sqlbuilder"
)

// buildUserGroupRankingsQuery - The user's standing within each group it
// belongs to: dense rank over summed amount, partitioned per group. Members
// come from user_groups with sales LEFT JOINed in, so group_size is the
// actual membership and a member with no sales in the window still ranks,
// with a zero total. The date predicates therefore live in the join
// condition, not the WHERE clause. The outer statement re-references the
// user id, so it asks the builder for a fresh placeholder instead of
// assuming $1.
func buildUserGroupRankingsQuery(opts repository.RankingOptions) (string, []any) {
	b := sqlbuilder.New()

	join := " LEFT JOIN sales s ON s.user_id = ug.user_id"
	if opts.StartDate != nil {
		join += fmt.Sprintf(" AND s.sale_date >= $%d", b.Bind(*opts.StartDate))
	}
	if opts.EndDate != nil {
		join += fmt.Sprintf(" AND s.sale_date <= $%d", b.Bind(*opts.EndDate))
	}

	b.Add("ug.group_id IN (SELECT m.group_id FROM user_groups m WHERE m.user_id = $?)", opts.UserID)
	userParam := b.Bind(opts.UserID)

	query := "WITH group_totals AS (" +
		"SELECT ug.group_id, ug.user_id, COALESCE(SUM(s.amount), 0) AS total_amount" +
		" FROM user_groups ug" + join +
		b.Where() +
		" GROUP BY ug.group_id, ug.user_id" +
		"), ranked AS (" +
		"SELECT group_id, user_id," +
		" DENSE_RANK() OVER (PARTITION BY group_id ORDER BY total_amount DESC) AS rank," +
		" COUNT(*) OVER (PARTITION BY group_id) AS group_size" +
		" FROM group_totals)" +
		" SELECT r.group_id, g.name, r.rank, r.group_size" +
		" FROM ranked r JOIN groups g ON g.id = r.group_id" +
		fmt.Sprintf(" WHERE r.user_id = $%d", userParam) +
		" ORDER BY g.name"

	return query, b.Args()
}

// buildGroupTopPerformersQuery - Ranking of a group's members by summed amount
// over the resolved date window.
func buildGroupTopPerformersQuery(opts repository.TopPerformersOptions) (string, []any) {
	b := sqlbuilder.New()
	b.Add("ug.group_id = $?", opts.GroupID)
	if opts.StartDate != nil {
		b.Add("s.sale_date >= $?", *opts.StartDate)
	}
	if opts.EndDate != nil {
		b.Add("s.sale_date <= $?", *opts.EndDate)
	}

	query := "SELECT s.user_id, u.name, SUM(s.amount) AS total_amount," +
		" DENSE_RANK() OVER (ORDER BY SUM(s.amount) DESC) AS rank" +
		" FROM sales s JOIN users u ON u.id = s.user_id" +
		" JOIN user_groups ug ON ug.user_id = s.user_id" +
		b.Where() +
		" GROUP BY s.user_id, u.name ORDER BY rank, s.user_id"

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", b.Bind(opts.Limit))
	}

	return query, b.Args()
}
