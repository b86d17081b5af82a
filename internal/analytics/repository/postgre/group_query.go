package postgre

import (
	"fmt"

	"sales-analytics-srv/internal/analytics/repository"
	"sales-analytics-srv/pkg/sqlbuilder"
)

const defaultGroupOrder = "name ASC"

// groupProjection includes the membership count; groups with no members count
// zero rather than disappearing.
const groupProjection = "SELECT g.id, g.name," +
	" (SELECT COUNT(*) FROM user_groups ug WHERE ug.group_id = g.id) AS member_count," +
	" g.created_at FROM groups g"

// buildListGroupsQuery - Build the paginated group listing statement.
func buildListGroupsQuery(opts repository.ListGroupsOptions) (string, []any) {
	b := sqlbuilder.New()

	orderBy := opts.OrderBy
	if orderBy == "" {
		orderBy = defaultGroupOrder
	}

	query := groupProjection + fmt.Sprintf(" ORDER BY g.%s", orderBy)
	query = b.AppendPagination(query, opts.Limit, opts.Offset)

	return query, b.Args()
}

// buildCountGroupsQuery - Twin count statement.
func buildCountGroupsQuery(_ repository.ListGroupsOptions) (string, []any) {
	return "SELECT COUNT(*) FROM groups g", nil
}
