package postgre

import (
	"fmt"

	"sales-analytics-srv/internal/analytics/repository"
	"sales-analytics-srv/pkg/sqlbuilder"
)

const defaultUserOrder = "name ASC"

func appendUserFilter(b *sqlbuilder.Builder, opts repository.ListUsersOptions) {
	if opts.Role != "" {
		b.Add("u.role = $?", opts.Role)
	}
}

// buildListUsersQuery - Build the paginated user listing statement.
func buildListUsersQuery(opts repository.ListUsersOptions) (string, []any) {
	b := sqlbuilder.New()
	appendUserFilter(b, opts)

	orderBy := opts.OrderBy
	if orderBy == "" {
		orderBy = defaultUserOrder
	}

	query := "SELECT u.id, u.name, u.role, u.created_at FROM users u" +
		b.Where() +
		fmt.Sprintf(" ORDER BY u.%s", orderBy)
	query = b.AppendPagination(query, opts.Limit, opts.Offset)

	return query, b.Args()
}

// buildCountUsersQuery - Twin count statement sharing the filter fragments.
func buildCountUsersQuery(opts repository.ListUsersOptions) (string, []any) {
	b := sqlbuilder.New()
	appendUserFilter(b, opts)

	query := "SELECT COUNT(*) FROM users u" + b.Where()

	return query, b.Args()
}
