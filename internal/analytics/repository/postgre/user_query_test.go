package postgre

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sales-analytics-srv/internal/analytics/repository"
)

func TestBuildListUsersQuery(t *testing.T) {
	t.Run("role filter with ordering and pagination", func(t *testing.T) {
		query, args := buildListUsersQuery(repository.ListUsersOptions{
			Role:    "rep",
			OrderBy: "name ASC",
			Limit:   100,
			Offset:  0,
		})

		assert.Equal(t,
			"SELECT u.id, u.name, u.role, u.created_at FROM users u"+
				" WHERE u.role = $1 ORDER BY u.name ASC LIMIT $2 OFFSET $3",
			query)
		assert.Equal(t, []any{"rep", int64(100), int64(0)}, args)
	})

	t.Run("count shares the filter subset", func(t *testing.T) {
		opts := repository.ListUsersOptions{Role: "manager", OrderBy: "role DESC", Limit: 10, Offset: 10}

		countQuery, countArgs := buildCountUsersQuery(opts)
		_, listArgs := buildListUsersQuery(opts)

		assert.Equal(t, "SELECT COUNT(*) FROM users u WHERE u.role = $1", countQuery)
		assert.Equal(t, countArgs, listArgs[:len(countArgs)])
	})

	t.Run("no role renders no WHERE", func(t *testing.T) {
		query, args := buildCountUsersQuery(repository.ListUsersOptions{})
		assert.Equal(t, "SELECT COUNT(*) FROM users u", query)
		assert.Empty(t, args)
	})
}

func TestBuildListGroupsQuery(t *testing.T) {
	query, args := buildListGroupsQuery(repository.ListGroupsOptions{
		OrderBy: "name ASC",
		Limit:   100,
		Offset:  0,
	})

	assert.Contains(t, query, "(SELECT COUNT(*) FROM user_groups ug WHERE ug.group_id = g.id) AS member_count")
	assert.Contains(t, query, " ORDER BY g.name ASC LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{int64(100), int64(0)}, args)
}
