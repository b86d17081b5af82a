package postgre

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"sales-analytics-srv/internal/analytics/repository"
)

func TestBuildUserGroupRankingsQuery(t *testing.T) {
	query, args := buildUserGroupRankingsQuery(repository.RankingOptions{
		UserID:    42,
		StartDate: date("2021-01-01"),
		EndDate:   date("2021-12-31"),
	})

	// The date predicates belong to the LEFT JOIN condition so that members
	// without sales in the window still produce a row; the CTE's WHERE holds
	// only the membership filter.
	assert.Contains(t, query, "LEFT JOIN sales s ON s.user_id = ug.user_id AND s.sale_date >= $1 AND s.sale_date <= $2")
	assert.Contains(t, query, " WHERE ug.group_id IN (SELECT m.group_id FROM user_groups m WHERE m.user_id = $3) GROUP BY ug.group_id, ug.user_id")

	// Zero-sale members sum to 0, not NULL, and group_size counts the whole
	// membership.
	assert.Contains(t, query, "COALESCE(SUM(s.amount), 0) AS total_amount")
	assert.Contains(t, query, "DENSE_RANK() OVER (PARTITION BY group_id ORDER BY total_amount DESC)")
	assert.Contains(t, query, "COUNT(*) OVER (PARTITION BY group_id) AS group_size")

	// The outer query re-binds the user id with a fresh placeholder rather
	// than reusing the membership one.
	assert.Contains(t, query, "WHERE r.user_id = $4")
	assert.Equal(t, []any{*date("2021-01-01"), *date("2021-12-31"), int64(42), int64(42)}, args)
}

func TestBuildUserGroupRankingsQueryNoDates(t *testing.T) {
	query, args := buildUserGroupRankingsQuery(repository.RankingOptions{UserID: 9})

	assert.Contains(t, query, "LEFT JOIN sales s ON s.user_id = ug.user_id WHERE ug.group_id")
	assert.Contains(t, query, "WHERE r.user_id = $2")
	assert.Equal(t, []any{int64(9), int64(9)}, args)
}

func TestBuildGroupTopPerformersQuery(t *testing.T) {
	query, args := buildGroupTopPerformersQuery(repository.TopPerformersOptions{
		GroupID:   7,
		StartDate: date("2021-01-01"),
		EndDate:   date("2021-12-31"),
		Limit:     5,
	})

	assert.Contains(t, query, "ug.group_id = $1")
	assert.Contains(t, query, "DENSE_RANK() OVER (ORDER BY SUM(s.amount) DESC)")
	assert.Contains(t, query, " LIMIT $4")
	assert.Equal(t, []any{int64(7), *date("2021-01-01"), *date("2021-12-31"), int64(5)}, args)

	refs := regexp.MustCompile(`\$(\d)`).FindAllString(query, -1)
	assert.ElementsMatch(t, []string{"$1", "$2", "$3", "$4"}, refs)
}
