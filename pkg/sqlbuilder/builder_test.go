package sqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	t.Run("empty builder renders no WHERE clause", func(t *testing.T) {
		b := New()

		assert.Equal(t, "", b.Where())
		assert.Empty(t, b.Args())
		assert.Equal(t, 1, b.Next())
	})

	t.Run("placeholder numbering is contiguous and 1-based", func(t *testing.T) {
		b := New()
		b.Add("s.sale_date >= $?", "2021-02-01")
		b.Add("s.sale_date <= $?", "2021-02-28")
		b.Add("s.amount >= $?", 10.0)

		assert.Equal(t, " WHERE s.sale_date >= $1 AND s.sale_date <= $2 AND s.amount >= $3", b.Where())
		assert.Equal(t, []any{"2021-02-01", "2021-02-28", 10.0}, b.Args())
		assert.Equal(t, 4, b.Next())
	})

	t.Run("seed values shift fragment numbering", func(t *testing.T) {
		b := New("month")
		b.Add("s.user_id = $?", int64(42))

		assert.Equal(t, " WHERE s.user_id = $2", b.Where())
		assert.Equal(t, []any{"month", int64(42)}, b.Args())
	})

	t.Run("args snapshot is not mutated by pagination", func(t *testing.T) {
		b := New()
		b.Add("u.role = $?", "rep")

		filterArgs := b.Args()
		query := b.AppendPagination("SELECT * FROM users u"+b.Where(), 10, 20)

		assert.Equal(t, "SELECT * FROM users u WHERE u.role = $1 LIMIT $2 OFFSET $3", query)
		assert.Equal(t, []any{"rep"}, filterArgs)
		assert.Equal(t, []any{"rep", int64(10), int64(20)}, b.Args())
	})

	t.Run("count args match filter args when built from the same inputs", func(t *testing.T) {
		buildFilter := func() *Builder {
			b := New()
			b.Add("s.user_id = $?", int64(7))
			b.Add("s.amount <= $?", 500.0)
			return b
		}

		listing := buildFilter()
		listing.AppendPagination("q", 10, 0)
		count := buildFilter()

		assert.Len(t, count.Args(), 2)
		assert.Equal(t, count.Args(), listing.Args()[:2])
	})
}
