package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateQueryAdjust(t *testing.T) {
	tests := []struct {
		name      string
		query     PaginateQuery
		wantPage  int
		wantLimit int64
	}{
		{"valid values pass through", PaginateQuery{Page: 2, Limit: 10}, 2, 10},
		{"zero page defaults to 1", PaginateQuery{Page: 0, Limit: 10}, 1, 10},
		{"negative page defaults to 1", PaginateQuery{Page: -3, Limit: 10}, 1, 10},
		{"zero limit defaults to 100", PaginateQuery{Page: 1, Limit: 0}, 1, 100},
		{"large limit is not clamped", PaginateQuery{Page: 1, Limit: 100000}, 1, 100000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.query.Adjust()
			assert.Equal(t, tt.wantPage, tt.query.Page)
			assert.Equal(t, tt.wantLimit, tt.query.Limit)
		})
	}
}

func TestPaginateQueryOffset(t *testing.T) {
	q := PaginateQuery{Page: 3, Limit: 10}
	assert.Equal(t, int64(20), q.Offset())

	q = PaginateQuery{Page: 1, Limit: 100}
	assert.Equal(t, int64(0), q.Offset())
}

func TestPaginator(t *testing.T) {
	t.Run("pages is ceil of total over limit", func(t *testing.T) {
		p := Paginator{Total: 25, PerPage: 10, CurrentPage: 2}
		assert.Equal(t, 3, p.TotalPages())

		p = Paginator{Total: 30, PerPage: 10, CurrentPage: 1}
		assert.Equal(t, 3, p.TotalPages())

		p = Paginator{Total: 0, PerPage: 10, CurrentPage: 1}
		assert.Equal(t, 0, p.TotalPages())
	})

	t.Run("next present iff page below pages, prev iff page above 1", func(t *testing.T) {
		p := Paginator{Total: 25, PerPage: 10, CurrentPage: 2}
		assert.True(t, p.HasNextPage())
		assert.True(t, p.HasPreviousPage())

		p.CurrentPage = 1
		assert.True(t, p.HasNextPage())
		assert.False(t, p.HasPreviousPage())

		p.CurrentPage = 3
		assert.False(t, p.HasNextPage())
		assert.True(t, p.HasPreviousPage())
	})

	t.Run("wire format", func(t *testing.T) {
		p := Paginator{Total: 25, Count: 10, PerPage: 10, CurrentPage: 2}
		resp := p.ToResponse()

		assert.Equal(t, PaginatorResponse{Page: 2, Limit: 10, Total: 25, Pages: 3}, resp)
	})
}
