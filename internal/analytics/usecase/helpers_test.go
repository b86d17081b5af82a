package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-analytics-srv/internal/analytics"
)

func TestOneOf(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      string
	}{
		{"allowed value passes through", "amount", "amount"},
		{"unknown value falls back", "amount; DROP TABLE sales", "sale_date"},
		{"empty value falls back", "", "sale_date"},
		{"membership is case-sensitive", "Amount", "sale_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := oneOf(tt.candidate, analytics.SaleSortColumns, "sale_date")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveOrder(t *testing.T) {
	assert.Equal(t, "ASC", resolveOrder("asc", "DESC"))
	assert.Equal(t, "ASC", resolveOrder("ASC", "DESC"))
	assert.Equal(t, "DESC", resolveOrder("DeSc", "ASC"))
	assert.Equal(t, "DESC", resolveOrder("sideways", "DESC"))
	assert.Equal(t, "ASC", resolveOrder("", "ASC"))
}

func TestResolveSort(t *testing.T) {
	column, order, orderBy := resolveSort("amount", analytics.SaleSortColumns, "sale_date", "asc", "DESC")
	assert.Equal(t, "amount", column)
	assert.Equal(t, "ASC", order)
	assert.Equal(t, "amount ASC", orderBy)

	_, _, orderBy = resolveSort("evil_column", analytics.SaleSortColumns, "sale_date", "evil_order", "DESC")
	assert.Equal(t, "sale_date DESC", orderBy)
}

func TestParseOptionalDate(t *testing.T) {
	d := parseOptionalDate("2021-02-01")
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC), *d)

	assert.Nil(t, parseOptionalDate(""))
	assert.Nil(t, parseOptionalDate("not-a-date"))
	assert.Nil(t, parseOptionalDate("01/02/2021"))
}

func TestResolveDateWindow(t *testing.T) {
	t.Run("explicit bounds", func(t *testing.T) {
		start, end := resolveDateWindow("2021-02-01", "2021-02-28")
		assert.Equal(t, "2021-02-01", start.Format("2006-01-02"))
		assert.Equal(t, "2021-02-28", end.Format("2006-01-02"))
	})

	t.Run("absent bounds fall back to the 2021 window", func(t *testing.T) {
		start, end := resolveDateWindow("", "")
		assert.Equal(t, analytics.DefaultStartDate, start.Format("2006-01-02"))
		assert.Equal(t, analytics.DefaultEndDate, end.Format("2006-01-02"))
	})

	t.Run("malformed bound falls back without error", func(t *testing.T) {
		start, end := resolveDateWindow("garbage", "2021-06-30")
		assert.Equal(t, analytics.DefaultStartDate, start.Format("2006-01-02"))
		assert.Equal(t, "2021-06-30", end.Format("2006-01-02"))
	})
}

func TestParseOptionalNumbers(t *testing.T) {
	f := parseOptionalFloat("12.5")
	require.NotNil(t, f)
	assert.Equal(t, 12.5, *f)
	assert.Nil(t, parseOptionalFloat(""))
	assert.Nil(t, parseOptionalFloat("twelve"))

	i := parseOptionalInt64("42")
	require.NotNil(t, i)
	assert.Equal(t, int64(42), *i)
	assert.Nil(t, parseOptionalInt64(""))
	assert.Nil(t, parseOptionalInt64("4.2"))
}
