package postgre

import (
	"context"
	"database/sql"

	"sales-analytics-srv/internal/analytics/repository"
	"sales-analytics-srv/internal/model"
)

// GetSaleByID - Existence guard lookup for a sale.
func (r *implRepository) GetSaleByID(ctx context.Context, id int64) (*model.Sale, error) {
	var sale model.Sale

	err := r.db.QueryRowContext(ctx,
		"SELECT s.id, s.user_id, u.name, s.amount, s.sale_date, s.created_at"+
			" FROM sales s JOIN users u ON u.id = s.user_id WHERE s.id = $1", id,
	).Scan(&sale.ID, &sale.UserID, &sale.UserName, &sale.Amount, &sale.SaleDate, &sale.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrSaleNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.GetSaleByID: Failed to get sale: %v", err)
		return nil, err
	}

	return &sale, nil
}

// ListSales - List sales with filters, ordering and pagination.
func (r *implRepository) ListSales(ctx context.Context, opts repository.ListSalesOptions) ([]model.Sale, error) {
	query, args := buildListSalesQuery(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.ListSales: Failed to query sales: %v", err)
		return nil, err
	}
	defer rows.Close()

	sales := make([]model.Sale, 0)
	for rows.Next() {
		var sale model.Sale
		if err := rows.Scan(&sale.ID, &sale.UserID, &sale.UserName, &sale.Amount, &sale.SaleDate, &sale.CreatedAt); err != nil {
			r.l.Errorf(ctx, "analytics.repository.postgre.ListSales: Failed to scan sale: %v", err)
			return nil, err
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.ListSales: Rows error: %v", err)
		return nil, err
	}

	return sales, nil
}

// CountSales - Count sales matching the same filter set as the listing. The
// count statement shares the listing's filter parameters and nothing else.
func (r *implRepository) CountSales(ctx context.Context, opts repository.SaleFilterOptions) (int64, error) {
	query, args := buildCountSalesQuery(opts)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.CountSales: Failed to count sales: %v", err)
		return 0, err
	}

	return total, nil
}
