package postgre

import (
	"context"
	"database/sql"

	"sales-analytics-srv/internal/analytics/repository"
	"sales-analytics-srv/internal/model"
)

// GetUserByID - Existence guard lookup for a user.
func (r *implRepository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User

	err := r.db.QueryRowContext(ctx,
		"SELECT u.id, u.name, u.role, u.created_at FROM users u WHERE u.id = $1", id,
	).Scan(&user.ID, &user.Name, &user.Role, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.GetUserByID: Failed to get user: %v", err)
		return nil, err
	}

	return &user, nil
}

// ListUsers - List users with filters, ordering and pagination.
func (r *implRepository) ListUsers(ctx context.Context, opts repository.ListUsersOptions) ([]model.User, error) {
	query, args := buildListUsersQuery(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.ListUsers: Failed to query users: %v", err)
		return nil, err
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Role, &user.CreatedAt); err != nil {
			r.l.Errorf(ctx, "analytics.repository.postgre.ListUsers: Failed to scan user: %v", err)
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.ListUsers: Rows error: %v", err)
		return nil, err
	}

	return users, nil
}

// CountUsers - Count users matching the same filters as ListUsers.
func (r *implRepository) CountUsers(ctx context.Context, opts repository.ListUsersOptions) (int64, error) {
	query, args := buildCountUsersQuery(opts)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.CountUsers: Failed to count users: %v", err)
		return 0, err
	}

	return total, nil
}
