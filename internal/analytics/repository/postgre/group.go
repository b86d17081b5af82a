package postgre

import (
	"context"
	"database/sql"

	"sales-analytics-srv/internal/analytics/repository"
	"sales-analytics-srv/internal/model"
)

// GetGroupByID - Existence guard lookup for a group, with its member count.
func (r *implRepository) GetGroupByID(ctx context.Context, id int64) (*model.Group, error) {
	var group model.Group

	err := r.db.QueryRowContext(ctx, groupProjection+" WHERE g.id = $1", id).
		Scan(&group.ID, &group.Name, &group.MemberCount, &group.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrGroupNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.GetGroupByID: Failed to get group: %v", err)
		return nil, err
	}

	return &group, nil
}

// ListGroups - List groups with ordering and pagination.
func (r *implRepository) ListGroups(ctx context.Context, opts repository.ListGroupsOptions) ([]model.Group, error) {
	query, args := buildListGroupsQuery(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.ListGroups: Failed to query groups: %v", err)
		return nil, err
	}
	defer rows.Close()

	groups := make([]model.Group, 0)
	for rows.Next() {
		var group model.Group
		if err := rows.Scan(&group.ID, &group.Name, &group.MemberCount, &group.CreatedAt); err != nil {
			r.l.Errorf(ctx, "analytics.repository.postgre.ListGroups: Failed to scan group: %v", err)
			return nil, err
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.ListGroups: Rows error: %v", err)
		return nil, err
	}

	return groups, nil
}

// CountGroups - Count all groups.
func (r *implRepository) CountGroups(ctx context.Context, opts repository.ListGroupsOptions) (int64, error) {
	query, args := buildCountGroupsQuery(opts)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "analytics.repository.postgre.CountGroups: Failed to count groups: %v", err)
		return 0, err
	}

	return total, nil
}
