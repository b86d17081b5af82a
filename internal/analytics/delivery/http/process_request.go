package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"sales-analytics-srv/pkg/paginator"
)

// paginateQuery parses page and limit independently, so a malformed value
// falls back to its own default without discarding the other one.
func paginateQuery(c *gin.Context) paginator.PaginateQuery {
	var q paginator.PaginateQuery
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		q.Page = page
	}
	if limit, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil {
		q.Limit = limit
	}
	return q
}

func pathID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func (h *handler) processListUsersRequest(c *gin.Context) listUsersReq {
	return listUsersReq{
		Role:      c.Query("role"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Paginate:  paginateQuery(c),
	}
}

func (h *handler) processGetUserRequest(c *gin.Context) (getUserReq, error) {
	id, err := pathID(c, "user_id")
	if err != nil {
		return getUserReq{}, errInvalidUserID
	}
	return getUserReq{UserID: id}, nil
}

func (h *handler) processUserSalesRequest(c *gin.Context) (userSalesReq, error) {
	id, err := pathID(c, "user_id")
	if err != nil {
		return userSalesReq{}, errInvalidUserID
	}
	return userSalesReq{
		UserID:    id,
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		MinAmount: c.Query("minAmount"),
		MaxAmount: c.Query("maxAmount"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Paginate:  paginateQuery(c),
	}, nil
}

func (h *handler) processUserPerformanceRequest(c *gin.Context) (userPerformanceReq, error) {
	id, err := pathID(c, "user_id")
	if err != nil {
		return userPerformanceReq{}, errInvalidUserID
	}
	return userPerformanceReq{
		UserID:    id,
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Interval:  c.Query("interval"),
	}, nil
}

func (h *handler) processListGroupsRequest(c *gin.Context) listGroupsReq {
	return listGroupsReq{
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Paginate:  paginateQuery(c),
	}
}

func (h *handler) processGetGroupRequest(c *gin.Context) (getGroupReq, error) {
	id, err := pathID(c, "group_id")
	if err != nil {
		return getGroupReq{}, errInvalidGroupID
	}
	return getGroupReq{GroupID: id}, nil
}

func (h *handler) processGroupSalesRequest(c *gin.Context) (groupSalesReq, error) {
	id, err := pathID(c, "group_id")
	if err != nil {
		return groupSalesReq{}, errInvalidGroupID
	}
	return groupSalesReq{
		GroupID:   id,
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		MinAmount: c.Query("minAmount"),
		MaxAmount: c.Query("maxAmount"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Paginate:  paginateQuery(c),
	}, nil
}

func (h *handler) processGroupPerformanceRequest(c *gin.Context) (groupPerformanceReq, error) {
	id, err := pathID(c, "group_id")
	if err != nil {
		return groupPerformanceReq{}, errInvalidGroupID
	}
	return groupPerformanceReq{
		GroupID:   id,
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Interval:  c.Query("interval"),
	}, nil
}

func (h *handler) processListSalesRequest(c *gin.Context) listSalesReq {
	return listSalesReq{
		UserID:    c.Query("userId"),
		GroupID:   c.Query("groupId"),
		MinAmount: c.Query("minAmount"),
		MaxAmount: c.Query("maxAmount"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Paginate:  paginateQuery(c),
	}
}

func (h *handler) processGetSaleRequest(c *gin.Context) (getSaleReq, error) {
	id, err := pathID(c, "sale_id")
	if err != nil {
		return getSaleReq{}, errInvalidSaleID
	}
	return getSaleReq{SaleID: id}, nil
}

func (h *handler) processSalesSummaryRequest(c *gin.Context) salesSummaryReq {
	return salesSummaryReq{
		Role:      c.Query("role"),
		GroupID:   c.Query("groupId"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Interval:  c.Query("interval"),
	}
}
