package http

import (
	"github.com/gin-gonic/gin"

	"sales-analytics-srv/pkg/response"
)

// @Summary List users
// @Description Paginated user listing with optional role filter and sorting
// @Tags User
// @Produce json
// @Param page query int false "Page number (1-indexed)"
// @Param limit query int false "Items per page"
// @Param role query string false "Filter by role"
// @Param sortBy query string false "Sort column: name, role, id"
// @Param sortOrder query string false "Sort direction: asc, desc"
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/users [get]
func (h *handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processListUsersRequest(c)

	o, err := h.uc.ListUsers(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.ListUsers: usecase ListUsers failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListUsersResp(c.Request.URL.Path, o))
}

// @Summary Get user
// @Description Return a single user by id
// @Tags User
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrResp
// @Failure 404 {object} response.ErrResp
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/users/{user_id} [get]
func (h *handler) GetUser(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetUserRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetUser: processGetUserRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.GetUser(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetUser: usecase GetUser failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUserResp(c.Request.URL.Path, o))
}

// @Summary List a user's sales
// @Description Paginated sales listing scoped to one user with date, amount and sort filters
// @Tags User
// @Produce json
// @Param user_id path int true "User ID"
// @Param page query int false "Page number (1-indexed)"
// @Param limit query int false "Items per page"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param minAmount query number false "Minimum amount"
// @Param maxAmount query number false "Maximum amount"
// @Param sortBy query string false "Sort column: amount, sale_date, id"
// @Param sortOrder query string false "Sort direction: asc, desc"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrResp
// @Failure 404 {object} response.ErrResp
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/users/{user_id}/sales [get]
func (h *handler) GetUserSales(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUserSalesRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetUserSales: processUserSalesRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.GetUserSales(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetUserSales: usecase GetUserSales failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUserSalesResp(c.Request.URL.Path, req.UserID, o))
}

// @Summary Get user performance
// @Description Sales summary, trend buckets and per-group rankings for one user over a date window
// @Tags User
// @Produce json
// @Param user_id path int true "User ID"
// @Param startDate query string false "Start date (YYYY-MM-DD), defaults to 2021-01-01"
// @Param endDate query string false "End date (YYYY-MM-DD), defaults to 2021-12-31"
// @Param interval query string false "Trend bucket: day, week, month, quarter, year"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrResp
// @Failure 404 {object} response.ErrResp
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/users/{user_id}/performance [get]
func (h *handler) GetUserPerformance(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUserPerformanceRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetUserPerformance: processUserPerformanceRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.GetUserPerformance(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetUserPerformance: usecase GetUserPerformance failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUserPerformanceResp(c.Request.URL.Path, req.UserID, o))
}

// @Summary List groups
// @Description Paginated group listing with member counts
// @Tags Group
// @Produce json
// @Param page query int false "Page number (1-indexed)"
// @Param limit query int false "Items per page"
// @Param sortBy query string false "Sort column: name, id"
// @Param sortOrder query string false "Sort direction: asc, desc"
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/groups [get]
func (h *handler) ListGroups(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processListGroupsRequest(c)

	o, err := h.uc.ListGroups(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.ListGroups: usecase ListGroups failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListGroupsResp(c.Request.URL.Path, o))
}

// @Summary Get group
// @Description Return a single group by id with its member count
// @Tags Group
// @Produce json
// @Param group_id path int true "Group ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrResp
// @Failure 404 {object} response.ErrResp
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/groups/{group_id} [get]
func (h *handler) GetGroup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetGroupRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetGroup: processGetGroupRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.GetGroup(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetGroup: usecase GetGroup failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGroupResp(c.Request.URL.Path, o))
}

// @Summary List a group's sales
// @Description Paginated sales listing scoped to a group through membership
// @Tags Group
// @Produce json
// @Param group_id path int true "Group ID"
// @Param page query int false "Page number (1-indexed)"
// @Param limit query int false "Items per page"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param minAmount query number false "Minimum amount"
// @Param maxAmount query number false "Maximum amount"
// @Param sortBy query string false "Sort column: amount, sale_date, id"
// @Param sortOrder query string false "Sort direction: asc, desc"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrResp
// @Failure 404 {object} response.ErrResp
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/groups/{group_id}/sales [get]
func (h *handler) GetGroupSales(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGroupSalesRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetGroupSales: processGroupSalesRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.GetGroupSales(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetGroupSales: usecase GetGroupSales failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGroupSalesResp(c.Request.URL.Path, req.GroupID, o))
}

// @Summary Get group performance
// @Description Sales summary, trend buckets and top performers for one group over a date window
// @Tags Group
// @Produce json
// @Param group_id path int true "Group ID"
// @Param startDate query string false "Start date (YYYY-MM-DD), defaults to 2021-01-01"
// @Param endDate query string false "End date (YYYY-MM-DD), defaults to 2021-12-31"
// @Param interval query string false "Trend bucket: day, week, month, quarter, year"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrResp
// @Failure 404 {object} response.ErrResp
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/groups/{group_id}/performance [get]
func (h *handler) GetGroupPerformance(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGroupPerformanceRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetGroupPerformance: processGroupPerformanceRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.GetGroupPerformance(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetGroupPerformance: usecase GetGroupPerformance failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGroupPerformanceResp(c.Request.URL.Path, req.GroupID, o))
}

// @Summary List sales
// @Description Paginated sales listing over the full filter set
// @Tags Sale
// @Produce json
// @Param page query int false "Page number (1-indexed)"
// @Param limit query int false "Items per page"
// @Param userId query int false "Filter by seller"
// @Param groupId query int false "Filter by group membership"
// @Param minAmount query number false "Minimum amount"
// @Param maxAmount query number false "Maximum amount"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param sortBy query string false "Sort column: amount, sale_date, id"
// @Param sortOrder query string false "Sort direction: asc, desc"
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/sales [get]
func (h *handler) ListSales(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processListSalesRequest(c)

	o, err := h.uc.ListSales(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.ListSales: usecase ListSales failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListSalesResp(c.Request.URL.Path, o))
}

// @Summary Get sale
// @Description Return a single sale by id
// @Tags Sale
// @Produce json
// @Param sale_id path int true "Sale ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrResp
// @Failure 404 {object} response.ErrResp
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/sales/{sale_id} [get]
func (h *handler) GetSale(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetSaleRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetSale: processGetSaleRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.GetSale(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetSale: usecase GetSale failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSaleResp(c.Request.URL.Path, o))
}

// @Summary Get sales summary
// @Description Fleet-wide summary and trend with optional role and group scope
// @Tags Sale
// @Produce json
// @Param role query string false "Filter by seller role"
// @Param groupId query int false "Filter by group membership"
// @Param startDate query string false "Start date (YYYY-MM-DD), defaults to 2021-01-01"
// @Param endDate query string false "End date (YYYY-MM-DD), defaults to 2021-12-31"
// @Param interval query string false "Trend bucket: day, week, month, quarter, year"
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.ErrResp
// @Router /api/v1/sales/summary [get]
func (h *handler) GetSalesSummary(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processSalesSummaryRequest(c)

	o, err := h.uc.GetSalesSummary(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetSalesSummary: usecase GetSalesSummary failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSalesSummaryResp(c.Request.URL.Path, o))
}
