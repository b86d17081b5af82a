package http

import (
	"fmt"
	"net/url"
	"strconv"

	"sales-analytics-srv/internal/analytics"
	"sales-analytics-srv/internal/model"
	"sales-analytics-srv/pkg/paginator"
	"sales-analytics-srv/pkg/response"
	"sales-analytics-srv/pkg/util"
)

type listUsersReq struct {
	Role      string
	SortBy    string
	SortOrder string
	Paginate  paginator.PaginateQuery
}

func (r listUsersReq) toInput() analytics.ListUsersInput {
	return analytics.ListUsersInput{
		Role:      r.Role,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
		Paginate:  r.Paginate,
	}
}

type getUserReq struct {
	UserID int64
}

func (r getUserReq) toInput() analytics.GetUserInput {
	return analytics.GetUserInput{UserID: r.UserID}
}

type userSalesReq struct {
	UserID    int64
	StartDate string
	EndDate   string
	MinAmount string
	MaxAmount string
	SortBy    string
	SortOrder string
	Paginate  paginator.PaginateQuery
}

func (r userSalesReq) toInput() analytics.GetUserSalesInput {
	return analytics.GetUserSalesInput{
		UserID:    r.UserID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		MinAmount: r.MinAmount,
		MaxAmount: r.MaxAmount,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
		Paginate:  r.Paginate,
	}
}

type userPerformanceReq struct {
	UserID    int64
	StartDate string
	EndDate   string
	Interval  string
}

func (r userPerformanceReq) toInput() analytics.GetUserPerformanceInput {
	return analytics.GetUserPerformanceInput{
		UserID:    r.UserID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Interval:  r.Interval,
	}
}

type listGroupsReq struct {
	SortBy    string
	SortOrder string
	Paginate  paginator.PaginateQuery
}

func (r listGroupsReq) toInput() analytics.ListGroupsInput {
	return analytics.ListGroupsInput{
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
		Paginate:  r.Paginate,
	}
}

type getGroupReq struct {
	GroupID int64
}

func (r getGroupReq) toInput() analytics.GetGroupInput {
	return analytics.GetGroupInput{GroupID: r.GroupID}
}

type groupSalesReq struct {
	GroupID   int64
	StartDate string
	EndDate   string
	MinAmount string
	MaxAmount string
	SortBy    string
	SortOrder string
	Paginate  paginator.PaginateQuery
}

func (r groupSalesReq) toInput() analytics.GetGroupSalesInput {
	return analytics.GetGroupSalesInput{
		GroupID:   r.GroupID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		MinAmount: r.MinAmount,
		MaxAmount: r.MaxAmount,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
		Paginate:  r.Paginate,
	}
}

type groupPerformanceReq struct {
	GroupID   int64
	StartDate string
	EndDate   string
	Interval  string
}

func (r groupPerformanceReq) toInput() analytics.GetGroupPerformanceInput {
	return analytics.GetGroupPerformanceInput{
		GroupID:   r.GroupID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Interval:  r.Interval,
	}
}

type listSalesReq struct {
	UserID    string
	GroupID   string
	MinAmount string
	MaxAmount string
	StartDate string
	EndDate   string
	SortBy    string
	SortOrder string
	Paginate  paginator.PaginateQuery
}

func (r listSalesReq) toInput() analytics.ListSalesInput {
	return analytics.ListSalesInput{
		UserID:    r.UserID,
		GroupID:   r.GroupID,
		MinAmount: r.MinAmount,
		MaxAmount: r.MaxAmount,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
		Paginate:  r.Paginate,
	}
}

type getSaleReq struct {
	SaleID int64
}

func (r getSaleReq) toInput() analytics.GetSaleInput {
	return analytics.GetSaleInput{SaleID: r.SaleID}
}

type salesSummaryReq struct {
	Role      string
	GroupID   string
	StartDate string
	EndDate   string
	Interval  string
}

func (r salesSummaryReq) toInput() analytics.GetSalesSummaryInput {
	return analytics.GetSalesSummaryInput{
		Role:      r.Role,
		GroupID:   r.GroupID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Interval:  r.Interval,
	}
}

type userResp struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type groupResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	MemberCount int64  `json:"member_count"`
	CreatedAt   string `json:"created_at"`
}

type saleResp struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	UserName  string  `json:"user_name"`
	Amount    float64 `json:"amount"`
	SaleDate  string  `json:"sale_date"`
	CreatedAt string  `json:"created_at"`
}

// Nullable aggregates are surfaced as JSON null rather than zero so that an
// empty window stays distinguishable from zero-amount activity.
type summaryResp struct {
	TotalSales    int64    `json:"total_sales"`
	TotalAmount   *float64 `json:"total_amount"`
	AverageAmount *float64 `json:"average_amount"`
	MinAmount     *float64 `json:"min_amount"`
	MaxAmount     *float64 `json:"max_amount"`
}

type trendPointResp struct {
	Period      string   `json:"period"`
	SalesCount  int64    `json:"sales_count"`
	TotalAmount *float64 `json:"total_amount"`
}

type groupRankingResp struct {
	GroupID   int64  `json:"group_id"`
	GroupName string `json:"group_name"`
	Rank      int64  `json:"rank"`
	GroupSize int64  `json:"group_size"`
}

type performerResp struct {
	UserID      int64   `json:"user_id"`
	UserName    string  `json:"user_name"`
	TotalAmount float64 `json:"total_amount"`
	Rank        int64   `json:"rank"`
}

type userPerformanceResp struct {
	User     userResp           `json:"user"`
	Summary  summaryResp        `json:"summary"`
	Trends   []trendPointResp   `json:"trends"`
	Rankings []groupRankingResp `json:"rankings"`
}

type groupPerformanceResp struct {
	Group         groupResp        `json:"group"`
	Summary       summaryResp      `json:"summary"`
	Trends        []trendPointResp `json:"trends"`
	TopPerformers []performerResp  `json:"top_performers"`
}

type salesSummaryResp struct {
	Summary summaryResp      `json:"summary"`
	Trends  []trendPointResp `json:"trends"`
}

func toUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: util.DateTimeToStr(u.CreatedAt),
	}
}

func toGroupResp(g model.Group) groupResp {
	return groupResp{
		ID:          g.ID,
		Name:        g.Name,
		MemberCount: g.MemberCount,
		CreatedAt:   util.DateTimeToStr(g.CreatedAt),
	}
}

func toSaleResp(s model.Sale) saleResp {
	return saleResp{
		ID:        s.ID,
		UserID:    s.UserID,
		UserName:  s.UserName,
		Amount:    s.Amount,
		SaleDate:  util.DateToStr(s.SaleDate),
		CreatedAt: util.DateTimeToStr(s.CreatedAt),
	}
}

func toSummaryResp(s model.SalesSummary) summaryResp {
	return summaryResp{
		TotalSales:    s.TotalSales,
		TotalAmount:   s.TotalAmount,
		AverageAmount: s.AverageAmount,
		MinAmount:     s.MinAmount,
		MaxAmount:     s.MaxAmount,
	}
}

func toTrendResps(points []model.TrendPoint) []trendPointResp {
	resps := make([]trendPointResp, 0, len(points))
	for _, p := range points {
		resps = append(resps, trendPointResp{
			Period:      util.DateToStr(p.Period),
			SalesCount:  p.SalesCount,
			TotalAmount: p.TotalAmount,
		})
	}
	return resps
}

func toRankingResps(rankings []model.GroupRanking) []groupRankingResp {
	resps := make([]groupRankingResp, 0, len(rankings))
	for _, r := range rankings {
		resps = append(resps, groupRankingResp{
			GroupID:   r.GroupID,
			GroupName: r.GroupName,
			Rank:      r.Rank,
			GroupSize: r.GroupSize,
		})
	}
	return resps
}

func toPerformerResps(performers []model.PerformerRank) []performerResp {
	resps := make([]performerResp, 0, len(performers))
	for _, p := range performers {
		resps = append(resps, performerResp{
			UserID:      p.UserID,
			UserName:    p.UserName,
			TotalAmount: p.TotalAmount,
			Rank:        p.Rank,
		})
	}
	return resps
}

// filterValues renders the resolved filters as query parameters, the same
// names the request accepts, so every link reproduces the filtered view.
func filterValues(f analytics.ResolvedFilters) url.Values {
	v := url.Values{}
	if f.Role != "" {
		v.Set("role", f.Role)
	}
	if f.UserID != nil {
		v.Set("userId", strconv.FormatInt(*f.UserID, 10))
	}
	if f.GroupID != nil {
		v.Set("groupId", strconv.FormatInt(*f.GroupID, 10))
	}
	if f.MinAmount != nil {
		v.Set("minAmount", strconv.FormatFloat(*f.MinAmount, 'f', -1, 64))
	}
	if f.MaxAmount != nil {
		v.Set("maxAmount", strconv.FormatFloat(*f.MaxAmount, 'f', -1, 64))
	}
	if f.StartDate != nil {
		v.Set("startDate", util.DateToStr(*f.StartDate))
	}
	if f.EndDate != nil {
		v.Set("endDate", util.DateToStr(*f.EndDate))
	}
	if f.Interval != "" {
		v.Set("interval", f.Interval)
	}
	if f.SortBy != "" {
		v.Set("sortBy", f.SortBy)
		v.Set("sortOrder", f.SortOrder)
	}
	return v
}

func filtersMeta(f analytics.ResolvedFilters) map[string]any {
	m := map[string]any{}
	for k, vals := range filterValues(f) {
		m[k] = vals[0]
	}
	return m
}

// paginationLinks builds the navigation block for a paginated listing. Self,
// first and last are always present; next and prev only when the page exists.
func paginationLinks(path string, values url.Values, p paginator.Paginator) response.Links {
	link := func(page int) string {
		q := url.Values{}
		for k, vals := range values {
			q[k] = vals
		}
		q.Set("page", strconv.Itoa(page))
		q.Set("limit", strconv.FormatInt(p.PerPage, 10))
		return path + "?" + q.Encode()
	}

	last := p.TotalPages()
	if last < 1 {
		last = 1
	}

	links := response.Links{
		"self":  link(p.CurrentPage),
		"first": link(1),
		"last":  link(last),
	}
	if p.HasNextPage() {
		links["next"] = link(p.CurrentPage + 1)
	}
	if p.HasPreviousPage() {
		links["prev"] = link(p.CurrentPage - 1)
	}
	return links
}

func selfLink(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

func (h *handler) newListUsersResp(path string, o analytics.ListUsersOutput) response.Envelope {
	users := make([]userResp, 0, len(o.Users))
	for _, u := range o.Users {
		users = append(users, toUserResp(u))
	}

	pagination := o.Paginator.ToResponse()
	return response.Envelope{
		Data:  users,
		Meta:  &response.Meta{Pagination: &pagination, Filters: filtersMeta(o.Filters)},
		Links: paginationLinks(path, filterValues(o.Filters), o.Paginator),
	}
}

func (h *handler) newUserResp(path string, o analytics.GetUserOutput) response.Envelope {
	return response.Envelope{
		Data: toUserResp(o.User),
		Links: response.Links{
			"self":        path,
			"sales":       fmt.Sprintf("%s/sales", path),
			"performance": fmt.Sprintf("%s/performance", path),
		},
	}
}

func (h *handler) newUserSalesResp(path string, userID int64, o analytics.GetUserSalesOutput) response.Envelope {
	sales := make([]saleResp, 0, len(o.Sales))
	for _, s := range o.Sales {
		sales = append(sales, toSaleResp(s))
	}

	// The owning user is a path element, not a query parameter.
	values := filterValues(o.Filters)
	values.Del("userId")

	links := paginationLinks(path, values, o.Paginator)
	links["user"] = fmt.Sprintf("/api/v1/users/%d", userID)

	pagination := o.Paginator.ToResponse()
	return response.Envelope{
		Data:  sales,
		Meta:  &response.Meta{Pagination: &pagination, Filters: filtersMeta(o.Filters)},
		Links: links,
	}
}

func (h *handler) newUserPerformanceResp(path string, userID int64, o analytics.GetUserPerformanceOutput) response.Envelope {
	return response.Envelope{
		Data: userPerformanceResp{
			User:     toUserResp(o.User),
			Summary:  toSummaryResp(o.Summary),
			Trends:   toTrendResps(o.Trends),
			Rankings: toRankingResps(o.Rankings),
		},
		Meta: &response.Meta{Filters: filtersMeta(o.Filters)},
		Links: response.Links{
			"self": selfLink(path, filterValues(o.Filters)),
			"user": fmt.Sprintf("/api/v1/users/%d", userID),
		},
	}
}

func (h *handler) newListGroupsResp(path string, o analytics.ListGroupsOutput) response.Envelope {
	groups := make([]groupResp, 0, len(o.Groups))
	for _, g := range o.Groups {
		groups = append(groups, toGroupResp(g))
	}

	pagination := o.Paginator.ToResponse()
	return response.Envelope{
		Data:  groups,
		Meta:  &response.Meta{Pagination: &pagination, Filters: filtersMeta(o.Filters)},
		Links: paginationLinks(path, filterValues(o.Filters), o.Paginator),
	}
}

func (h *handler) newGroupResp(path string, o analytics.GetGroupOutput) response.Envelope {
	return response.Envelope{
		Data: toGroupResp(o.Group),
		Links: response.Links{
			"self":        path,
			"sales":       fmt.Sprintf("%s/sales", path),
			"performance": fmt.Sprintf("%s/performance", path),
		},
	}
}

func (h *handler) newGroupSalesResp(path string, groupID int64, o analytics.GetGroupSalesOutput) response.Envelope {
	sales := make([]saleResp, 0, len(o.Sales))
	for _, s := range o.Sales {
		sales = append(sales, toSaleResp(s))
	}

	values := filterValues(o.Filters)
	values.Del("groupId")

	links := paginationLinks(path, values, o.Paginator)
	links["group"] = fmt.Sprintf("/api/v1/groups/%d", groupID)

	pagination := o.Paginator.ToResponse()
	return response.Envelope{
		Data:  sales,
		Meta:  &response.Meta{Pagination: &pagination, Filters: filtersMeta(o.Filters)},
		Links: links,
	}
}

func (h *handler) newGroupPerformanceResp(path string, groupID int64, o analytics.GetGroupPerformanceOutput) response.Envelope {
	return response.Envelope{
		Data: groupPerformanceResp{
			Group:         toGroupResp(o.Group),
			Summary:       toSummaryResp(o.Summary),
			Trends:        toTrendResps(o.Trends),
			TopPerformers: toPerformerResps(o.TopPerformers),
		},
		Meta: &response.Meta{Filters: filtersMeta(o.Filters)},
		Links: response.Links{
			"self":  selfLink(path, filterValues(o.Filters)),
			"group": fmt.Sprintf("/api/v1/groups/%d", groupID),
		},
	}
}

func (h *handler) newListSalesResp(path string, o analytics.ListSalesOutput) response.Envelope {
	sales := make([]saleResp, 0, len(o.Sales))
	for _, s := range o.Sales {
		sales = append(sales, toSaleResp(s))
	}

	pagination := o.Paginator.ToResponse()
	return response.Envelope{
		Data:  sales,
		Meta:  &response.Meta{Pagination: &pagination, Filters: filtersMeta(o.Filters)},
		Links: paginationLinks(path, filterValues(o.Filters), o.Paginator),
	}
}

func (h *handler) newSaleResp(path string, o analytics.GetSaleOutput) response.Envelope {
	return response.Envelope{
		Data: toSaleResp(o.Sale),
		Links: response.Links{
			"self": path,
			"user": fmt.Sprintf("/api/v1/users/%d", o.Sale.UserID),
		},
	}
}

func (h *handler) newSalesSummaryResp(path string, o analytics.GetSalesSummaryOutput) response.Envelope {
	return response.Envelope{
		Data: salesSummaryResp{
			Summary: toSummaryResp(o.Summary),
			Trends:  toTrendResps(o.Trends),
		},
		Meta: &response.Meta{Filters: filtersMeta(o.Filters)},
		Links: response.Links{
			"self": selfLink(path, filterValues(o.Filters)),
		},
	}
}
