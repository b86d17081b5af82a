package model

import "time"

// SalesSummary holds scalar aggregates over a filtered set of sales.
// Sum/avg/min/max stay nil when no row matched; the store's NULL is passed
// through rather than coerced to zero, so callers can tell "no data" from
// "zero activity".
type SalesSummary struct {
	TotalSales    int64
	TotalAmount   *float64
	AverageAmount *float64
	MinAmount     *float64
	MaxAmount     *float64
}

// TrendPoint is one time bucket of a sales trend.
type TrendPoint struct {
	Period      time.Time
	SalesCount  int64
	TotalAmount *float64
}

// GroupRanking is a user's standing within one group they belong to, computed
// by dense rank over summed amount. GroupSize is the group's full membership,
// not just the members who sold in the window.
type GroupRanking struct {
	GroupID   int64
	GroupName string
	Rank      int64
	GroupSize int64
}

// PerformerRank is one entry of a group's top-performer ranking.
type PerformerRank struct {
	UserID      int64
	UserName    string
	TotalAmount float64
	Rank        int64
}
