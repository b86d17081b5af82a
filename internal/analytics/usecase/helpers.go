package usecase

import (
	"strconv"
	"strings"
	"time"

	"sales-analytics-srv/internal/analytics"
	"sales-analytics-srv/pkg/util"
)

// oneOf returns candidate iff it is a member of allowed, else fallback.
// Membership is case-sensitive; this is the sole defense against injection
// via identifiers, so every caller-controlled value that ends up in query
// text goes through here first.
func oneOf(candidate string, allowed []string, fallback string) string {
	for _, a := range allowed {
		if candidate == a {
			return candidate
		}
	}
	return fallback
}

// resolveOrder normalizes a sort direction, case-insensitively. Anything
// outside asc/desc silently falls back.
func resolveOrder(candidate string, fallback string) string {
	switch strings.ToLower(candidate) {
	case "asc":
		return "ASC"
	case "desc":
		return "DESC"
	default:
		return fallback
	}
}

// resolveSort validates a sort column and direction against the endpoint's
// allow-list and returns the resolved pair plus the ORDER BY fragment handed
// to the repository.
func resolveSort(sortBy string, columns []string, defaultColumn string, sortOrder string, defaultOrder string) (string, string, string) {
	column := oneOf(sortBy, columns, defaultColumn)
	order := resolveOrder(sortOrder, defaultOrder)
	return column, order, column + " " + order
}

// parseOptionalDate returns nil for absent or malformed values; listing
// endpoints apply no bound in that case rather than erroring.
func parseOptionalDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := util.StrToDate(raw)
	if err != nil {
		return nil
	}
	return &t
}

// resolveDateWindow resolves a performance-view date range. Absent or
// malformed bounds fall back to the documented defaults.
func resolveDateWindow(startRaw, endRaw string) (time.Time, time.Time) {
	start, err := util.StrToDate(startRaw)
	if err != nil || startRaw == "" {
		start, _ = util.StrToDate(analytics.DefaultStartDate)
	}
	end, err := util.StrToDate(endRaw)
	if err != nil || endRaw == "" {
		end, _ = util.StrToDate(analytics.DefaultEndDate)
	}
	return start, end
}

func parseOptionalFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseOptionalInt64(raw string) *int64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
