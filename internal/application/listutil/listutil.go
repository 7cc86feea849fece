package listutil

import (
	"net/url"
	"sort"
	"strings"
	"time"
)

// SortParams carries the sort key parsed from a request, e.g. "nome-asc".
type SortParams struct {
	Sort string
}

// FilterParams carries search and facet parameters.
type FilterParams struct {
	Search string // free-text search query
	Facet  string // named facet value (e.g. status=vencida), "" means all
}

// ListParams combines all list view parameters.
type ListParams struct {
	SortParams
	FilterParams
}

// ParseSortParams extracts the sort key from URL query values.
// PRE: allowedSorts is non-empty, defaultSort is one of allowedSorts
// POST: Sort is defaultSort when the request carries no sort parameter,
// the validated key when recognized, and "" (identity ordering) when the
// request names an empty or unknown key
func ParseSortParams(q url.Values, allowedSorts []string, defaultSort string) SortParams {
	if !q.Has("sort") {
		return SortParams{Sort: defaultSort}
	}
	key := q.Get("sort")
	if !isAllowedSort(key, allowedSorts) {
		return SortParams{Sort: ""}
	}
	return SortParams{Sort: key}
}

// ParseFilterParams extracts search and facet from URL query values.
// POST: Search is trimmed; Facet comes from the "filtro" parameter
func ParseFilterParams(q url.Values) FilterParams {
	return FilterParams{
		Search: strings.TrimSpace(q.Get("q")),
		Facet:  q.Get("filtro"),
	}
}

// ParseListParams parses all list parameters from URL query values.
func ParseListParams(q url.Values, allowedSorts []string, defaultSort string) ListParams {
	return ListParams{
		SortParams:   ParseSortParams(q, allowedSorts, defaultSort),
		FilterParams: ParseFilterParams(q),
	}
}

// MatchFold reports whether needle is a case-insensitive substring of haystack.
// An empty needle matches everything.
func MatchFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// AnyMatchFold reports whether needle matches any of the given fields.
// Missing fields are passed as empty strings and never match a non-empty needle.
func AnyMatchFold(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if f != "" && MatchFold(f, needle) {
			return true
		}
	}
	return false
}

// Filter returns the items for which keep is true, preserving order.
// POST: Returns a new slice; the input is not mutated
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// SortBy returns the items ordered by less using a stable sort. A nil
// less is the identity ordering.
// POST: Returns a new slice that is a permutation of the input; ties keep
// their incoming order
func SortBy[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// CompareFold orders two strings case-insensitively for name sorts.
func CompareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// ParseTime reads the timestamp formats the backend emits. Returns the
// zero time when the value parses as neither, which sorts first.
func ParseTime(value string) time.Time {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t
	}
	return time.Time{}
}

func isAllowedSort(key string, allowed []string) bool {
	for _, a := range allowed {
		if key == a {
			return true
		}
	}
	return false
}
