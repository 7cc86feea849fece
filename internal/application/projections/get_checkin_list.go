package projections

import (
	"context"
	"time"

	checkinStore "fitlab/internal/adapters/backend/checkin"
	"fitlab/internal/application/listutil"
	domain "fitlab/internal/domain/checkin"
)

// Sort keys accepted by the check-ins list.
var CheckInSorts = []string{"data-desc", "data-asc", "cliente-asc", "cliente-desc"}

// CheckInDefaultSort is applied when the request carries no sort key.
const CheckInDefaultSort = "data-desc"

// Period facets accepted by the check-ins list (besides "" for all).
var CheckInFacets = []string{"hoje", "semana"}

// GetCheckInListQuery carries query parameters.
type GetCheckInListQuery struct {
	Search string
	Sort   string
	Facet  string
}

// GetCheckInListResult carries the query result.
type GetCheckInListResult struct {
	CheckIns []domain.CheckIn
	Total    int
}

// GetCheckInListDeps holds dependencies for GetCheckInList.
type GetCheckInListDeps struct {
	CheckInStore checkinStore.Store
}

// QueryGetCheckInList fetches check-ins then facets, searches and sorts
// them locally. The backend embeds the client through the subscription.
// PRE: query.Sort is one of CheckInSorts
// POST: "hoje" keeps entries from the current calendar day, "semana" the last 7 days
func QueryGetCheckInList(ctx context.Context, query GetCheckInListQuery, deps GetCheckInListDeps, now time.Time) (GetCheckInListResult, error) {
	checkins, err := deps.CheckInStore.List(ctx)
	if err != nil {
		return GetCheckInListResult{}, err
	}

	switch query.Facet {
	case "hoje":
		checkins = listutil.Filter(checkins, func(c domain.CheckIn) bool {
			return sameDay(listutil.ParseTime(c.Entrada), now)
		})
	case "semana":
		weekAgo := now.AddDate(0, 0, -7)
		checkins = listutil.Filter(checkins, func(c domain.CheckIn) bool {
			entrada := listutil.ParseTime(c.Entrada)
			return !entrada.Before(weekAgo) && !entrada.After(now)
		})
	}

	checkins = listutil.Filter(checkins, func(c domain.CheckIn) bool {
		return listutil.AnyMatchFold(query.Search, c.ClienteNome())
	})
	checkins = listutil.SortBy(checkins, checkinLess(query.Sort))

	return GetCheckInListResult{CheckIns: checkins, Total: len(checkins)}, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func checkinLess(sort string) func(a, b domain.CheckIn) bool {
	switch sort {
	case "data-desc":
		return func(a, b domain.CheckIn) bool {
			return listutil.ParseTime(b.Entrada).Before(listutil.ParseTime(a.Entrada))
		}
	case "data-asc":
		return func(a, b domain.CheckIn) bool {
			return listutil.ParseTime(a.Entrada).Before(listutil.ParseTime(b.Entrada))
		}
	case "cliente-asc":
		return func(a, b domain.CheckIn) bool { return listutil.CompareFold(a.ClienteNome(), b.ClienteNome()) < 0 }
	case "cliente-desc":
		return func(a, b domain.CheckIn) bool { return listutil.CompareFold(a.ClienteNome(), b.ClienteNome()) > 0 }
	default:
		return nil
	}
}
