package projections

import (
	"context"

	planoStore "fitlab/internal/adapters/backend/plano"
	"fitlab/internal/application/listutil"
	domain "fitlab/internal/domain/plano"
)

// Sort keys accepted by the plans list.
var PlanoSorts = []string{"nome-asc", "nome-desc", "valor-asc", "valor-desc"}

// PlanoDefaultSort is applied when the request carries no sort key.
const PlanoDefaultSort = "nome-asc"

// GetPlanoListQuery carries query parameters.
type GetPlanoListQuery struct {
	Search string
	Sort   string
}

// GetPlanoListResult carries the query result.
type GetPlanoListResult struct {
	Planos []domain.Plano
	Total  int
}

// GetPlanoListDeps holds dependencies for GetPlanoList.
type GetPlanoListDeps struct {
	PlanoStore planoStore.Store
}

// QueryGetPlanoList fetches all plans then filters and sorts them locally.
// POST: Result holds every plan matching the search on nome or frequencia
func QueryGetPlanoList(ctx context.Context, query GetPlanoListQuery, deps GetPlanoListDeps) (GetPlanoListResult, error) {
	planos, err := deps.PlanoStore.List(ctx)
	if err != nil {
		return GetPlanoListResult{}, err
	}

	filtered := listutil.Filter(planos, func(p domain.Plano) bool {
		return listutil.AnyMatchFold(query.Search, p.Nome, p.Frequencia)
	})
	sorted := listutil.SortBy(filtered, planoLess(query.Sort))

	return GetPlanoListResult{Planos: sorted, Total: len(sorted)}, nil
}

func planoLess(sort string) func(a, b domain.Plano) bool {
	switch sort {
	case "nome-asc":
		return func(a, b domain.Plano) bool { return listutil.CompareFold(a.Nome, b.Nome) < 0 }
	case "nome-desc":
		return func(a, b domain.Plano) bool { return listutil.CompareFold(a.Nome, b.Nome) > 0 }
	case "valor-asc":
		return func(a, b domain.Plano) bool { return a.Valor < b.Valor }
	case "valor-desc":
		return func(a, b domain.Plano) bool { return a.Valor > b.Valor }
	default:
		return nil
	}
}
