package projections

import (
	"context"

	dietaStore "fitlab/internal/adapters/backend/dieta"
	"fitlab/internal/application/listutil"
	domain "fitlab/internal/domain/dieta"
)

// Sort keys accepted by the diets list.
var DietaSorts = []string{"descricao-asc", "descricao-desc", "expiracao-asc", "expiracao-desc"}

// DietaDefaultSort is applied when the request carries no sort key.
const DietaDefaultSort = "descricao-asc"

// GetDietaListQuery carries query parameters. Facet is one of the
// dieta.Objetivos values and matches the description by substring.
type GetDietaListQuery struct {
	Search string
	Sort   string
	Facet  string
}

// GetDietaListResult carries the query result.
type GetDietaListResult struct {
	Dietas []domain.Dieta
	Total  int
}

// GetDietaListDeps holds dependencies for GetDietaList.
type GetDietaListDeps struct {
	DietaStore dietaStore.Store
}

// QueryGetDietaList fetches diets then facets, searches and sorts locally.
// POST: The objetivo facet keeps diets whose description mentions it
func QueryGetDietaList(ctx context.Context, query GetDietaListQuery, deps GetDietaListDeps) (GetDietaListResult, error) {
	dietas, err := deps.DietaStore.List(ctx)
	if err != nil {
		return GetDietaListResult{}, err
	}

	if query.Facet != "" {
		dietas = listutil.Filter(dietas, func(d domain.Dieta) bool {
			return listutil.MatchFold(d.Descricao, query.Facet)
		})
	}
	dietas = listutil.Filter(dietas, func(d domain.Dieta) bool {
		return listutil.AnyMatchFold(query.Search, d.Descricao, d.Cliente.Nome, d.Nutricionista.Nome)
	})
	dietas = listutil.SortBy(dietas, dietaLess(query.Sort))

	return GetDietaListResult{Dietas: dietas, Total: len(dietas)}, nil
}

func dietaLess(sort string) func(a, b domain.Dieta) bool {
	switch sort {
	case "descricao-asc":
		return func(a, b domain.Dieta) bool { return listutil.CompareFold(a.Descricao, b.Descricao) < 0 }
	case "descricao-desc":
		return func(a, b domain.Dieta) bool { return listutil.CompareFold(a.Descricao, b.Descricao) > 0 }
	case "expiracao-asc":
		return func(a, b domain.Dieta) bool {
			return listutil.ParseTime(a.ExpiresAt).Before(listutil.ParseTime(b.ExpiresAt))
		}
	case "expiracao-desc":
		return func(a, b domain.Dieta) bool {
			return listutil.ParseTime(b.ExpiresAt).Before(listutil.ParseTime(a.ExpiresAt))
		}
	default:
		return nil
	}
}
