package projections

import (
	"context"

	treinoStore "fitlab/internal/adapters/backend/treino"
	"fitlab/internal/application/listutil"
	domain "fitlab/internal/domain/treino"
)

// Sort keys accepted by the workouts list.
var TreinoSorts = []string{"cliente-asc", "cliente-desc", "expiracao-asc", "expiracao-desc"}

// TreinoDefaultSort is applied when the request carries no sort key.
const TreinoDefaultSort = "cliente-asc"

// GetTreinoListQuery carries query parameters. Facet is an exact match on
// one of the treino.Objetivos values.
type GetTreinoListQuery struct {
	Search string
	Sort   string
	Facet  string
}

// GetTreinoListResult carries the query result.
type GetTreinoListResult struct {
	Treinos []domain.Treino
	Total   int
}

// GetTreinoListDeps holds dependencies for GetTreinoList.
type GetTreinoListDeps struct {
	TreinoStore treinoStore.Store
}

// QueryGetTreinoList fetches workouts then facets, searches and sorts locally.
// POST: The objetivo facet keeps exactly the workouts with that goal
func QueryGetTreinoList(ctx context.Context, query GetTreinoListQuery, deps GetTreinoListDeps) (GetTreinoListResult, error) {
	treinos, err := deps.TreinoStore.List(ctx)
	if err != nil {
		return GetTreinoListResult{}, err
	}

	if query.Facet != "" {
		treinos = listutil.Filter(treinos, func(t domain.Treino) bool {
			return t.Objetivo == query.Facet
		})
	}
	treinos = listutil.Filter(treinos, func(t domain.Treino) bool {
		return listutil.AnyMatchFold(query.Search, t.Cliente.Nome, t.Personal.Nome)
	})
	treinos = listutil.SortBy(treinos, treinoLess(query.Sort))

	return GetTreinoListResult{Treinos: treinos, Total: len(treinos)}, nil
}

func treinoLess(sort string) func(a, b domain.Treino) bool {
	switch sort {
	case "cliente-asc":
		return func(a, b domain.Treino) bool { return listutil.CompareFold(a.Cliente.Nome, b.Cliente.Nome) < 0 }
	case "cliente-desc":
		return func(a, b domain.Treino) bool { return listutil.CompareFold(a.Cliente.Nome, b.Cliente.Nome) > 0 }
	case "expiracao-asc":
		return func(a, b domain.Treino) bool {
			return listutil.ParseTime(a.ExpiresAt).Before(listutil.ParseTime(b.ExpiresAt))
		}
	case "expiracao-desc":
		return func(a, b domain.Treino) bool {
			return listutil.ParseTime(b.ExpiresAt).Before(listutil.ParseTime(a.ExpiresAt))
		}
	default:
		return nil
	}
}
