package projections

import (
	"context"

	estadoStore "fitlab/internal/adapters/backend/estado"
	"fitlab/internal/application/listutil"
	domain "fitlab/internal/domain/estado"
)

// Sort keys accepted by the assessments list.
var EstadoSorts = []string{"data-desc", "data-asc", "peso", "altura"}

// EstadoDefaultSort is applied when the request carries no sort key.
const EstadoDefaultSort = "data-desc"

// GetEstadoListQuery carries query parameters.
type GetEstadoListQuery struct {
	Search string
	Sort   string
}

// GetEstadoListResult carries the query result.
type GetEstadoListResult struct {
	Estados []domain.Estado
	Total   int
}

// GetEstadoListDeps holds dependencies for GetEstadoList.
type GetEstadoListDeps struct {
	EstadoStore estadoStore.Store
}

// QueryGetEstadoList fetches assessments then filters and sorts locally.
// POST: Search matches client name, nutritionist name or the raw date value
func QueryGetEstadoList(ctx context.Context, query GetEstadoListQuery, deps GetEstadoListDeps) (GetEstadoListResult, error) {
	estados, err := deps.EstadoStore.List(ctx)
	if err != nil {
		return GetEstadoListResult{}, err
	}

	estados = listutil.Filter(estados, func(e domain.Estado) bool {
		return listutil.AnyMatchFold(query.Search, e.Cliente.Nome, e.Nutricionista.Nome, e.Data)
	})
	estados = listutil.SortBy(estados, estadoLess(query.Sort))

	return GetEstadoListResult{Estados: estados, Total: len(estados)}, nil
}

func estadoLess(sort string) func(a, b domain.Estado) bool {
	switch sort {
	case "data-desc":
		return func(a, b domain.Estado) bool {
			return listutil.ParseTime(b.Data).Before(listutil.ParseTime(a.Data))
		}
	case "data-asc":
		return func(a, b domain.Estado) bool {
			return listutil.ParseTime(a.Data).Before(listutil.ParseTime(b.Data))
		}
	case "peso":
		return func(a, b domain.Estado) bool { return a.Peso > b.Peso }
	case "altura":
		return func(a, b domain.Estado) bool { return a.Altura > b.Altura }
	default:
		return nil
	}
}
