package projections

import (
	"context"

	clienteStore "fitlab/internal/adapters/backend/cliente"
	"fitlab/internal/application/listutil"
	domain "fitlab/internal/domain/cliente"
)

// Sort keys accepted by the clients list.
var ClienteSorts = []string{"nome-asc", "nome-desc", "nascimento"}

// ClienteDefaultSort is applied when the request carries no sort key.
const ClienteDefaultSort = "nome-asc"

// GetClienteListQuery carries query parameters.
type GetClienteListQuery struct {
	Search string
	Sort   string
}

// GetClienteListResult carries the query result.
type GetClienteListResult struct {
	Clientes []domain.Cliente
	Total    int
}

// GetClienteListDeps holds dependencies for GetClienteList.
type GetClienteListDeps struct {
	ClienteStore clienteStore.Store
}

// QueryGetClienteList fetches all clients then filters and sorts them locally.
// PRE: query.Sort is one of ClienteSorts or "" for fetch order
// POST: Result holds every client matching the search, in the requested order
// INVARIANT: An empty search returns the full fetched set
func QueryGetClienteList(ctx context.Context, query GetClienteListQuery, deps GetClienteListDeps) (GetClienteListResult, error) {
	clientes, err := deps.ClienteStore.List(ctx)
	if err != nil {
		return GetClienteListResult{}, err
	}

	filtered := listutil.Filter(clientes, func(c domain.Cliente) bool {
		return listutil.AnyMatchFold(query.Search, c.Nome, c.Email)
	})
	sorted := listutil.SortBy(filtered, clienteLess(query.Sort))

	return GetClienteListResult{Clientes: sorted, Total: len(sorted)}, nil
}

// An unknown or empty sort key returns nil, which keeps fetch order.
func clienteLess(sort string) func(a, b domain.Cliente) bool {
	switch sort {
	case "nome-asc":
		return func(a, b domain.Cliente) bool { return listutil.CompareFold(a.Nome, b.Nome) < 0 }
	case "nome-desc":
		return func(a, b domain.Cliente) bool { return listutil.CompareFold(a.Nome, b.Nome) > 0 }
	case "nascimento":
		return func(a, b domain.Cliente) bool {
			return listutil.ParseTime(a.DataNascimento).Before(listutil.ParseTime(b.DataNascimento))
		}
	default:
		return nil
	}
}
