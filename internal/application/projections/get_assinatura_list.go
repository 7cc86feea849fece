package projections

import (
	"context"

	assinaturaStore "fitlab/internal/adapters/backend/assinatura"
	clienteStore "fitlab/internal/adapters/backend/cliente"
	planoStore "fitlab/internal/adapters/backend/plano"
	"fitlab/internal/application/listutil"
	domain "fitlab/internal/domain/assinatura"
	domainCliente "fitlab/internal/domain/cliente"
	domainPlano "fitlab/internal/domain/plano"
)

// Sort keys accepted by the subscriptions list.
var AssinaturaSorts = []string{
	"cliente-asc", "cliente-desc",
	"inicio-asc", "inicio-desc",
	"renovacao-asc", "renovacao-desc",
}

// AssinaturaDefaultSort is applied when the request carries no sort key.
const AssinaturaDefaultSort = "cliente-asc"

// Status facets accepted by the subscriptions list (besides "" for all).
var AssinaturaFacets = []string{"ativas", "proximas", "vencidas"}

// facetStatus maps a facet name onto the backend status it selects.
var facetStatus = map[string]string{
	"ativas":   domain.StatusAtiva,
	"proximas": domain.StatusProxima,
	"vencidas": domain.StatusVencida,
}

// AssinaturaRow is a subscription joined with its client and plan names.
// The names stay empty when the referenced record is missing.
type AssinaturaRow struct {
	domain.Assinatura
	ClienteNome string
	PlanoNome   string
}

// GetAssinaturaListQuery carries query parameters.
type GetAssinaturaListQuery struct {
	Search string
	Sort   string
	Facet  string
}

// GetAssinaturaListResult carries the query result.
type GetAssinaturaListResult struct {
	Assinaturas []AssinaturaRow
	Total       int
}

// GetAssinaturaListDeps holds dependencies for GetAssinaturaList.
type GetAssinaturaListDeps struct {
	AssinaturaStore assinaturaStore.Store
	ClienteStore    clienteStore.Store
	PlanoStore      planoStore.Store
}

// QueryGetAssinaturaList fetches subscriptions, clients and plans, joins
// them by foreign key, then facets, searches and sorts locally.
// PRE: query.Sort is one of AssinaturaSorts
// POST: Facet keeps exactly the rows with the selected status
// INVARIANT: Rows with missing joins survive every step of the pipeline
func QueryGetAssinaturaList(ctx context.Context, query GetAssinaturaListQuery, deps GetAssinaturaListDeps) (GetAssinaturaListResult, error) {
	assinaturas, err := deps.AssinaturaStore.List(ctx)
	if err != nil {
		return GetAssinaturaListResult{}, err
	}
	clientes, err := deps.ClienteStore.List(ctx)
	if err != nil {
		return GetAssinaturaListResult{}, err
	}
	planos, err := deps.PlanoStore.List(ctx)
	if err != nil {
		return GetAssinaturaListResult{}, err
	}

	clienteByID := make(map[int64]domainCliente.Cliente, len(clientes))
	for _, c := range clientes {
		clienteByID[c.ID] = c
	}
	planoByID := make(map[int64]domainPlano.Plano, len(planos))
	for _, p := range planos {
		planoByID[p.ID] = p
	}

	rows := make([]AssinaturaRow, 0, len(assinaturas))
	for _, a := range assinaturas {
		row := AssinaturaRow{Assinatura: a}
		if c, ok := clienteByID[a.ClienteID]; ok {
			row.ClienteNome = c.Nome
		}
		if p, ok := planoByID[a.PlanoID]; ok {
			row.PlanoNome = p.Nome
		}
		rows = append(rows, row)
	}

	if status, ok := facetStatus[query.Facet]; ok {
		rows = listutil.Filter(rows, func(r AssinaturaRow) bool { return r.Status == status })
	}
	rows = listutil.Filter(rows, func(r AssinaturaRow) bool {
		return listutil.AnyMatchFold(query.Search, r.ClienteNome, r.PlanoNome)
	})
	rows = listutil.SortBy(rows, assinaturaLess(query.Sort))

	return GetAssinaturaListResult{Assinaturas: rows, Total: len(rows)}, nil
}

func assinaturaLess(sort string) func(a, b AssinaturaRow) bool {
	switch sort {
	case "cliente-asc":
		return func(a, b AssinaturaRow) bool { return listutil.CompareFold(a.ClienteNome, b.ClienteNome) < 0 }
	case "cliente-desc":
		return func(a, b AssinaturaRow) bool { return listutil.CompareFold(a.ClienteNome, b.ClienteNome) > 0 }
	case "inicio-asc":
		return func(a, b AssinaturaRow) bool {
			return listutil.ParseTime(a.CreatedAt).Before(listutil.ParseTime(b.CreatedAt))
		}
	case "inicio-desc":
		return func(a, b AssinaturaRow) bool {
			return listutil.ParseTime(b.CreatedAt).Before(listutil.ParseTime(a.CreatedAt))
		}
	case "renovacao-asc":
		return func(a, b AssinaturaRow) bool {
			return listutil.ParseTime(a.ExpiresAt).Before(listutil.ParseTime(b.ExpiresAt))
		}
	case "renovacao-desc":
		return func(a, b AssinaturaRow) bool {
			return listutil.ParseTime(b.ExpiresAt).Before(listutil.ParseTime(a.ExpiresAt))
		}
	default:
		return nil
	}
}
