package projections

import (
	"context"

	administradorStore "fitlab/internal/adapters/backend/administrador"
	nutricionistaStore "fitlab/internal/adapters/backend/nutricionista"
	personalStore "fitlab/internal/adapters/backend/personal"
	"fitlab/internal/application/listutil"
	domainAdministrador "fitlab/internal/domain/administrador"
	domainNutricionista "fitlab/internal/domain/nutricionista"
	domainPersonal "fitlab/internal/domain/personal"
)

// Sort keys shared by the staff lists.
var EquipeSorts = []string{"nome-asc", "nome-desc"}

// EquipeDefaultSort is applied when the request carries no sort key.
const EquipeDefaultSort = "nome-asc"

// GetEquipeListQuery carries query parameters for any staff list.
type GetEquipeListQuery struct {
	Search string
	Sort   string
}

// GetAdministradorListResult carries the administrators query result.
type GetAdministradorListResult struct {
	Administradores []domainAdministrador.Administrador
	Total           int
}

// QueryGetAdministradorList fetches administrators then filters and sorts locally.
func QueryGetAdministradorList(ctx context.Context, query GetEquipeListQuery, store administradorStore.Store) (GetAdministradorListResult, error) {
	items, err := store.List(ctx)
	if err != nil {
		return GetAdministradorListResult{}, err
	}
	items = listutil.Filter(items, func(a domainAdministrador.Administrador) bool {
		return listutil.AnyMatchFold(query.Search, a.Nome, a.Email)
	})
	items = listutil.SortBy(items, nomeLess(query.Sort, func(a domainAdministrador.Administrador) string { return a.Nome }))
	return GetAdministradorListResult{Administradores: items, Total: len(items)}, nil
}

// nomeLess orders staff records by name. An unknown or empty sort key
// returns nil, which keeps fetch order.
func nomeLess[T any](sort string, nome func(T) string) func(a, b T) bool {
	switch sort {
	case "nome-asc":
		return func(a, b T) bool { return listutil.CompareFold(nome(a), nome(b)) < 0 }
	case "nome-desc":
		return func(a, b T) bool { return listutil.CompareFold(nome(a), nome(b)) > 0 }
	default:
		return nil
	}
}

// GetPersonalListResult carries the trainers query result.
type GetPersonalListResult struct {
	Personals []domainPersonal.PersonalTrainer
	Total     int
}

// QueryGetPersonalList fetches trainers then filters and sorts locally.
func QueryGetPersonalList(ctx context.Context, query GetEquipeListQuery, store personalStore.Store) (GetPersonalListResult, error) {
	items, err := store.List(ctx)
	if err != nil {
		return GetPersonalListResult{}, err
	}
	items = listutil.Filter(items, func(p domainPersonal.PersonalTrainer) bool {
		return listutil.AnyMatchFold(query.Search, p.Nome, p.Email)
	})
	items = listutil.SortBy(items, nomeLess(query.Sort, func(p domainPersonal.PersonalTrainer) string { return p.Nome }))
	return GetPersonalListResult{Personals: items, Total: len(items)}, nil
}

// GetNutricionistaListResult carries the nutritionists query result.
type GetNutricionistaListResult struct {
	Nutricionistas []domainNutricionista.Nutricionista
	Total          int
}

// QueryGetNutricionistaList fetches nutritionists then filters and sorts locally.
func QueryGetNutricionistaList(ctx context.Context, query GetEquipeListQuery, store nutricionistaStore.Store) (GetNutricionistaListResult, error) {
	items, err := store.List(ctx)
	if err != nil {
		return GetNutricionistaListResult{}, err
	}
	items = listutil.Filter(items, func(n domainNutricionista.Nutricionista) bool {
		return listutil.AnyMatchFold(query.Search, n.Nome, n.Email)
	})
	items = listutil.SortBy(items, nomeLess(query.Sort, func(n domainNutricionista.Nutricionista) string { return n.Nome }))
	return GetNutricionistaListResult{Nutricionistas: items, Total: len(items)}, nil
}
