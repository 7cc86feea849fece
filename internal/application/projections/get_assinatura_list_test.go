package projections

import (
	"context"
	"testing"

	"fitlab/internal/adapters/backend"
	domainAssinatura "fitlab/internal/domain/assinatura"
	domainCliente "fitlab/internal/domain/cliente"
	domainPlano "fitlab/internal/domain/plano"
)

type mockAssinaturaStore struct {
	assinaturas []domainAssinatura.Assinatura
}

func (m *mockAssinaturaStore) List(ctx context.Context) ([]domainAssinatura.Assinatura, error) {
	return m.assinaturas, nil
}

func (m *mockAssinaturaStore) ListAtivas(ctx context.Context) ([]domainAssinatura.Assinatura, error) {
	var out []domainAssinatura.Assinatura
	for _, a := range m.assinaturas {
		if a.Status == domainAssinatura.StatusAtiva {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAssinaturaStore) GetByID(ctx context.Context, id int64) (domainAssinatura.Assinatura, error) {
	for _, a := range m.assinaturas {
		if a.ID == id {
			return a, nil
		}
	}
	return domainAssinatura.Assinatura{}, &backend.APIError{Status: 404}
}

func (m *mockAssinaturaStore) Create(ctx context.Context, value domainAssinatura.Assinatura) error {
	m.assinaturas = append(m.assinaturas, value)
	return nil
}

func (m *mockAssinaturaStore) Delete(ctx context.Context, id int64) error { return nil }

type mockClienteListStore struct {
	clientes []domainCliente.Cliente
}

func (m *mockClienteListStore) List(ctx context.Context) ([]domainCliente.Cliente, error) {
	return m.clientes, nil
}

func (m *mockClienteListStore) GetByID(ctx context.Context, id int64) (domainCliente.Cliente, error) {
	for _, c := range m.clientes {
		if c.ID == id {
			return c, nil
		}
	}
	return domainCliente.Cliente{}, &backend.APIError{Status: 404}
}

func (m *mockClienteListStore) Create(ctx context.Context, value domainCliente.Cliente) error {
	m.clientes = append(m.clientes, value)
	return nil
}

func (m *mockClienteListStore) Update(ctx context.Context, value domainCliente.Cliente) error {
	return nil
}

func (m *mockClienteListStore) Delete(ctx context.Context, id int64) error { return nil }

type mockPlanoListStore struct {
	planos []domainPlano.Plano
}

func (m *mockPlanoListStore) List(ctx context.Context) ([]domainPlano.Plano, error) {
	return m.planos, nil
}

func (m *mockPlanoListStore) GetByID(ctx context.Context, id int64) (domainPlano.Plano, error) {
	for _, p := range m.planos {
		if p.ID == id {
			return p, nil
		}
	}
	return domainPlano.Plano{}, &backend.APIError{Status: 404}
}

func (m *mockPlanoListStore) Create(ctx context.Context, value domainPlano.Plano) error { return nil }
func (m *mockPlanoListStore) Update(ctx context.Context, value domainPlano.Plano) error { return nil }
func (m *mockPlanoListStore) Delete(ctx context.Context, id int64) error                { return nil }

func assinaturaTestDeps() GetAssinaturaListDeps {
	return GetAssinaturaListDeps{
		AssinaturaStore: &mockAssinaturaStore{assinaturas: []domainAssinatura.Assinatura{
			{ID: 1, ClienteID: 10, PlanoID: 20, Status: "ativa", CreatedAt: "2026-06-01T10:00:00Z", ExpiresAt: "2026-09-01T10:00:00Z"},
			{ID: 2, ClienteID: 11, PlanoID: 21, Status: "vencida", CreatedAt: "2026-01-15T10:00:00Z", ExpiresAt: "2026-02-15T10:00:00Z"},
			{ID: 3, ClienteID: 999, PlanoID: 20, Status: "vencida", CreatedAt: "2026-03-01T10:00:00Z", ExpiresAt: "2026-04-01T10:00:00Z"},
			{ID: 4, ClienteID: 10, PlanoID: 21, Status: "proxima", CreatedAt: "2026-08-01T10:00:00Z", ExpiresAt: "2026-09-05T10:00:00Z"},
		}},
		ClienteStore: &mockClienteListStore{clientes: []domainCliente.Cliente{
			{ID: 10, Nome: "Bruno Costa"},
			{ID: 11, Nome: "Ana Dias"},
		}},
		PlanoStore: &mockPlanoListStore{planos: []domainPlano.Plano{
			{ID: 20, Nome: "Mensal"},
			{ID: 21, Nome: "Anual Premium"},
		}},
	}
}

func TestQueryGetAssinaturaList_JoinAndDefaultSort(t *testing.T) {
	result, err := QueryGetAssinaturaList(context.Background(), GetAssinaturaListQuery{Sort: "cliente-asc"}, assinaturaTestDeps())
	if err != nil {
		t.Fatalf("QueryGetAssinaturaList: %v", err)
	}
	if result.Total != 4 {
		t.Fatalf("Total = %d, want 4 (missing joins must survive)", result.Total)
	}
	// Empty join name sorts first, then Ana, then Bruno twice in input order.
	if result.Assinaturas[0].ID != 3 || result.Assinaturas[0].ClienteNome != "" {
		t.Errorf("row 0 = %+v", result.Assinaturas[0])
	}
	if result.Assinaturas[1].ClienteNome != "Ana Dias" {
		t.Errorf("row 1 = %+v", result.Assinaturas[1])
	}
	if result.Assinaturas[2].ID != 1 || result.Assinaturas[3].ID != 4 {
		t.Errorf("ties not stable: %d then %d", result.Assinaturas[2].ID, result.Assinaturas[3].ID)
	}
	if result.Assinaturas[2].PlanoNome != "Mensal" {
		t.Errorf("plano join missing: %+v", result.Assinaturas[2])
	}
}

func TestQueryGetAssinaturaList_VencidasFacetExact(t *testing.T) {
	result, err := QueryGetAssinaturaList(context.Background(), GetAssinaturaListQuery{Sort: "cliente-asc", Facet: "vencidas"}, assinaturaTestDeps())
	if err != nil {
		t.Fatalf("QueryGetAssinaturaList: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("Total = %d, want 2", result.Total)
	}
	for _, row := range result.Assinaturas {
		if row.Status != "vencida" {
			t.Errorf("facet kept status %q", row.Status)
		}
	}
}

func TestQueryGetAssinaturaList_SearchPlanoNome(t *testing.T) {
	result, err := QueryGetAssinaturaList(context.Background(), GetAssinaturaListQuery{Sort: "cliente-asc", Search: "premium"}, assinaturaTestDeps())
	if err != nil {
		t.Fatalf("QueryGetAssinaturaList: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("Total = %d, want 2", result.Total)
	}
	for _, row := range result.Assinaturas {
		if row.PlanoNome != "Anual Premium" {
			t.Errorf("search kept plano %q", row.PlanoNome)
		}
	}
}

func TestQueryGetAssinaturaList_RenovacaoSort(t *testing.T) {
	result, err := QueryGetAssinaturaList(context.Background(), GetAssinaturaListQuery{Sort: "renovacao-asc"}, assinaturaTestDeps())
	if err != nil {
		t.Fatalf("QueryGetAssinaturaList: %v", err)
	}
	var prev string
	for _, row := range result.Assinaturas {
		if prev != "" && row.ExpiresAt < prev {
			t.Fatalf("not ordered by expires_at: %q after %q", row.ExpiresAt, prev)
		}
		prev = row.ExpiresAt
	}
}
