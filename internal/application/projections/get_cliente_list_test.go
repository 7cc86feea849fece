package projections

import (
	"context"
	"testing"

	domain "fitlab/internal/domain/cliente"
)

func clienteTestDeps() GetClienteListDeps {
	return GetClienteListDeps{ClienteStore: &mockClienteListStore{clientes: []domain.Cliente{
		{ID: 1, Nome: "Bruno Costa", Email: "bruno@example.com", DataNascimento: "1995-04-10T00:00:00Z"},
		{ID: 2, Nome: "ana dias", Email: "ana@example.com", DataNascimento: "1988-11-02T00:00:00Z"},
		{ID: 3, Nome: "Carla Brum", Email: "carla@outro.com", DataNascimento: "2001-06-20T00:00:00Z"},
	}}}
}

func TestQueryGetClienteList_SearchNomeOrEmail(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   int
	}{
		{"empty search is identity", "", 3},
		{"matches nome", "bru", 2}, // Bruno and Carla Brum
		{"matches email", "example.com", 2},
		{"no match yields zero", "inexistente", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := QueryGetClienteList(context.Background(), GetClienteListQuery{Search: tt.search, Sort: "nome-asc"}, clienteTestDeps())
			if err != nil {
				t.Fatalf("QueryGetClienteList: %v", err)
			}
			if result.Total != tt.want {
				t.Fatalf("Total = %d, want %d", result.Total, tt.want)
			}
		})
	}
}

func TestQueryGetClienteList_Sorts(t *testing.T) {
	t.Run("nome-asc is case-insensitive", func(t *testing.T) {
		result, err := QueryGetClienteList(context.Background(), GetClienteListQuery{Sort: "nome-asc"}, clienteTestDeps())
		if err != nil {
			t.Fatalf("QueryGetClienteList: %v", err)
		}
		if result.Clientes[0].Nome != "ana dias" {
			t.Errorf("first = %q", result.Clientes[0].Nome)
		}
	})

	t.Run("empty sort keeps fetch order", func(t *testing.T) {
		result, err := QueryGetClienteList(context.Background(), GetClienteListQuery{Sort: ""}, clienteTestDeps())
		if err != nil {
			t.Fatalf("QueryGetClienteList: %v", err)
		}
		for i, id := range []int64{1, 2, 3} {
			if result.Clientes[i].ID != id {
				t.Fatalf("position %d = cliente %d, want %d", i, result.Clientes[i].ID, id)
			}
		}
	})

	t.Run("unknown sort keeps fetch order", func(t *testing.T) {
		result, err := QueryGetClienteList(context.Background(), GetClienteListQuery{Sort: "peso"}, clienteTestDeps())
		if err != nil {
			t.Fatalf("QueryGetClienteList: %v", err)
		}
		if result.Clientes[0].ID != 1 {
			t.Errorf("first = cliente %d, want 1", result.Clientes[0].ID)
		}
	})

	t.Run("nascimento orders oldest first", func(t *testing.T) {
		result, err := QueryGetClienteList(context.Background(), GetClienteListQuery{Sort: "nascimento"}, clienteTestDeps())
		if err != nil {
			t.Fatalf("QueryGetClienteList: %v", err)
		}
		if result.Clientes[0].ID != 2 || result.Clientes[2].ID != 3 {
			t.Errorf("order = %v, %v, %v", result.Clientes[0].ID, result.Clientes[1].ID, result.Clientes[2].ID)
		}
	})
}
