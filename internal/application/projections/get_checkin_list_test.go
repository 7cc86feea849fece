package projections

import (
	"context"
	"testing"
	"time"

	"fitlab/internal/adapters/backend"
	domain "fitlab/internal/domain/checkin"
)

type mockCheckInStore struct {
	checkins []domain.CheckIn
}

func (m *mockCheckInStore) List(ctx context.Context) ([]domain.CheckIn, error) {
	return m.checkins, nil
}

func (m *mockCheckInStore) GetByID(ctx context.Context, id int64) (domain.CheckIn, error) {
	for _, c := range m.checkins {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.CheckIn{}, &backend.APIError{Status: 404}
}

func (m *mockCheckInStore) Create(ctx context.Context, assinaturaID int64) error { return nil }
func (m *mockCheckInStore) Delete(ctx context.Context, id int64) error           { return nil }

func checkinRow(id int64, nome, entrada string) domain.CheckIn {
	return domain.CheckIn{
		ID:      id,
		Entrada: entrada,
		Assinatura: domain.AssinaturaRef{
			ID:      id * 10,
			Cliente: domain.ClienteRef{ID: id * 100, Nome: nome},
		},
	}
}

func TestQueryGetCheckInList_Facets(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	deps := GetCheckInListDeps{CheckInStore: &mockCheckInStore{checkins: []domain.CheckIn{
		checkinRow(1, "Maria", "2026-08-30T09:00:00Z"),
		checkinRow(2, "Bruno", "2026-08-27T18:30:00Z"),
		checkinRow(3, "Paula", "2026-08-10T07:00:00Z"),
	}}}

	tests := []struct {
		name    string
		facet   string
		wantIDs []int64
	}{
		{"todas keeps everything newest first", "", []int64{1, 2, 3}},
		{"hoje keeps the calendar day", "hoje", []int64{1}},
		{"semana keeps the last seven days", "semana", []int64{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := QueryGetCheckInList(context.Background(), GetCheckInListQuery{Sort: "data-desc", Facet: tt.facet}, deps, now)
			if err != nil {
				t.Fatalf("QueryGetCheckInList: %v", err)
			}
			if result.Total != len(tt.wantIDs) {
				t.Fatalf("Total = %d, want %d", result.Total, len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if result.CheckIns[i].ID != want {
					t.Errorf("row %d = %d, want %d", i, result.CheckIns[i].ID, want)
				}
			}
		})
	}
}

func TestQueryGetCheckInList_SearchNestedClientName(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	deps := GetCheckInListDeps{CheckInStore: &mockCheckInStore{checkins: []domain.CheckIn{
		checkinRow(1, "Maria Souza", "2026-08-30T09:00:00Z"),
		checkinRow(2, "Bruno Costa", "2026-08-30T10:00:00Z"),
	}}}

	result, err := QueryGetCheckInList(context.Background(), GetCheckInListQuery{Sort: "data-desc", Search: "souza"}, deps, now)
	if err != nil {
		t.Fatalf("QueryGetCheckInList: %v", err)
	}
	if result.Total != 1 || result.CheckIns[0].ClienteNome() != "Maria Souza" {
		t.Fatalf("got %+v", result.CheckIns)
	}
}

func TestQueryGetCheckInList_ClienteSort(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	deps := GetCheckInListDeps{CheckInStore: &mockCheckInStore{checkins: []domain.CheckIn{
		checkinRow(1, "zeca", "2026-08-30T09:00:00Z"),
		checkinRow(2, "Alice", "2026-08-30T10:00:00Z"),
	}}}

	result, err := QueryGetCheckInList(context.Background(), GetCheckInListQuery{Sort: "cliente-asc"}, deps, now)
	if err != nil {
		t.Fatalf("QueryGetCheckInList: %v", err)
	}
	if result.CheckIns[0].ClienteNome() != "Alice" {
		t.Fatalf("case-insensitive sort broken: %+v", result.CheckIns)
	}
}
