package listutil

import (
	"net/url"
	"reflect"
	"testing"
)

func TestParseListParams(t *testing.T) {
	allowed := []string{"nome-asc", "nome-desc", "nascimento"}

	tests := []struct {
		name       string
		query      string
		wantSort   string
		wantSearch string
		wantFacet  string
	}{
		{"defaults", "", "nome-asc", "", ""},
		{"explicit sort", "sort=nome-desc", "nome-desc", "", ""},
		{"unknown sort is identity", "sort=drop%20table", "", "", ""},
		{"empty sort is identity", "sort=", "", "", ""},
		{"search trimmed", "q=%20maria%20", "nome-asc", "maria", ""},
		{"facet", "filtro=vencida", "nome-asc", "", "vencida"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)
			p := ParseListParams(q, allowed, "nome-asc")
			if p.Sort != tt.wantSort || p.Search != tt.wantSearch || p.Facet != tt.wantFacet {
				t.Fatalf("got %+v", p)
			}
		})
	}
}

func TestMatchFold(t *testing.T) {
	tests := []struct {
		haystack, needle string
		want             bool
	}{
		{"Maria Souza", "mar", true},
		{"Maria Souza", "SOUZA", true},
		{"Maria Souza", "pedro", false},
		{"", "pedro", false},
		{"anything", "", true},
	}
	for _, tt := range tests {
		if got := MatchFold(tt.haystack, tt.needle); got != tt.want {
			t.Errorf("MatchFold(%q, %q) = %v, want %v", tt.haystack, tt.needle, got, tt.want)
		}
	}
}

func TestAnyMatchFold_MissingFieldsAreSafe(t *testing.T) {
	// A record with no joined plano must not match a plano search, but
	// must survive an empty search untouched.
	if AnyMatchFold("premium", "Maria", "") {
		t.Error("missing field matched a non-empty needle")
	}
	if !AnyMatchFold("", "", "") {
		t.Error("empty needle must match records with missing fields")
	}
}

func TestFilter_KeepsExactlyMatching(t *testing.T) {
	type row struct{ Status string }
	rows := []row{{"ativa"}, {"vencida"}, {"proxima"}, {"vencida"}}

	got := Filter(rows, func(r row) bool { return r.Status == "vencida" })
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	for _, r := range got {
		if r.Status != "vencida" {
			t.Errorf("kept row with status %q", r.Status)
		}
	}
}

func TestFilter_IdentityWhenAllKept(t *testing.T) {
	rows := []int{3, 1, 2}
	got := Filter(rows, func(int) bool { return true })
	if !reflect.DeepEqual(got, rows) {
		t.Fatalf("identity filter changed the slice: %v", got)
	}
}

func TestSortBy_NilComparatorKeepsOrder(t *testing.T) {
	in := []string{"c", "a", "b"}
	got := SortBy(in, nil)
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("nil comparator reordered: %v", got)
	}
}

func TestSortBy_PermutationAndIdempotence(t *testing.T) {
	rows := []string{"banana", "Abacaxi", "caju", "abacate"}
	less := func(a, b string) bool { return CompareFold(a, b) < 0 }

	sorted := SortBy(rows, less)
	if len(sorted) != len(rows) {
		t.Fatalf("sort changed length: %d", len(sorted))
	}
	counts := map[string]int{}
	for _, r := range rows {
		counts[r]++
	}
	for _, r := range sorted {
		counts[r]--
	}
	for k, v := range counts {
		if v != 0 {
			t.Errorf("not a permutation, %q off by %d", k, v)
		}
	}

	again := SortBy(sorted, less)
	if !reflect.DeepEqual(again, sorted) {
		t.Error("sorting a sorted slice changed it")
	}
}

func TestSortBy_StableOnTies(t *testing.T) {
	type row struct {
		Nome string
		Seq  int
	}
	rows := []row{{"ana", 1}, {"ana", 2}, {"ana", 3}}
	got := SortBy(rows, func(a, b row) bool { return CompareFold(a.Nome, b.Nome) < 0 })
	for i, r := range got {
		if r.Seq != i+1 {
			t.Fatalf("tie order changed: %+v", got)
		}
	}
}

func TestSortBy_DoesNotMutateInput(t *testing.T) {
	rows := []int{3, 1, 2}
	SortBy(rows, func(a, b int) bool { return a < b })
	if !reflect.DeepEqual(rows, []int{3, 1, 2}) {
		t.Fatalf("input mutated: %v", rows)
	}
}

func TestParseTime(t *testing.T) {
	if ParseTime("2026-03-10T14:30:00Z").IsZero() {
		t.Error("RFC3339 should parse")
	}
	if ParseTime("2026-03-10").IsZero() {
		t.Error("date-only should parse")
	}
	if !ParseTime("garbage").IsZero() {
		t.Error("garbage should yield zero time")
	}
}
