package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/MamuzaD/cal-hacks/pkg/entity"
	"github.com/MamuzaD/cal-hacks/pkg/store"
)

type fakeStore struct {
	person   *entity.Person
	company  *entity.Company
	holdings []entity.PersonHolding
	holders  []entity.CompanyHolder
	err      error
}

func (f *fakeStore) FindCompanyByTicker(ctx context.Context, ticker string) (*entity.Company, error) {
	return nil, nil
}

func (f *fakeStore) FindCompanyByName(ctx context.Context, q string) (*entity.Company, error) {
	return nil, nil
}

func (f *fakeStore) FindPersonByName(ctx context.Context, q string) (*entity.Person, error) {
	return nil, nil
}

func (f *fakeStore) GetPerson(ctx context.Context, id string) (*entity.Person, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.person != nil && f.person.ID == id {
		return f.person, nil
	}
	return nil, nil
}

func (f *fakeStore) GetCompany(ctx context.Context, id string) (*entity.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.company != nil && f.company.ID == id {
		return f.company, nil
	}
	return nil, nil
}

func (f *fakeStore) GetPersonHoldings(ctx context.Context, personID string) ([]entity.PersonHolding, error) {
	return f.holdings, f.err
}

func (f *fakeStore) GetCompanyHolders(ctx context.Context, companyID string) ([]entity.CompanyHolder, error) {
	return f.holders, f.err
}

func (f *fakeStore) GetCompanyHoldingSummary(ctx context.Context, companyID string) (store.HoldingSummary, error) {
	return store.HoldingSummary{}, nil
}

func numeric(t *testing.T, value string) pgtype.Numeric {
	t.Helper()
	var n pgtype.Numeric
	if err := n.Scan(value); err != nil {
		t.Fatalf("failed to build numeric %q: %v", value, err)
	}
	return n
}

func strPtr(s string) *string { return &s }

func TestBuild_NonexistentEntityIsEmpty(t *testing.T) {
	a := NewAssembler(&fakeStore{})

	for _, kind := range []entity.Type{entity.TypePerson, entity.TypeCompany} {
		nodes, edges, err := a.Build(context.Background(), "missing", kind)
		if err != nil {
			t.Fatalf("%s: expected nil error, got %v", kind, err)
		}
		if len(nodes) != 0 || len(edges) != 0 {
			t.Fatalf("%s: expected empty graph, got %d nodes %d edges", kind, len(nodes), len(edges))
		}
	}
}

func TestBuild_PersonCenterDedupsNodesKeepsEdges(t *testing.T) {
	apple := entity.Company{ID: "c_apple", Name: "Apple Inc", Ticker: strPtr("AAPL")}
	acme := entity.Company{ID: "c_acme", Name: "Acme Holdings"}

	s := &fakeStore{
		person: &entity.Person{ID: "p_jane", Name: "Jane Q. Public"},
		holdings: []entity.PersonHolding{
			{Holding: entity.Holding{ID: 1, Value: numeric(t, "1500.50")}, Company: apple},
			{Holding: entity.Holding{ID: 2, Value: numeric(t, "200")}, Company: apple},
			{Holding: entity.Holding{ID: 3}, Company: acme},
		},
	}
	a := NewAssembler(s)

	nodes, edges, err := a.Build(context.Background(), "p_jane", entity.TypePerson)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	// Three holding rows over two distinct companies: one node per
	// company, one edge per row.
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}
	if len(edges) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(edges))
	}
	if nodes[0].ID != "p_jane" || nodes[0].Type != entity.TypePerson {
		t.Fatalf("expected center first, got %+v", nodes[0])
	}

	seen := map[string]int{}
	for _, n := range nodes {
		seen[n.ID]++
	}
	for id, count := range seen {
		if count > 1 {
			t.Fatalf("node %q appears %d times", id, count)
		}
	}

	for _, e := range edges {
		if e.Source != "p_jane" {
			t.Fatalf("expected edges to originate at the person, got %+v", e)
		}
		if e.Type != EdgeTypeHolding {
			t.Fatalf("expected holding edge type, got %q", e.Type)
		}
	}

	if edges[0].Value == nil || *edges[0].Value != 1500.50 {
		t.Fatalf("expected edge value 1500.50, got %v", edges[0].Value)
	}
	if edges[2].Value != nil {
		t.Fatalf("expected nil value for null holding, got %v", *edges[2].Value)
	}
}

func TestBuild_CompanyCenterEdgesStayPersonToCompany(t *testing.T) {
	jane := entity.Person{ID: "p_jane", Name: "Jane Q. Public"}
	john := entity.Person{ID: "p_john", Name: "John Smith"}

	s := &fakeStore{
		company: &entity.Company{ID: "c_apple", Name: "Apple Inc", Ticker: strPtr("AAPL")},
		holders: []entity.CompanyHolder{
			{Holding: entity.Holding{ID: 1, Value: numeric(t, "100"), Status: strPtr("active")}, Person: jane},
			{Holding: entity.Holding{ID: 2, Value: numeric(t, "250"), Status: strPtr("sold")}, Person: jane},
			{Holding: entity.Holding{ID: 3, Value: numeric(t, "50")}, Person: john},
		},
	}
	a := NewAssembler(s)

	nodes, edges, err := a.Build(context.Background(), "c_apple", entity.TypeCompany)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes (company + 2 persons), got %d", len(nodes))
	}
	if nodes[0].ID != "c_apple" || nodes[0].Type != entity.TypeCompany {
		t.Fatalf("expected company center first, got %+v", nodes[0])
	}
	if len(edges) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(edges))
	}

	for _, e := range edges {
		if e.Target != "c_apple" {
			t.Fatalf("expected edges directed at the company, got %+v", e)
		}
		if e.Source == "c_apple" {
			t.Fatalf("edge source must be the person, got %+v", e)
		}
	}

	if edges[1].Status == nil || *edges[1].Status != "sold" {
		t.Fatalf("expected sold status carried onto edge, got %+v", edges[1])
	}
}

func TestBuild_StoreErrorPropagates(t *testing.T) {
	s := &fakeStore{err: errors.New("broken pipe")}
	a := NewAssembler(s)

	if _, _, err := a.Build(context.Background(), "p_jane", entity.TypePerson); err == nil {
		t.Fatal("expected store error to propagate")
	}
}

func TestBuild_UnknownTypeFails(t *testing.T) {
	a := NewAssembler(&fakeStore{})
	if _, _, err := a.Build(context.Background(), "x", entity.Type("committee")); err == nil {
		t.Fatal("expected error for unknown entity type")
	}
}
