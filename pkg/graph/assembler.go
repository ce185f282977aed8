package graph

import (
	"context"
	"fmt"

	"github.com/MamuzaD/cal-hacks/pkg/entity"
	"github.com/MamuzaD/cal-hacks/pkg/logger"
	"github.com/MamuzaD/cal-hacks/pkg/store"
)

// Assembler builds one-hop holding graphs centered on an entity.
type Assembler struct {
	store store.EntityStore
}

// NewAssembler creates an Assembler over the given store.
func NewAssembler(s store.EntityStore) *Assembler {
	return &Assembler{store: s}
}

// Build returns the node and edge lists for the entity graph centered on
// id. The center is always nodes[0]; consumers rely on that ordering.
// An empty node list means the entity does not exist. Counterpart nodes
// are deduplicated by ID, edges are emitted once per holding row.
func (a *Assembler) Build(ctx context.Context, id string, kind entity.Type) ([]Node, []Edge, error) {
	switch kind {
	case entity.TypePerson:
		return a.buildForPerson(ctx, id)
	case entity.TypeCompany:
		return a.buildForCompany(ctx, id)
	default:
		return nil, nil, fmt.Errorf("unknown entity type %q", kind)
	}
}

func (a *Assembler) buildForPerson(ctx context.Context, id string) ([]Node, []Edge, error) {
	person, err := a.store.GetPerson(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if person == nil {
		return []Node{}, []Edge{}, nil
	}

	holdings, err := a.store.GetPersonHoldings(ctx, person.ID)
	if err != nil {
		return nil, nil, err
	}

	nodes := []Node{PersonNode(person)}
	edges := make([]Edge, 0, len(holdings))
	seen := map[string]bool{person.ID: true}

	for _, h := range holdings {
		if !seen[h.Company.ID] {
			seen[h.Company.ID] = true
			nodes = append(nodes, CompanyNode(&h.Company))
		}
		edges = append(edges, HoldingEdge(person.ID, h.Company.ID, h.Holding))
	}

	logger.Debug("Assembled person graph", "id", id, "nodes", len(nodes), "edges", len(edges))
	return nodes, edges, nil
}

func (a *Assembler) buildForCompany(ctx context.Context, id string) ([]Node, []Edge, error) {
	company, err := a.store.GetCompany(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if company == nil {
		return []Node{}, []Edge{}, nil
	}

	holders, err := a.store.GetCompanyHolders(ctx, company.ID)
	if err != nil {
		return nil, nil, err
	}

	nodes := []Node{CompanyNode(company)}
	edges := make([]Edge, 0, len(holders))
	seen := map[string]bool{company.ID: true}

	for _, h := range holders {
		if !seen[h.Person.ID] {
			seen[h.Person.ID] = true
			nodes = append(nodes, PersonNode(&h.Person))
		}
		// Direction stays person → company even with the company at
		// the center.
		edges = append(edges, HoldingEdge(h.Person.ID, company.ID, h.Holding))
	}

	logger.Debug("Assembled company graph", "id", id, "nodes", len(nodes), "edges", len(edges))
	return nodes, edges, nil
}
