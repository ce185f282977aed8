package graph

import (
	"time"

	"github.com/MamuzaD/cal-hacks/pkg/entity"
)

// EdgeTypeHolding is the only edge type emitted by the assembler.
const EdgeTypeHolding = "holding"

// Node is the visualization projection of an entity. Person and company
// attributes are both present as optionals, the type tag says which set
// applies. Within one graph no two nodes share an ID.
type Node struct {
	ID   string      `json:"id"`
	Type entity.Type `json:"type"`
	Name string      `json:"name"`

	// person attributes
	Position          *string    `json:"position,omitempty"`
	State             *string    `json:"state,omitempty"`
	PartyAffiliation  *string    `json:"party_affiliation,omitempty"`
	EstimatedNetWorth *float64   `json:"estimated_net_worth,omitempty"`
	LastTradeDate     *time.Time `json:"last_trade_date,omitempty"`
	TenureStart       *time.Time `json:"tenure_start,omitempty"`

	// company attributes
	Ticker *string `json:"ticker,omitempty"`
}

// Edge is one holding relationship, always directed person → company.
// Edges are per holding row and never deduplicated, parallel edges mean
// distinct holdings.
type Edge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   string   `json:"type"`
	Value  *float64 `json:"ownership_value"`
	Label  string   `json:"label,omitempty"`
	Status *string  `json:"status,omitempty"`
}

// PersonNode projects a person row into a graph node.
func PersonNode(p *entity.Person) Node {
	return Node{
		ID:                p.ID,
		Type:              entity.TypePerson,
		Name:              p.Name,
		Position:          p.Position,
		State:             p.State,
		PartyAffiliation:  p.PartyAffiliation,
		EstimatedNetWorth: entity.Float(p.EstimatedNetWorth),
		LastTradeDate:     p.LastTradeDate,
		TenureStart:       p.TenureStart,
	}
}

// CompanyNode projects a company row into a graph node.
func CompanyNode(c *entity.Company) Node {
	return Node{
		ID:     c.ID,
		Type:   entity.TypeCompany,
		Name:   c.Name,
		Ticker: c.Ticker,
	}
}

// HoldingEdge projects a holding row into an edge from person to company.
// The fixed-point value is converted to float here, at the projection
// boundary, and nowhere earlier.
func HoldingEdge(personID, companyID string, h entity.Holding) Edge {
	return Edge{
		Source: personID,
		Target: companyID,
		Type:   EdgeTypeHolding,
		Value:  entity.Float(h.Value),
		Label:  EdgeTypeHolding,
		Status: h.Status,
	}
}
