package entity

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Type tags an entity as one of the two canonical kinds.
type Type string

const (
	TypePerson  Type = "person"
	TypeCompany Type = "company"
)

// Valid reports whether t is one of the known entity kinds.
func (t Type) Valid() bool {
	switch t {
	case TypePerson, TypeCompany:
		return true
	}
	return false
}

// Person is a politician row from the canonical store. The ID is the
// opaque public identifier, internal keys never leave the store layer.
//
// Monetary fields stay fixed-point (pgtype.Numeric) until a response
// projection converts them, see Float.
type Person struct {
	ID                string
	Name              string
	Position          *string
	State             *string
	PartyAffiliation  *string
	EstimatedNetWorth pgtype.Numeric
	LastTradeDate     *time.Time
	TenureStart       *time.Time
}

// Company is a company row from the canonical store.
type Company struct {
	ID      string
	Name    string
	Ticker  *string
	LogoKey *string
}

// Holding is one ownership relationship row between a person and a
// company. Duplicate (person, company) pairs are allowed and additive.
type Holding struct {
	ID     int64
	Value  pgtype.Numeric
	Status *string
}

// PersonHolding is a holding row joined to its company side.
type PersonHolding struct {
	Holding
	Company Company
}

// CompanyHolder is a holding row joined to its person side.
type CompanyHolder struct {
	Holding
	Person Person
}

// Ref is a resolved reference to a canonical entity.
type Ref struct {
	ID   string
	Type Type
	Name string
}

// Float converts a fixed-point numeric to a float pointer for
// serialization. Null or unrepresentable values map to nil.
func Float(n pgtype.Numeric) *float64 {
	if !n.Valid {
		return nil
	}
	value, err := n.Float64Value()
	if err != nil || !value.Valid {
		return nil
	}
	f := value.Float64
	return &f
}
