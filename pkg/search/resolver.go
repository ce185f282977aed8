package search

import (
	"context"
	"fmt"

	"github.com/MamuzaD/cal-hacks/pkg/entity"
	"github.com/MamuzaD/cal-hacks/pkg/logger"
	"github.com/MamuzaD/cal-hacks/pkg/store"
)

// Resolver maps a classified search term to a canonical entity reference.
type Resolver struct {
	store store.EntityStore
}

// NewResolver creates a Resolver over the given store.
func NewResolver(s store.EntityStore) *Resolver {
	return &Resolver{store: s}
}

// Resolve looks term up using the strategy for the classified kind and
// returns a canonical reference, or (nil, nil) when nothing matches.
// Only store failures produce an error.
//
// Companies resolve by exact case-insensitive ticker first, then by
// case-insensitive name contains. Persons resolve by name contains only.
func (r *Resolver) Resolve(ctx context.Context, term string, kind entity.Type) (*entity.Ref, error) {
	switch kind {
	case entity.TypeCompany:
		return r.resolveCompany(ctx, term)
	case entity.TypePerson:
		return r.resolvePerson(ctx, term)
	default:
		return nil, fmt.Errorf("unknown entity type %q", kind)
	}
}

func (r *Resolver) resolveCompany(ctx context.Context, term string) (*entity.Ref, error) {
	company, err := r.store.FindCompanyByTicker(ctx, term)
	if err != nil {
		return nil, err
	}
	if company != nil {
		logger.Debug("Resolved company by ticker", "term", term, "id", company.ID)
		return companyRef(company), nil
	}

	company, err = r.store.FindCompanyByName(ctx, term)
	if err != nil {
		return nil, err
	}
	if company != nil {
		logger.Debug("Resolved company by name", "term", term, "id", company.ID)
		return companyRef(company), nil
	}

	return nil, nil
}

func (r *Resolver) resolvePerson(ctx context.Context, term string) (*entity.Ref, error) {
	person, err := r.store.FindPersonByName(ctx, term)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, nil
	}
	logger.Debug("Resolved person by name", "term", term, "id", person.ID)
	return &entity.Ref{
		ID:   person.ID,
		Type: entity.TypePerson,
		Name: person.Name,
	}, nil
}

func companyRef(company *entity.Company) *entity.Ref {
	return &entity.Ref{
		ID:   company.ID,
		Type: entity.TypeCompany,
		Name: company.Name,
	}
}
