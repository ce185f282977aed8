package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/MamuzaD/cal-hacks/pkg/entity"
)

// EntityStore defines read access to the canonical entity tables.
// Politicians, companies and holdings are written by the seed loader and
// external ingestion, so this interface stays read-only.
//
// Lookup methods return (nil, nil) when nothing matches. A non-nil error
// always means the store itself failed, never a negative result.
type EntityStore interface {
	// FindCompanyByTicker matches the ticker symbol exactly,
	// case-insensitively.
	FindCompanyByTicker(ctx context.Context, ticker string) (*entity.Company, error)
	// FindCompanyByName does a case-insensitive contains match on the
	// company name.
	FindCompanyByName(ctx context.Context, q string) (*entity.Company, error)
	// FindPersonByName does a case-insensitive contains match on the
	// politician name.
	FindPersonByName(ctx context.Context, q string) (*entity.Person, error)

	GetPerson(ctx context.Context, id string) (*entity.Person, error)
	GetCompany(ctx context.Context, id string) (*entity.Company, error)

	// GetPersonHoldings returns every holding row of a person joined to
	// its company, highest value first.
	GetPersonHoldings(ctx context.Context, personID string) ([]entity.PersonHolding, error)
	// GetCompanyHolders returns every holding row on a company joined to
	// its politician, highest value first.
	GetCompanyHolders(ctx context.Context, companyID string) ([]entity.CompanyHolder, error)

	// GetCompanyHoldingSummary aggregates holding value and distinct
	// holder count for a company. The total stays fixed-point so no
	// precision is lost before serialization.
	GetCompanyHoldingSummary(ctx context.Context, companyID string) (HoldingSummary, error)
}

// HoldingSummary is the aggregate over all holdings of one company.
type HoldingSummary struct {
	TotalValue pgtype.Numeric
	Holders    int64
}
