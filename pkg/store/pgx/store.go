package pgx

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MamuzaD/cal-hacks/pkg/entity"
	"github.com/MamuzaD/cal-hacks/pkg/store"
)

// EntityStorage is the pgx implementation of store.EntityStore over the
// canonical politicians/companies/holdings schema.
type EntityStorage struct {
	conn *pgxpool.Pool
}

// NewEntityStorage wraps a shared connection pool. The pool lifecycle is
// owned by the caller.
func NewEntityStorage(conn *pgxpool.Pool) *EntityStorage {
	return &EntityStorage{conn: conn}
}

// Resolution queries carry an explicit secondary sort (name, then internal
// id) so a term matching several rows always resolves to the same entity.

const findCompanyByTickerSQL = `
SELECT public_id, name, ticker, logo_key
FROM companies
WHERE ticker IS NOT NULL AND UPPER(ticker) = UPPER($1)
ORDER BY name ASC, id ASC
LIMIT 1`

const findCompanyByNameSQL = `
SELECT public_id, name, ticker, logo_key
FROM companies
WHERE name ILIKE $1
ORDER BY name ASC, id ASC
LIMIT 1`

const findPersonByNameSQL = `
SELECT public_id, name, position, state, party_affiliation,
       estimated_net_worth, last_trade_date, tenure_start
FROM politicians
WHERE name ILIKE $1
ORDER BY name ASC, id ASC
LIMIT 1`

const getCompanySQL = `
SELECT public_id, name, ticker, logo_key
FROM companies
WHERE public_id = $1`

const getPersonSQL = `
SELECT public_id, name, position, state, party_affiliation,
       estimated_net_worth, last_trade_date, tenure_start
FROM politicians
WHERE public_id = $1`

const getPersonHoldingsSQL = `
SELECT h.id, h.holding_value, h.status,
       c.public_id, c.name, c.ticker, c.logo_key
FROM holdings h
JOIN companies c ON c.id = h.company_id
JOIN politicians p ON p.id = h.politician_id
WHERE p.public_id = $1
ORDER BY h.holding_value DESC NULLS LAST, h.id ASC`

const getCompanyHoldersSQL = `
SELECT h.id, h.holding_value, h.status,
       p.public_id, p.name, p.position, p.state, p.party_affiliation,
       p.estimated_net_worth, p.last_trade_date, p.tenure_start
FROM holdings h
JOIN politicians p ON p.id = h.politician_id
JOIN companies c ON c.id = h.company_id
WHERE c.public_id = $1
ORDER BY h.holding_value DESC NULLS LAST, h.id ASC`

const getCompanyHoldingSummarySQL = `
SELECT SUM(h.holding_value), COUNT(DISTINCT h.politician_id)
FROM holdings h
JOIN companies c ON c.id = h.company_id
WHERE c.public_id = $1`

func (s *EntityStorage) FindCompanyByTicker(ctx context.Context, ticker string) (*entity.Company, error) {
	return s.queryCompany(ctx, findCompanyByTickerSQL, ticker)
}

func (s *EntityStorage) FindCompanyByName(ctx context.Context, q string) (*entity.Company, error) {
	return s.queryCompany(ctx, findCompanyByNameSQL, containsPattern(q))
}

func (s *EntityStorage) FindPersonByName(ctx context.Context, q string) (*entity.Person, error) {
	return s.queryPerson(ctx, findPersonByNameSQL, containsPattern(q))
}

func (s *EntityStorage) GetCompany(ctx context.Context, id string) (*entity.Company, error) {
	return s.queryCompany(ctx, getCompanySQL, id)
}

func (s *EntityStorage) GetPerson(ctx context.Context, id string) (*entity.Person, error) {
	return s.queryPerson(ctx, getPersonSQL, id)
}

func (s *EntityStorage) GetPersonHoldings(ctx context.Context, personID string) ([]entity.PersonHolding, error) {
	rows, err := s.conn.Query(ctx, getPersonHoldingsSQL, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holdings := make([]entity.PersonHolding, 0)
	for rows.Next() {
		var h entity.PersonHolding
		err := rows.Scan(
			&h.ID, &h.Value, &h.Status,
			&h.Company.ID, &h.Company.Name, &h.Company.Ticker, &h.Company.LogoKey,
		)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

func (s *EntityStorage) GetCompanyHolders(ctx context.Context, companyID string) ([]entity.CompanyHolder, error) {
	rows, err := s.conn.Query(ctx, getCompanyHoldersSQL, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holders := make([]entity.CompanyHolder, 0)
	for rows.Next() {
		var h entity.CompanyHolder
		err := rows.Scan(
			&h.ID, &h.Value, &h.Status,
			&h.Person.ID, &h.Person.Name, &h.Person.Position, &h.Person.State,
			&h.Person.PartyAffiliation, &h.Person.EstimatedNetWorth,
			&h.Person.LastTradeDate, &h.Person.TenureStart,
		)
		if err != nil {
			return nil, err
		}
		holders = append(holders, h)
	}
	return holders, rows.Err()
}

func (s *EntityStorage) GetCompanyHoldingSummary(ctx context.Context, companyID string) (store.HoldingSummary, error) {
	var summary store.HoldingSummary
	err := s.conn.QueryRow(ctx, getCompanyHoldingSummarySQL, companyID).
		Scan(&summary.TotalValue, &summary.Holders)
	if err != nil {
		return store.HoldingSummary{}, err
	}
	return summary, nil
}

func (s *EntityStorage) queryCompany(ctx context.Context, sql string, arg any) (*entity.Company, error) {
	var c entity.Company
	err := s.conn.QueryRow(ctx, sql, arg).
		Scan(&c.ID, &c.Name, &c.Ticker, &c.LogoKey)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *EntityStorage) queryPerson(ctx context.Context, sql string, arg any) (*entity.Person, error) {
	var p entity.Person
	err := s.conn.QueryRow(ctx, sql, arg).
		Scan(
			&p.ID, &p.Name, &p.Position, &p.State, &p.PartyAffiliation,
			&p.EstimatedNetWorth, &p.LastTradeDate, &p.TenureStart,
		)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// LIKE metacharacters in the user's term are escaped so contains
// matching stays literal ("100%" must not match every row).
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}
