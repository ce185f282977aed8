package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/MamuzaD/cal-hacks/internal/storage"
	"github.com/MamuzaD/cal-hacks/internal/util"
	"github.com/MamuzaD/cal-hacks/pkg/logger"
	"github.com/MamuzaD/cal-hacks/pkg/logger/console"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Seed loads a JSON dataset into the entity tables. Holdings reference
// politicians and companies by name, resolved after both are inserted.
// Companies may name a local logo_file, uploaded to the asset bucket
// with the stored key written to logo_key.

type seedPolitician struct {
	Name              string       `json:"name"`
	Position          *string      `json:"position"`
	State             *string      `json:"state"`
	PartyAffiliation  *string      `json:"party_affiliation"`
	EstimatedNetWorth *json.Number `json:"estimated_net_worth"`
	LastTradeDate     *string      `json:"last_trade_date"`
	TenureStart       *string      `json:"tenure_start"`
}

type seedCompany struct {
	Name     string  `json:"name"`
	Ticker   *string `json:"ticker"`
	LogoKey  *string `json:"logo_key"`
	LogoFile *string `json:"logo_file"`
}

type seedHolding struct {
	Politician string       `json:"politician"`
	Company    string       `json:"company"`
	Value      *json.Number `json:"value"`
	Status     *string      `json:"status"`
}

type seedFile struct {
	Politicians []seedPolitician `json:"politicians"`
	Companies   []seedCompany    `json:"companies"`
	Holdings    []seedHolding    `json:"holdings"`
}

func main() {
	util.LoadEnv()

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: util.GetEnvBool("DEBUG", false),
	})
	logger.Init(consoleLogger)

	path := util.GetEnvString("SEED_FILE", "seed.json")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := loadSeedFile(path)
	if err != nil {
		logger.Fatal("Failed to load seed file", "path", path, "err", err)
	}

	ctx := context.Background()
	conn, err := pgxpool.New(ctx, util.GetEnv("DATABASE_URL"))
	if err != nil {
		logger.Fatal("Failed to connect to database", "err", err)
	}
	defer conn.Close()

	s3Client := storage.NewS3Client(ctx)

	if err := insertAll(ctx, conn, s3Client, data); err != nil {
		logger.Fatal("Failed to seed database", "err", err)
	}

	logger.Info("Seed complete",
		"politicians", len(data.Politicians),
		"companies", len(data.Companies),
		"holdings", len(data.Holdings),
	)
}

func loadSeedFile(path string) (*seedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	data := new(seedFile)
	if err := dec.Decode(data); err != nil {
		return nil, err
	}
	return data, nil
}

func insertAll(ctx context.Context, conn *pgxpool.Pool, s3Client *s3.Client, data *seedFile) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	politicianIDs := make(map[string]int64, len(data.Politicians))
	for _, p := range data.Politicians {
		publicID, err := gonanoid.New()
		if err != nil {
			return err
		}

		lastTrade, err := parseDate(p.LastTradeDate)
		if err != nil {
			return err
		}
		tenure, err := parseDate(p.TenureStart)
		if err != nil {
			return err
		}

		var id int64
		err = tx.QueryRow(ctx,
			`INSERT INTO politicians (public_id, name, position, state, party_affiliation, estimated_net_worth, last_trade_date, tenure_start)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING id`,
			publicID, p.Name, p.Position, p.State, p.PartyAffiliation,
			numberString(p.EstimatedNetWorth), lastTrade, tenure,
		).Scan(&id)
		if err != nil {
			return err
		}
		politicianIDs[p.Name] = id
	}

	companyIDs := make(map[string]int64, len(data.Companies))
	for _, c := range data.Companies {
		publicID, err := gonanoid.New()
		if err != nil {
			return err
		}

		logoKey := c.LogoKey
		if c.LogoFile != nil {
			key, err := uploadLogo(ctx, s3Client, publicID, *c.LogoFile)
			if err != nil {
				return err
			}
			if key != nil {
				logoKey = key
			}
		}

		var id int64
		err = tx.QueryRow(ctx,
			`INSERT INTO companies (public_id, name, ticker, logo_key)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			publicID, c.Name, c.Ticker, logoKey,
		).Scan(&id)
		if err != nil {
			return err
		}
		companyIDs[c.Name] = id
	}

	for _, h := range data.Holdings {
		politicianID, ok := politicianIDs[h.Politician]
		if !ok {
			logger.Warn("Skipping holding for unknown politician", "name", h.Politician)
			continue
		}
		companyID, ok := companyIDs[h.Company]
		if !ok {
			logger.Warn("Skipping holding for unknown company", "name", h.Company)
			continue
		}

		status := "active"
		if h.Status != nil {
			status = *h.Status
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO holdings (politician_id, company_id, holding_value, status)
			 VALUES ($1, $2, $3, $4)`,
			politicianID, companyID, numberString(h.Value), status,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// uploadLogo pushes a local logo file to the asset bucket and returns
// the stored key. Without S3 credentials the upload is skipped and the
// company keeps whatever logo_key the dataset carried.
func uploadLogo(ctx context.Context, s3Client *s3.Client, companyID string, path string) (*string, error) {
	if s3Client == nil {
		logger.Warn("Skipping logo upload, no S3 credentials configured", "path", path)
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	key, err := storage.PutLogo(ctx, s3Client, companyID, filepath.Base(path), f)
	if err != nil {
		return nil, err
	}
	logger.Info("Uploaded company logo", "path", path, "key", key)
	return &key, nil
}

// numberString passes decimal values through as strings so Postgres
// parses them into NUMERIC without a float round-trip.
func numberString(n *json.Number) *string {
	if n == nil {
		return nil
	}
	s := n.String()
	return &s
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
