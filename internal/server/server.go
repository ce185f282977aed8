package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "github.com/MamuzaD/cal-hacks/internal/server/middleware"
	"github.com/MamuzaD/cal-hacks/internal/storage"
	"github.com/MamuzaD/cal-hacks/internal/util"
	"github.com/MamuzaD/cal-hacks/pkg/ai"
	"github.com/MamuzaD/cal-hacks/pkg/ai/ollama"
	aiopenai "github.com/MamuzaD/cal-hacks/pkg/ai/openai"
	"github.com/MamuzaD/cal-hacks/pkg/classify"
	"github.com/MamuzaD/cal-hacks/pkg/graph"
	"github.com/MamuzaD/cal-hacks/pkg/logger"
	"github.com/MamuzaD/cal-hacks/pkg/search"
	pgstore "github.com/MamuzaD/cal-hacks/pkg/store/pgx"

	"github.com/go-playground/validator"
	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	databaseURL := util.GetEnv("DATABASE_URL")

	runMigrations(databaseURL)

	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		logger.Fatal("Failed to parse database config", "err", err)
	}
	poolConfig.MinConns = int32(util.GetEnvInt("DB_POOL_MIN", 2))
	poolConfig.MaxConns = int32(util.GetEnvInt("DB_POOL_MAX", 10))

	conn, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Failed to connect to database", "err", err)
	}
	defer conn.Close()

	s3 := storage.NewS3Client(ctx)

	entityStore := pgstore.NewEntityStorage(conn)

	aiClient := newCompletionClient()
	if aiClient == nil {
		logger.Warn("No AI credentials configured, classification runs on heuristics only")
	}

	classifier := classify.NewClassifier(classify.NewClassifierParams{
		Client:  aiClient,
		Timeout: time.Duration(util.GetEnvInt("AI_TIMEOUT", 10)) * time.Second,
	})

	app := &mid.App{
		DBConn:     conn,
		Store:      entityStore,
		Classifier: classifier,
		Searcher:   search.NewPipeline(classifier, entityStore),
		Graph:      graph.NewAssembler(entityStore),
		S3:         s3,
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	RegisterRoutes(e)

	go func() {
		port := util.GetEnv("PORT")
		if port == "" {
			port = "8080"
		}
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

func runMigrations(databaseURL string) {
	m, err := migrate.New("file://migrations", databaseURL)
	if err != nil {
		logger.Fatal("Failed to initialize migrations", "err", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Fatal("Failed to run migrations", "err", err)
	}
}

// newCompletionClient builds the model client once at startup. A nil
// return means no credential is configured and the classifier answers
// from heuristics alone.
func newCompletionClient() ai.CompletionClient {
	chatKey := util.GetEnv("AI_CHAT_KEY")
	if chatKey == "" {
		return nil
	}

	chatModel := util.GetEnvString("AI_CHAT_MODEL", "gpt-4o-mini")
	chatURL := util.GetEnv("AI_CHAT_URL")
	parallel := int64(util.GetEnvInt("AI_PARALLEL_REQ", 15))

	switch util.GetEnv("AI_ADAPTER") {
	case "ollama":
		client, err := ollama.NewCompletionOllamaClient(ollama.NewCompletionOllamaClientParams{
			ChatModel:             chatModel,
			BaseURL:               chatURL,
			ApiKey:                chatKey,
			MaxConcurrentRequests: parallel,
		})
		if err != nil {
			logger.Fatal("Failed to create ollama client", "err", err)
		}
		return client
	default:
		return aiopenai.NewCompletionOpenAIClient(aiopenai.NewCompletionOpenAIClientParams{
			ChatModel:             chatModel,
			ChatURL:               chatURL,
			ChatKey:               chatKey,
			MaxConcurrentRequests: parallel,
		})
	}
}
