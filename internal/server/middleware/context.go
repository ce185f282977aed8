package middleware

import (
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/MamuzaD/cal-hacks/pkg/classify"
	"github.com/MamuzaD/cal-hacks/pkg/graph"
	"github.com/MamuzaD/cal-hacks/pkg/search"
	"github.com/MamuzaD/cal-hacks/pkg/store"
)

// App bundles the shared collaborators every handler needs. It is built
// once at startup; in particular the classifier capability is decided
// there and never re-checked per request.
type App struct {
	DBConn     *pgxpool.Pool
	Store      store.EntityStore
	Classifier *classify.Classifier
	Searcher   *search.Pipeline
	Graph      *graph.Assembler
	S3         *s3.Client
}

// AppContext wraps the echo context with application state.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware injects the shared App into every request context.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
