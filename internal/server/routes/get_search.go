package routes

import (
	"net/http"

	"github.com/MamuzaD/cal-hacks/internal/server/middleware"
	"github.com/MamuzaD/cal-hacks/pkg/entity"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// GetSearchHandler resolves a free-text term to a canonical entity.
func GetSearchHandler(c echo.Context) error {
	type searchParams struct {
		Query string `query:"q" validate:"required"`
	}

	type searchResult struct {
		ID         string      `json:"id"`
		Type       entity.Type `json:"type"`
		Name       string      `json:"name"`
		Confidence float64     `json:"confidence"`
		Reasoning  string      `json:"reasoning"`
	}

	type searchResponse struct {
		Message string        `json:"message"`
		Result  *searchResult `json:"result,omitempty"`
	}

	params := new(searchParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, searchResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, searchResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	searcher := c.(*middleware.AppContext).App.Searcher

	res, err := searcher.Search(ctx, params.Query)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, searchResponse{
			Message: "Internal server error",
		})
	}
	if res == nil {
		return c.JSON(http.StatusNotFound, searchResponse{
			Message: "Entity not found",
		})
	}

	return c.JSON(http.StatusOK, searchResponse{
		Message: "Entity found",
		Result: &searchResult{
			ID:         res.ID,
			Type:       res.Type,
			Name:       res.Name,
			Confidence: res.Confidence,
			Reasoning:  res.Reasoning,
		},
	})
}
