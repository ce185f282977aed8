package routes

import (
	"net/http"

	"github.com/MamuzaD/cal-hacks/internal/server/middleware"
	"github.com/MamuzaD/cal-hacks/pkg/entity"
	"github.com/MamuzaD/cal-hacks/pkg/graph"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// GetGraphHandler returns the one-hop holding graph centered on an
// entity. An unknown entity yields 404, never an empty 200 graph.
func GetGraphHandler(c echo.Context) error {
	type graphParams struct {
		ID   string `query:"id" validate:"required"`
		Type string `query:"type" validate:"required,oneof=person company"`
	}

	type graphResponse struct {
		Message    string       `json:"message"`
		CenterID   string       `json:"center_id,omitempty"`
		CenterType entity.Type  `json:"center_type,omitempty"`
		Nodes      []graph.Node `json:"nodes"`
		Edges      []graph.Edge `json:"edges"`
	}

	params := new(graphParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, graphResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, graphResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	assembler := c.(*middleware.AppContext).App.Graph

	kind := entity.Type(params.Type)
	nodes, edges, err := assembler.Build(ctx, params.ID, kind)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, graphResponse{
			Message: "Internal server error",
		})
	}
	if len(nodes) == 0 {
		return c.JSON(http.StatusNotFound, graphResponse{
			Message: "Entity or graph not found",
		})
	}

	return c.JSON(http.StatusOK, graphResponse{
		Message:    "Graph assembled",
		CenterID:   params.ID,
		CenterType: kind,
		Nodes:      nodes,
		Edges:      edges,
	})
}
