package routes

import (
	"net/http"

	"github.com/MamuzaD/cal-hacks/internal/server/middleware"
	"github.com/MamuzaD/cal-hacks/pkg/classify"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// GetClassifyHandler classifies a search term as person or company
// without resolving it against the database.
func GetClassifyHandler(c echo.Context) error {
	type classifyParams struct {
		Term string `query:"q" validate:"required"`
	}

	type classifyResponse struct {
		Message        string           `json:"message"`
		Classification *classify.Result `json:"classification,omitempty"`
		ModelBacked    bool             `json:"model_backed"`
	}

	params := new(classifyParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, classifyResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, classifyResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	classifier := c.(*middleware.AppContext).App.Classifier

	result := classifier.Classify(ctx, params.Term)

	return c.JSON(http.StatusOK, classifyResponse{
		Message:        "Term classified",
		Classification: &result,
		ModelBacked:    classifier.HasModel(),
	})
}
