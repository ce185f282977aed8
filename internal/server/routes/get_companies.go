package routes

import (
	"net/http"

	"github.com/MamuzaD/cal-hacks/internal/server/middleware"
	"github.com/MamuzaD/cal-hacks/internal/storage"
	"github.com/MamuzaD/cal-hacks/pkg/entity"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// GetCompanyHandler returns one company with its aggregate holding
// summary across all politicians.
func GetCompanyHandler(c echo.Context) error {
	type companyParams struct {
		ID string `param:"id" validate:"required"`
	}

	type companyHolder struct {
		PersonID   string   `json:"person_id"`
		PersonName string   `json:"person_name"`
		Value      *float64 `json:"value"`
		Status     *string  `json:"status,omitempty"`
	}

	type companyDetail struct {
		ID                string          `json:"id"`
		Name              string          `json:"name"`
		Ticker            *string         `json:"ticker,omitempty"`
		TotalHoldingValue *float64        `json:"total_holding_value"`
		HolderCount       int64           `json:"holder_count"`
		Holders           []companyHolder `json:"holders"`
	}

	type companyResponse struct {
		Message string         `json:"message"`
		Company *companyDetail `json:"company,omitempty"`
	}

	params := new(companyParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, companyResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, companyResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	s := c.(*middleware.AppContext).App.Store

	company, err := s.GetCompany(ctx, params.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, companyResponse{
			Message: "Internal server error",
		})
	}
	if company == nil {
		return c.JSON(http.StatusNotFound, companyResponse{
			Message: "Entity not found",
		})
	}

	summary, err := s.GetCompanyHoldingSummary(ctx, company.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, companyResponse{
			Message: "Internal server error",
		})
	}

	holders, err := s.GetCompanyHolders(ctx, company.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, companyResponse{
			Message: "Internal server error",
		})
	}

	detail := companyDetail{
		ID:                company.ID,
		Name:              company.Name,
		Ticker:            company.Ticker,
		TotalHoldingValue: entity.Float(summary.TotalValue),
		HolderCount:       summary.Holders,
		Holders:           make([]companyHolder, 0, len(holders)),
	}
	for _, h := range holders {
		detail.Holders = append(detail.Holders, companyHolder{
			PersonID:   h.Person.ID,
			PersonName: h.Person.Name,
			Value:      entity.Float(h.Value),
			Status:     h.Status,
		})
	}

	return c.JSON(http.StatusOK, companyResponse{
		Message: "Company found",
		Company: &detail,
	})
}

// GetCompanyLogoHandler returns a time-limited download link for the
// company logo asset.
func GetCompanyLogoHandler(c echo.Context) error {
	type companyLogoParams struct {
		ID string `param:"id" validate:"required"`
	}

	type companyLogoResponse struct {
		Message string `json:"message"`
		URL     string `json:"url,omitempty"`
	}

	params := new(companyLogoParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, companyLogoResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, companyLogoResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	s := c.(*middleware.AppContext).App.Store
	s3Client := c.(*middleware.AppContext).App.S3

	company, err := s.GetCompany(ctx, params.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, companyLogoResponse{
			Message: "Internal server error",
		})
	}
	if company == nil {
		return c.JSON(http.StatusNotFound, companyLogoResponse{
			Message: "Entity not found",
		})
	}
	if company.LogoKey == nil || s3Client == nil {
		return c.JSON(http.StatusNotFound, companyLogoResponse{
			Message: "Logo not found",
		})
	}

	url, err := storage.GenerateDownloadLink(ctx, s3Client, *company.LogoKey)
	if err != nil {
		return c.JSON(http.StatusNotFound, companyLogoResponse{
			Message: "Logo not found",
		})
	}

	return c.JSON(http.StatusOK, companyLogoResponse{
		Message: "Logo link generated",
		URL:     url,
	})
}
