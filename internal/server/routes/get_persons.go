package routes

import (
	"net/http"
	"time"

	"github.com/MamuzaD/cal-hacks/internal/server/middleware"
	"github.com/MamuzaD/cal-hacks/pkg/entity"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// GetPersonHandler returns one politician with all of their holdings,
// highest value first.
func GetPersonHandler(c echo.Context) error {
	type personParams struct {
		ID string `param:"id" validate:"required"`
	}

	type personHolding struct {
		CompanyID   string   `json:"company_id"`
		CompanyName string   `json:"company_name"`
		Ticker      *string  `json:"ticker,omitempty"`
		Value       *float64 `json:"value"`
		Status      *string  `json:"status,omitempty"`
	}

	type personDetail struct {
		ID                string          `json:"id"`
		Name              string          `json:"name"`
		Position          *string         `json:"position,omitempty"`
		State             *string         `json:"state,omitempty"`
		PartyAffiliation  *string         `json:"party_affiliation,omitempty"`
		EstimatedNetWorth *float64        `json:"estimated_net_worth,omitempty"`
		LastTradeDate     *time.Time      `json:"last_trade_date,omitempty"`
		TenureStart       *time.Time      `json:"tenure_start,omitempty"`
		Holdings          []personHolding `json:"holdings"`
	}

	type personResponse struct {
		Message string        `json:"message"`
		Person  *personDetail `json:"person,omitempty"`
	}

	params := new(personParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, personResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, personResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	s := c.(*middleware.AppContext).App.Store

	person, err := s.GetPerson(ctx, params.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, personResponse{
			Message: "Internal server error",
		})
	}
	if person == nil {
		return c.JSON(http.StatusNotFound, personResponse{
			Message: "Entity not found",
		})
	}

	holdings, err := s.GetPersonHoldings(ctx, person.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, personResponse{
			Message: "Internal server error",
		})
	}

	detail := personDetail{
		ID:                person.ID,
		Name:              person.Name,
		Position:          person.Position,
		State:             person.State,
		PartyAffiliation:  person.PartyAffiliation,
		EstimatedNetWorth: entity.Float(person.EstimatedNetWorth),
		LastTradeDate:     person.LastTradeDate,
		TenureStart:       person.TenureStart,
		Holdings:          make([]personHolding, 0, len(holdings)),
	}
	for _, h := range holdings {
		detail.Holdings = append(detail.Holdings, personHolding{
			CompanyID:   h.Company.ID,
			CompanyName: h.Company.Name,
			Ticker:      h.Company.Ticker,
			Value:       entity.Float(h.Value),
			Status:      h.Status,
		})
	}

	return c.JSON(http.StatusOK, personResponse{
		Message: "Person found",
		Person:  &detail,
	})
}
