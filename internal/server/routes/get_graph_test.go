package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/MamuzaD/cal-hacks/internal/server/middleware"
	"github.com/MamuzaD/cal-hacks/pkg/entity"
	"github.com/MamuzaD/cal-hacks/pkg/graph"
	"github.com/MamuzaD/cal-hacks/pkg/store"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i any) error {
	return v.validator.Struct(i)
}

type fakeStore struct {
	person   *entity.Person
	holdings []entity.PersonHolding
}

func (f *fakeStore) FindCompanyByTicker(ctx context.Context, ticker string) (*entity.Company, error) {
	return nil, nil
}

func (f *fakeStore) FindCompanyByName(ctx context.Context, q string) (*entity.Company, error) {
	return nil, nil
}

func (f *fakeStore) FindPersonByName(ctx context.Context, q string) (*entity.Person, error) {
	return nil, nil
}

func (f *fakeStore) GetPerson(ctx context.Context, id string) (*entity.Person, error) {
	if f.person != nil && f.person.ID == id {
		return f.person, nil
	}
	return nil, nil
}

func (f *fakeStore) GetCompany(ctx context.Context, id string) (*entity.Company, error) {
	return nil, nil
}

func (f *fakeStore) GetPersonHoldings(ctx context.Context, personID string) ([]entity.PersonHolding, error) {
	return f.holdings, nil
}

func (f *fakeStore) GetCompanyHolders(ctx context.Context, companyID string) ([]entity.CompanyHolder, error) {
	return nil, nil
}

func (f *fakeStore) GetCompanyHoldingSummary(ctx context.Context, companyID string) (store.HoldingSummary, error) {
	return store.HoldingSummary{}, nil
}

func graphRequest(t *testing.T, s *fakeStore, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	cc := &middleware.AppContext{
		Context: c,
		App:     &middleware.App{Graph: graph.NewAssembler(s)},
	}
	if err := GetGraphHandler(cc); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestGetGraphHandler_UnknownEntityReturns404(t *testing.T) {
	rec := graphRequest(t, &fakeStore{}, "/api/graph?id=missing&type=person")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown entity, got %d (%s)", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Entity or graph not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetGraphHandler_KnownEntityReturns200(t *testing.T) {
	s := &fakeStore{
		person: &entity.Person{ID: "p_jane", Name: "Jane Q. Public"},
		holdings: []entity.PersonHolding{
			{Holding: entity.Holding{ID: 1}, Company: entity.Company{ID: "c_apple", Name: "Apple Inc"}},
		},
	}
	rec := graphRequest(t, s, "/api/graph?id=p_jane&type=person")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"center_id":"p_jane"`) || !strings.Contains(body, `"c_apple"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestGetGraphHandler_InvalidTypeReturns400(t *testing.T) {
	rec := graphRequest(t, &fakeStore{}, "/api/graph?id=p_jane&type=committee")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid type, got %d (%s)", rec.Code, rec.Body.String())
	}
}
