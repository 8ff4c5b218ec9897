package trip

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pashagolub/pgxmock/v3"
)

func asUser(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	}
}

func TestTripHandlersCreateAndUsage(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO trips`).
		WithArgs(pgxmock.AnyArg(), "user-1", "FR", "France", pgxmock.AnyArg(), pgxmock.AnyArg(), "").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	mock.ExpectQuery(`SELECT id, user_id, country_code, country_name, start_date, end_date, visa_duration, created_at`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows(tripColumns()).
			AddRow("trip-1", "user-1", "FR", "France", localDay(2024, 1, 1), endPtr(localDay(2024, 1, 10)), "", time.Now()))

	app := fiber.New()
	RegisterRoutes(app.Group("/trips"), NewService(mock), asUser("user-1"))

	body, _ := json.Marshal(tripRequest{
		Country:   "France",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-10",
	})
	req := httptest.NewRequest(http.MethodPost, "/trips/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status: %v %d", err, resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/trips/usage?date=2024-01-15", nil)
	resp, err = app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("usage status: %v %d", err, resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var usage Usage
	if err := json.Unmarshal(raw, &usage); err != nil {
		t.Fatalf("decode usage: %v", err)
	}
	if usage.DaysUsed != 10 || usage.DaysRemaining != 80 {
		t.Fatalf("unexpected usage %d/%d", usage.DaysUsed, usage.DaysRemaining)
	}
}

func TestTripHandlersValidation(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/trips"), NewService(nil), asUser("user-1"))

	// Missing country.
	req := httptest.NewRequest(http.MethodPost, "/trips/", bytes.NewReader([]byte(`{"start_date":"2024-01-01"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request for missing country, got %d", resp.StatusCode)
	}

	// Missing start date.
	req = httptest.NewRequest(http.MethodPost, "/trips/", bytes.NewReader([]byte(`{"country":"France"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request for missing start_date, got %d", resp.StatusCode)
	}

	// Garbage date.
	req = httptest.NewRequest(http.MethodPost, "/trips/", bytes.NewReader([]byte(`{"country":"France","start_date":"tomorrow"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request for malformed date, got %d", resp.StatusCode)
	}

	// Garbage usage date.
	req = httptest.NewRequest(http.MethodGet, "/trips/usage?date=someday", nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request for malformed usage date, got %d", resp.StatusCode)
	}
}

func TestTripHandlersOwnership(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	// Trip belongs to another user; both reads and deletes 404.
	for i := 0; i < 2; i++ {
		mock.ExpectQuery(`SELECT id, user_id, country_code, country_name, start_date, end_date, visa_duration, created_at`).
			WithArgs("trip-9").
			WillReturnRows(pgxmock.NewRows(tripColumns()).
				AddRow("trip-9", "someone-else", "FR", "France", localDay(2024, 1, 1), (*time.Time)(nil), "", time.Now()))
	}

	app := fiber.New()
	RegisterRoutes(app.Group("/trips"), NewService(mock), asUser("user-1"))

	req := httptest.NewRequest(http.MethodGet, "/trips/trip-9", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected not found on foreign trip read, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodDelete, "/trips/trip-9", nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected not found on foreign trip delete, got %d", resp.StatusCode)
	}
}
