package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/movie-finder/api"
	"github.com/metinatakli/movie-finder/internal/domain"
	"github.com/metinatakli/movie-finder/internal/mocks"
	"github.com/metinatakli/movie-finder/internal/validator"
	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config:       Config{Env: "test", PageSize: domain.DefaultPageSize},
		validator:    validator.NewValidator(),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		finder:       &mocks.MockMovieFinder{},
		countryRepo:  &mocks.MockCountryRepo{},
		categoryRepo: &mocks.MockCategoryRepo{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(method, url, bytes.NewReader(jsonData))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var (
	romantic = domain.CategoryRef{ID: 1, Name: "Romantic"}
	comedy   = domain.CategoryRef{ID: 2, Name: "Comedy"}
	korea    = domain.CountryRef{Code: "KR", Name: "Korea"}
)

func sassyGirl() *domain.Movie {
	return &domain.Movie{
		ID:          1,
		Title:       "My Sassy Girl",
		Director:    "Jaeyong Gwak",
		ReleaseDate: date(2001, time.July, 27),
		Rating:      decimal.RequireFromString("8.0"),
		Country:     korea,
		Categories:  []domain.CategoryRef{comedy, romantic},
	}
}

func littleBride() *domain.Movie {
	return &domain.Movie{
		ID:          2,
		Title:       "My Little Bride",
		Director:    "Hojun Kim",
		ReleaseDate: date(2004, time.April, 2),
		Rating:      decimal.RequireFromString("6.9"),
		Country:     korea,
		Categories:  []domain.CategoryRef{comedy, romantic},
	}
}

func sassyGirlSummary() api.MovieSummary {
	return api.MovieSummary{
		Id:          1,
		Title:       "My Sassy Girl",
		Director:    "Jaeyong Gwak",
		ReleaseDate: types.Date{Time: date(2001, time.July, 27)},
		Rating:      8,
		Country:     api.Country{Code: "KR", Name: "Korea"},
		Categories:  []string{"Comedy", "Romantic"},
	}
}
