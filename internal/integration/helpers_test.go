package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/metinatakli/movie-finder/internal/repository"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func truncateCatalogue(t testing.TB, app *TestApp) {
	t.Helper()

	_, err := app.DB.Exec(context.Background(),
		"TRUNCATE movie_category, movie, category, country RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	flushCache(t, app)
}

// resetCatalogue replaces whatever the database holds with the sample
// catalogue the service ships with.
func resetCatalogue(t testing.TB, app *TestApp) {
	t.Helper()

	truncateCatalogue(t, app)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, repository.Seed(context.Background(), app.DB, logger))
}

func loadFixture(t testing.TB, app *TestApp, path string) {
	t.Helper()

	truncateCatalogue(t, app)
	executeSQLFile(t, app, path)
}

func executeSQLFile(t testing.TB, app *TestApp, path string) {
	t.Helper()

	sql, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = app.DB.Exec(context.Background(), string(sql))
	require.NoError(t, err)
}

func flushCache(t testing.TB, app *TestApp) {
	t.Helper()

	require.NoError(t, app.Redis.FlushDB(context.Background()).Err())
}
