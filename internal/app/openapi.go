package app

import (
	"net/http"
	"sync"

	"github.com/metinatakli/movie-finder/api"
)

var loadSwagger = sync.OnceValues(api.GetSwagger)

// GetOpenAPI serves the API contract the router was generated from.
func (app *Application) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	swagger, err := loadSwagger()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, swagger, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
