package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movie-finder/api"
	"github.com/metinatakli/movie-finder/internal/domain"
	appmiddleware "github.com/metinatakli/movie-finder/internal/middleware"
	appvalidator "github.com/metinatakli/movie-finder/internal/validator"
)

const (
	ErrInternalServer     = appmiddleware.ErrInternalServer
	ErrNotFound           = appmiddleware.ErrNotFound
	ErrServiceUnavailable = "The catalogue is temporarily unavailable, please try again later"
	ErrFailedValidation   = "One or more fields have invalid values"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusServiceUnavailable, ErrServiceUnavailable)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var (
		fieldErrors validator.ValidationErrors
		issues      []api.ValidationError
	)

	switch {
	case errors.As(err, &fieldErrors):
		issues = make([]api.ValidationError, len(fieldErrors))
		for i, fe := range fieldErrors {
			issues[i] = api.ValidationError{
				Field: fe.Field(),
				Issue: appvalidator.ValidationMessage(fe),
			}
		}
	case errors.Is(err, domain.ErrInvalidPageIndex):
		issues = []api.ValidationError{{Field: "Page", Issue: err.Error()}}
	case errors.Is(err, domain.ErrInvalidPageSize):
		issues = []api.ValidationError{{Field: "PageSize", Issue: err.Error()}}
	default:
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Message:          ErrFailedValidation,
		ValidationErrors: issues,
	}

	err = app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// lookupErrorResponse maps an error returned by the finder or a DAO to the
// matching HTTP status.
func (app *Application) lookupErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var dataErr *domain.DataAccessError

	switch {
	case domain.IsValidationError(err):
		app.failedValidationResponse(w, r, err)
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	case errors.As(err, &dataErr) && dataErr.Unavailable():
		app.serviceUnavailableResponse(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}
