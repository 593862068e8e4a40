package app

import (
	"net/http"

	"github.com/metinatakli/movie-finder/api"
	"github.com/metinatakli/movie-finder/internal/domain"
)

func (app *Application) GetCountries(w http.ResponseWriter, r *http.Request, params api.GetCountriesParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	countries, err := app.countryRepo.GetAll(r.Context(), deref(params.Name))
	if err != nil {
		app.lookupErrorResponse(w, r, err)
		return
	}

	resp := api.CountryListResponse{
		Countries: toCountriesWithMovies(countries),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toCountriesWithMovies(countries []*domain.Country) []api.CountryWithMovies {
	result := make([]api.CountryWithMovies, len(countries))

	for i, country := range countries {
		result[i] = api.CountryWithMovies{
			Code:   country.Code,
			Name:   country.Name,
			Movies: toMovieSummaries(country.Movies),
		}
	}

	return result
}
