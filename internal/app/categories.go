package app

import (
	"net/http"

	"github.com/metinatakli/movie-finder/api"
	"github.com/metinatakli/movie-finder/internal/domain"
)

func (app *Application) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := app.categoryRepo.GetAll(r.Context())
	if err != nil {
		app.lookupErrorResponse(w, r, err)
		return
	}

	resp := api.CategoryListResponse{
		Categories: toCategoriesWithMovies(categories),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toCategoriesWithMovies(categories []*domain.Category) []api.CategoryWithMovies {
	result := make([]api.CategoryWithMovies, len(categories))

	for i, category := range categories {
		result[i] = api.CategoryWithMovies{
			Id:     category.ID,
			Name:   category.Name,
			Movies: toMovieSummaries(category.Movies),
		}
	}

	return result
}
