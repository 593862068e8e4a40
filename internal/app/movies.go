package app

import (
	"net/http"

	"github.com/metinatakli/movie-finder/api"
	"github.com/metinatakli/movie-finder/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

const DefaultPage = 1

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request, params api.GetMoviesParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	criteria, pageIndex := toSearchCriteria(params)

	page, err := app.finder.GetPagingList(r.Context(), criteria, pageIndex)
	if err != nil {
		app.lookupErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   toMovieSummaries(page.Items),
		Metadata: toApiMetadata(page.Metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieById(w http.ResponseWriter, r *http.Request, movieId int) {
	movie, err := app.finder.GetMovie(r.Context(), movieId)
	if err != nil {
		app.lookupErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieDetail(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// toSearchCriteria leaves PageSize at zero when the client did not ask for
// one so the finder applies its configured size.
func toSearchCriteria(params api.GetMoviesParams) (domain.MovieSearchCriteria, int) {
	criteria := domain.MovieSearchCriteria{
		Title:    deref(params.Title),
		Director: deref(params.Director),
		Country:  deref(params.Country),
		Category: deref(params.Category),
		Sort:     domain.DefaultSort,
		PageSize: deref(params.PageSize),
	}

	if params.Sort != nil {
		criteria.Sort = *params.Sort
	}

	pageIndex := DefaultPage
	if params.Page != nil {
		pageIndex = *params.Page
	}

	return criteria, pageIndex
}

func toMovieSummaries(movies []*domain.Movie) []api.MovieSummary {
	summaries := make([]api.MovieSummary, len(movies))

	for i, movie := range movies {
		summaries[i] = toMovieSummary(movie)
	}

	return summaries
}

func toMovieSummary(movie *domain.Movie) api.MovieSummary {
	if movie == nil {
		return api.MovieSummary{}
	}

	return api.MovieSummary{
		Id:          movie.ID,
		Title:       movie.Title,
		Director:    movie.Director,
		ReleaseDate: types.Date{Time: movie.ReleaseDate},
		Rating:      movie.Rating.InexactFloat64(),
		Country:     toApiCountry(movie.Country),
		Categories:  movie.CategoryNames(),
	}
}

func toMovieDetail(movie *domain.Movie) api.MovieDetailResponse {
	categories := make([]api.Category, len(movie.Categories))
	for i, c := range movie.Categories {
		categories[i] = api.Category{Id: c.ID, Name: c.Name}
	}

	return api.MovieDetailResponse{
		Id:          movie.ID,
		Title:       movie.Title,
		Director:    movie.Director,
		ReleaseDate: types.Date{Time: movie.ReleaseDate},
		Rating:      movie.Rating.InexactFloat64(),
		Country:     toApiCountry(movie.Country),
		Categories:  categories,
	}
}

func toApiCountry(country domain.CountryRef) api.Country {
	return api.Country{
		Code: country.Code,
		Name: country.Name,
	}
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
