package domain

import (
	"fmt"
	"strings"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultSort     = "title"
)

// sortColumns maps the public sort keys onto qualified column names.
var sortColumns = map[string]string{
	"id":           "m.movie_id",
	"title":        "m.title",
	"director":     "m.director",
	"release_date": "m.release_date",
	"rating":       "m.rating",
}

// SortValues lists every accepted Sort value, ascending key first.
func SortValues() []string {
	keys := []string{"title", "director", "release_date", "rating", "id"}
	values := make([]string, 0, len(keys)*2)

	for _, k := range keys {
		values = append(values, k, "-"+k)
	}

	return values
}

type MovieSearchCriteria struct {
	Title    string
	Director string
	Country  string
	Category string
	Sort     string
	PageSize int
}

func (c MovieSearchCriteria) SortColumn() string {
	if column, ok := sortColumns[strings.TrimPrefix(c.Sort, "-")]; ok {
		return column
	}

	return sortColumns[DefaultSort]
}

func (c MovieSearchCriteria) SortDirection() string {
	if strings.HasPrefix(c.Sort, "-") {
		return "DESC"
	}

	return "ASC"
}

// OrderBy returns the ORDER BY clause body. movie_id breaks ties so that
// pages never overlap or skip rows.
func (c MovieSearchCriteria) OrderBy() string {
	column := c.SortColumn()
	if column == sortColumns["id"] {
		return fmt.Sprintf("%s %s", column, c.SortDirection())
	}

	return fmt.Sprintf("%s %s, m.movie_id ASC", column, c.SortDirection())
}

func (c MovieSearchCriteria) Limit() int {
	return c.PageSize
}

func (c MovieSearchCriteria) Offset(pageIndex int) int {
	return (pageIndex - 1) * c.PageSize
}

// HasPage reports whether pageIndex falls within the pages of totalRecords.
// It compares page numbers rather than offsets, so huge indices cannot
// overflow into a negative offset.
func (c MovieSearchCriteria) HasPage(pageIndex, totalRecords int) bool {
	if pageIndex < 1 || c.PageSize <= 0 || totalRecords <= 0 {
		return false
	}

	lastPage := totalRecords / c.PageSize
	if totalRecords%c.PageSize != 0 {
		lastPage++
	}

	return pageIndex <= lastPage
}

// Normalize trims the free-text filters and fills in the default sort key
// and page size.
func (c MovieSearchCriteria) Normalize() MovieSearchCriteria {
	c.Title = strings.TrimSpace(c.Title)
	c.Director = strings.TrimSpace(c.Director)
	c.Country = strings.TrimSpace(c.Country)
	c.Category = strings.TrimSpace(c.Category)

	if _, ok := sortColumns[strings.TrimPrefix(c.Sort, "-")]; !ok {
		c.Sort = DefaultSort
	}

	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}

	return c
}
