package domain

import "context"

type Country struct {
	Code   string
	Name   string
	Movies []*Movie
}

type CountryRepository interface {
	GetAll(ctx context.Context, namePattern string) ([]*Country, error)
}
