package domain

import "context"

type Category struct {
	ID     int
	Name   string
	Movies []*Movie
}

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]*Category, error)
}
