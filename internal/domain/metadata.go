package domain

type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

func NewMetadata(totalRecords, page, pageSize int) *Metadata {
	return &Metadata{
		CurrentPage:  page,
		FirstPage:    1,
		LastPage:     (totalRecords + pageSize - 1) / pageSize,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
	}
}

// Page is one bounded, ordered slice of a larger result set.
type Page[T any] struct {
	Items    []T
	Metadata *Metadata
}

func NewPage[T any](items []T, totalRecords, page, pageSize int) *Page[T] {
	if items == nil {
		items = []T{}
	}

	return &Page[T]{
		Items:    items,
		Metadata: NewMetadata(totalRecords, page, pageSize),
	}
}
