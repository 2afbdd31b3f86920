package usecase

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultPageSize is used when a service is configured without a page size.
const DefaultPageSize = 10

// ListInput selects the ordering and page of a list use case.
// OrderBy names a field; a leading "-" sorts descending. Pages start at 1.
type ListInput struct {
	OrderBy     string
	CurrentPage int
}

// ListOutputMeta describes the returned page.
type ListOutputMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// ListOutput is one page of a sorted listing.
type ListOutput[T any] struct {
	Data []T            `json:"data"`
	Meta ListOutputMeta `json:"meta"`
}

// Config holds configuration shared by the catalog services.
type Config struct {
	PageSize int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{PageSize: DefaultPageSize}
}

func (c Config) pageSize() int {
	if c.PageSize <= 0 {
		return DefaultPageSize
	}
	return c.PageSize
}

type orderings[T any] map[string]func(a, b T) int

// paginate sorts items by the requested field and slices out the requested page.
func paginate[T any](items []T, by orderings[T], defaultOrder string, input ListInput, perPage int) (*ListOutput[T], error) {
	orderBy := input.OrderBy
	if orderBy == "" {
		orderBy = defaultOrder
	}
	desc := strings.HasPrefix(orderBy, "-")
	field := strings.TrimPrefix(orderBy, "-")

	cmp, ok := by[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrderBy, field)
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		if desc {
			return cmp(b, a)
		}
		return cmp(a, b)
	})

	page := input.CurrentPage
	if page < 1 {
		page = 1
	}
	start := min((page-1)*perPage, len(sorted))
	end := min(start+perPage, len(sorted))

	data := sorted[start:end]
	if data == nil {
		data = []T{}
	}

	return &ListOutput[T]{
		Data: data,
		Meta: ListOutputMeta{
			CurrentPage: page,
			PerPage:     perPage,
			Total:       len(sorted),
		},
	}, nil
}
