package service

import (
	"strings"

	"product-api/internal/domain"
)

// ListQuery captures the filter, search, and pagination parameters of
// a catalog listing. Nil pointer fields mean "no constraint".
type ListQuery struct {
	Search   string
	MinPrice *float64
	MaxPrice *float64
	Category string
	InStock  *bool
	Page     int
	Limit    int
}

// ProductPage is one page of filtered catalog results. Count is the
// size of Data; Total counts every record that matched the filters.
type ProductPage struct {
	Count int
	Total int
	Page  int
	Pages int
	Data  []domain.Product
}

// resolveQuery applies the filters in q to products, then paginates.
// A Page below 1 is treated as 1. A Limit of zero or less yields an
// empty page with Pages set to 0 rather than dividing by zero.
func resolveQuery(products []domain.Product, q ListQuery) *ProductPage {
	results := products

	if q.Search != "" {
		term := strings.ToLower(q.Search)
		results = filter(results, func(p domain.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Description), term)
		})
	}
	if q.MinPrice != nil {
		results = filter(results, func(p domain.Product) bool { return p.Price >= *q.MinPrice })
	}
	if q.MaxPrice != nil {
		results = filter(results, func(p domain.Product) bool { return p.Price <= *q.MaxPrice })
	}
	if q.Category != "" {
		results = filter(results, func(p domain.Product) bool { return p.Category == q.Category })
	}
	if q.InStock != nil {
		results = filter(results, func(p domain.Product) bool { return p.InStock == *q.InStock })
	}

	total := len(results)
	page := q.Page
	if page < 1 {
		page = 1
	}

	if q.Limit <= 0 {
		return &ProductPage{Total: total, Page: page, Data: []domain.Product{}}
	}

	start := (page - 1) * q.Limit
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}

	data := make([]domain.Product, end-start)
	copy(data, results[start:end])

	return &ProductPage{
		Count: len(data),
		Total: total,
		Page:  page,
		Pages: (total + q.Limit - 1) / q.Limit,
		Data:  data,
	}
}

func filter(products []domain.Product, keep func(domain.Product) bool) []domain.Product {
	out := products[:0:0]
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
