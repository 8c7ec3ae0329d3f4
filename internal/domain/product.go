package domain

import "time"

// Product represents a single catalog entry tracked by the system.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	InStock     bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// ProductInput carries the client-supplied fields of a create or
// update request. Name and Price are mandatory on every mutation;
// the pointer fields are merged over the stored record when nil.
type ProductInput struct {
	Name        string
	Price       float64
	Description *string
	Category    *string
	InStock     *bool
}
