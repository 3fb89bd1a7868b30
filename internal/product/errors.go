package product

import "errors"

// ErrCategoryNotFound is returned when a category has no dataset
// partition.
var ErrCategoryNotFound = errors.New("category not found")
