package product

import "errors"

var (
	ErrValidation      = errors.New("missing or invalid product fields")
	ErrProductNotFound = errors.New("product not found")
	ErrNothingToUpdate = errors.New("no fields to update")
)
