package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrEmptyPlan        = errors.New("meal plan has no entries")
	ErrAlreadyPlanned   = errors.New("entry already planned")
	ErrNoRecipeSelected = errors.New("no recipe selected")
	ErrNoList           = errors.New("no grocery list generated yet")
)
