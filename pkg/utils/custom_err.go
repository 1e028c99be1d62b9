package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrDatabaseError       = errors.New("database error")
	ErrGenerationFailed    = errors.New("meal generation failed")
	ErrPlanNotFound        = errors.New("meal plan not found")
	ErrMealNotFound        = errors.New("meal not found")
	ErrGroceryItemNotFound = errors.New("grocery item not found")
	ErrProfileNotFound     = errors.New("dietary profile not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
