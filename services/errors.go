package services

import (
	"errors"
	"fmt"

	"github.com/Renison-Gohel/food-orderly/entity"
)

// ErrNotFound is returned for stale references (e.g. deleting an order that
// is already gone) so handlers can respond with 404.
var ErrNotFound = errors.New("record not found")

// ErrLineItemIndex is returned when a draft line-item index is out of bounds.
var ErrLineItemIndex = errors.New("line item index out of range")

// ValidationError means the input was rejected before any state change.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// InvalidTransitionError means a status change that is not the immediate
// successor of the order's current status.
type InvalidTransitionError struct {
	From entity.OrderStatus
	To   entity.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}
