// services/order_transitions.go
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Renison-Gohel/food-orderly/entity"
	"github.com/Renison-Gohel/food-orderly/pkg/events"
)

// SetStatus advances an order to target, which must be the immediate
// successor of its current status (pending -> ready -> paid, no regression,
// no skipping). The update is guarded on the predecessor status so two
// sessions racing on the same order cannot both win.
func (s *OrderService) SetStatus(ctx context.Context, orderID string, target entity.OrderStatus) (*entity.Order, error) {
	if !target.Valid() {
		return nil, validationf("unknown status %q", target)
	}

	o, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	next, ok := o.Status.Next()
	if !ok || next != target {
		return nil, &InvalidTransitionError{From: o.Status, To: target}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, target)
		if err != nil {
			return err
		}
		if affected == 0 {
			// Someone moved the order between our read and the update.
			return &InvalidTransitionError{From: o.Status, To: target}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.GetOrder(o.ID)
	if err != nil {
		return nil, err
	}
	s.afterWrite(ctx, events.OrderStatusChanged, updated)
	return updated, nil
}

// DeleteOrder removes the order and its line items in any status. Hard
// delete, irreversible.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID string) error {
	o, err := s.Get(orderID)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.DeleteOrder(tx, orderID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.afterWrite(ctx, events.OrderDeleted, o)
	return nil
}
