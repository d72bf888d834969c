package services

import (
	"errors"
	"fmt"

	"github.com/cyborg-s/coderr-backend/entity"
	"gorm.io/gorm"
)

// Allowed status transitions. Completed and cancelled are terminal.
var orderTransitions = map[entity.OrderStatus]entity.OrderStatus{
	entity.OrderCompleted: entity.OrderInProgress,
	entity.OrderCancelled: entity.OrderInProgress,
}

// UpdateStatus moves an order to the requested status. Only the business
// side of the order may transition it, and only out of in_progress.
func (s *OrderService) UpdateStatus(userID, orderID uint, to entity.OrderStatus) (*entity.Order, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("invalid status %q: %w", to, ErrInvalid)
	}
	from, ok := orderTransitions[to]
	if !ok {
		return nil, fmt.Errorf("cannot transition to %q: %w", to, ErrInvalid)
	}

	o, err := s.Repo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if o.BusinessUserID != userID {
		return nil, ErrForbidden
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("order is not %s: %w", from, ErrInvalid)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.Status = to
	return o, nil
}
