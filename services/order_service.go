package services

import (
	"context"
	"errors"
	"log"
	"strconv"

	"gorm.io/gorm"

	"github.com/Renison-Gohel/food-orderly/entity"
	"github.com/Renison-Gohel/food-orderly/pkg/cache"
	"github.com/Renison-Gohel/food-orderly/pkg/events"
	"github.com/Renison-Gohel/food-orderly/repository"
)

// OrderNotifier pushes order lifecycle events to connected dashboards.
// Implemented by the websocket hub.
type OrderNotifier interface {
	NotifyOrder(event string, order *entity.Order)
}

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	MenuRepo     *repository.MenuRepository
	CustomerRepo *repository.CustomerRepository

	Cache    *cache.OrderCache
	Events   *events.Publisher
	Notifier OrderNotifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	customerRepo *repository.CustomerRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, CustomerRepo: customerRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId"`
	Quantity   int  `json:"quantity"`
}

type CreateOrderReq struct {
	CustomerID uint          `json:"customerId"`
	OutletID   *uint         `json:"outletId"`
	Items      []OrderItemIn `json:"items"`
}

// BuildDraft resolves the requested items against the catalog, snapshotting
// each unit price.
func (s *OrderService) BuildDraft(customerID uint, items []OrderItemIn) (*OrderDraft, error) {
	draft := &OrderDraft{CustomerID: customerID}
	for _, it := range items {
		menu, err := s.MenuRepo.FindByID(it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, validationf("menu item %d not found", it.MenuItemID)
			}
			return nil, err
		}
		if err := draft.AddItem(menu, it.Quantity); err != nil {
			return nil, err
		}
	}
	return draft, nil
}

// CommitDraft persists the draft as a pending order plus its line items in a
// single transaction, so a failed item write never leaves an empty order
// behind. The draft is reset only on success, letting the caller retry after
// a backend failure.
func (s *OrderService) CommitDraft(ctx context.Context, draft *OrderDraft, outletID *uint) (*entity.Order, error) {
	if draft.CustomerID == 0 {
		return nil, validationf("customer is required")
	}
	if len(draft.Items) == 0 {
		return nil, validationf("order needs at least one item")
	}
	ok, err := s.CustomerRepo.Exists(draft.CustomerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, validationf("customer %d not found", draft.CustomerID)
	}

	order := entity.Order{
		CustomerID:  draft.CustomerID,
		OutletID:    outletID,
		Status:      entity.StatusPending,
		TotalAmount: draft.Total(),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, it := range draft.Items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitPrice,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	draft.Reset()

	created, err := s.Repo.GetOrder(order.ID)
	if err != nil {
		return nil, err
	}
	s.afterWrite(ctx, events.OrderCreated, created)
	return created, nil
}

// List returns orders newest first, read through the cache when one is
// configured.
func (s *OrderService) List(ctx context.Context, outletID *uint) ([]entity.Order, error) {
	params := "all"
	if outletID != nil && *outletID != 0 {
		params = "outlet:" + strconv.FormatUint(uint64(*outletID), 10)
	}
	if orders, ok := s.Cache.GetList(ctx, params); ok {
		return orders, nil
	}
	orders, err := s.Repo.ListOrders(outletID)
	if err != nil {
		return nil, err
	}
	s.Cache.SetList(ctx, params, orders)
	return orders, nil
}

func (s *OrderService) Get(orderID string) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// afterWrite invalidates cached lists and fans the event out. Event delivery
// is best-effort; the write already committed.
func (s *OrderService) afterWrite(ctx context.Context, event string, order *entity.Order) {
	s.Cache.Invalidate(ctx)
	if s.Events != nil {
		ev := events.OrderEvent{
			Event:       event,
			OrderID:     order.ID,
			Status:      string(order.Status),
			TotalAmount: order.TotalAmount,
			OutletID:    order.OutletID,
		}
		if err := s.Events.Publish(ctx, ev); err != nil {
			log.Printf("publish %s for order %s: %v", event, order.ShortID(), err)
		}
	}
	if s.Notifier != nil {
		s.Notifier.NotifyOrder(event, order)
	}
}
