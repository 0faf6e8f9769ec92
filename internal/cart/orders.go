package cart

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const ordersKey = "orders"

// Delivery method names recorded on placed orders.
const (
	MethodDelivery = "Delivery"
	MethodPickup   = "Pickup"
)

// Order statuses in the client-side order log. Orders start pending and can
// only be cancelled while still pending.
const (
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

var deliveryFee = decimal.NewFromInt(5)

// ErrEmptyCart is returned when placing an order from an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// PlacedOrder is one entry in the client-side order log.
type PlacedOrder struct {
	ID       int64           `json:"id"`
	Items    []*LineItem     `json:"items"`
	Method   string          `json:"method"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Fee      decimal.Decimal `json:"fee"`
	Total    decimal.Decimal `json:"total"`
	Status   string          `json:"status"`
	PlacedAt time.Time       `json:"placedAt"`
}

// OrderLog manages placed orders persisted alongside the cart.
type OrderLog struct {
	store KeyValueStore
}

// NewOrderLog creates an OrderLog over the given store.
func NewOrderLog(store KeyValueStore) *OrderLog {
	return &OrderLog{store: store}
}

func (l *OrderLog) load() ([]*PlacedOrder, error) {
	raw, ok := l.store.Get(ordersKey)
	if !ok {
		return nil, nil
	}

	var orders []*PlacedOrder
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, errors.Wrap(err, "failed to decode order log")
	}

	return orders, nil
}

func (l *OrderLog) save(orders []*PlacedOrder) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return errors.Wrap(err, "failed to encode order log")
	}

	return l.store.Set(ordersKey, raw)
}

// Place drains the cart into a new pending order. Delivery orders pay a flat
// fee on top of the cart subtotal. Returns ErrEmptyCart when there is nothing
// to order.
func (l *OrderLog) Place(c *Cart, method string) (*PlacedOrder, error) {
	items, err := c.Items()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	fee := decimal.Zero
	if method == MethodDelivery {
		fee = deliveryFee
	}

	orders, err := l.load()
	if err != nil {
		return nil, err
	}

	order := &PlacedOrder{
		ID:       int64(len(orders) + 1),
		Items:    items,
		Method:   method,
		Subtotal: subtotal,
		Fee:      fee,
		Total:    subtotal.Add(fee).Round(2),
		Status:   StatusPending,
		PlacedAt: time.Now().UTC(),
	}
	orders = append(orders, order)

	if err := l.save(orders); err != nil {
		return nil, err
	}
	if err := c.Clear(); err != nil {
		return nil, err
	}

	return order, nil
}

// List returns the placed orders in placement order.
func (l *OrderLog) List() ([]*PlacedOrder, error) {
	return l.load()
}

// Cancel marks a pending order cancelled. Non-pending orders are left
// untouched and reported with ok=false, as is a missing ID.
func (l *OrderLog) Cancel(orderID int64) (bool, error) {
	orders, err := l.load()
	if err != nil {
		return false, err
	}

	for _, order := range orders {
		if order.ID != orderID {
			continue
		}
		if order.Status != StatusPending {
			return false, nil
		}
		order.Status = StatusCancelled

		return true, l.save(orders)
	}

	return false, nil
}
