package cart

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const cartKey = "cart"

// Math constants for the checkout totals. Carts under the free-shipping
// threshold pay a flat shipping fee, and tax applies to goods plus shipping.
var (
	freeShippingThreshold = decimal.NewFromInt(25)
	shippingFee           = decimal.NewFromInt(5)
	taxRate               = decimal.NewFromFloat(0.08)
)

// LineItem is one product entry in the cart. UnitPrice is captured at add
// time so later catalog price changes do not silently reprice the cart.
type LineItem struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

// Totals is the checkout summary for the current cart contents.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Cart manages a set of line items persisted in a KeyValueStore. Items are
// keyed by product ID so adding an existing product increments its quantity.
type Cart struct {
	store KeyValueStore
}

// New creates a Cart over the given store.
func New(store KeyValueStore) *Cart {
	return &Cart{store: store}
}

func (c *Cart) load() (map[string]*LineItem, error) {
	raw, ok := c.store.Get(cartKey)
	if !ok {
		return make(map[string]*LineItem), nil
	}

	items := make(map[string]*LineItem)
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrap(err, "failed to decode cart")
	}

	return items, nil
}

func (c *Cart) save(items map[string]*LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "failed to encode cart")
	}

	return c.store.Set(cartKey, raw)
}

// Add puts one unit of the product into the cart, incrementing the quantity
// if the product is already present.
func (c *Cart) Add(productID int64, name string, unitPrice decimal.Decimal) error {
	items, err := c.load()
	if err != nil {
		return err
	}

	key := strconv.FormatInt(productID, 10)
	if existing, ok := items[key]; ok {
		existing.Quantity++
	} else {
		items[key] = &LineItem{
			ProductID: productID,
			Name:      name,
			UnitPrice: unitPrice,
			Quantity:  1,
		}
	}

	return c.save(items)
}

// UpdateQuantity sets the quantity for a product. A quantity of zero or less
// removes the line item. Updating an absent product is a no-op.
func (c *Cart) UpdateQuantity(productID int64, quantity int) error {
	items, err := c.load()
	if err != nil {
		return err
	}

	key := strconv.FormatInt(productID, 10)
	item, ok := items[key]
	if !ok {
		return nil
	}

	if quantity <= 0 {
		delete(items, key)
	} else {
		item.Quantity = quantity
	}

	return c.save(items)
}

// Remove deletes a product's line item from the cart.
func (c *Cart) Remove(productID int64) error {
	items, err := c.load()
	if err != nil {
		return err
	}

	delete(items, strconv.FormatInt(productID, 10))

	return c.save(items)
}

// Items returns the cart contents ordered by product ID.
func (c *Cart) Items() ([]*LineItem, error) {
	items, err := c.load()
	if err != nil {
		return nil, err
	}

	list := make([]*LineItem, 0, len(items))
	for _, item := range items {
		list = append(list, item)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ProductID < list[j].ProductID
	})

	return list, nil
}

// Clear empties the cart.
func (c *Cart) Clear() error {
	return c.store.Delete(cartKey)
}

// Totals computes the checkout summary. Shipping is a flat fee for non-empty
// carts under the free-shipping threshold. Tax applies to subtotal plus
// shipping, and tax and total are rounded to cents.
func (c *Cart) Totals() (*Totals, error) {
	items, err := c.load()
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	shipping := decimal.Zero
	if subtotal.IsPositive() && subtotal.LessThan(freeShippingThreshold) {
		shipping = shippingFee
	}

	tax := subtotal.Add(shipping).Mul(taxRate).Round(2)
	total := subtotal.Add(shipping).Add(tax).Round(2)

	return &Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    total,
	}, nil
}
