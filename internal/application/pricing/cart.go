package pricing

import (
	"github.com/google/uuid"

	"github.com/tindahan/poscore/internal/domain/entity"
	"github.com/tindahan/poscore/pkg/apperror"
)

// Cart is the in-progress order being assembled at the register. It is a
// value: every transition returns a new Cart and never mutates its receiver,
// so derived totals can always be recomputed from current state.
type Cart struct {
	items []entity.LineItem
}

// NewCart returns an empty cart.
func NewCart() Cart {
	return Cart{}
}

func (c Cart) clone() Cart {
	items := make([]entity.LineItem, len(c.items))
	copy(items, c.items)
	return Cart{items: items}
}

// Items returns a copy of the cart's line items in entry order.
func (c Cart) Items() []entity.LineItem {
	items := make([]entity.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of line items.
func (c Cart) Len() int {
	return len(c.items)
}

// Order snapshots the cart as an order for pricing.
func (c Cart) Order() entity.Order {
	return entity.Order{Items: c.Items()}
}

// Totals recomputes the cart's totals from its current state.
func (c Cart) Totals(engine *Engine) (Totals, error) {
	order := c.Order()
	return engine.OrderTotals(&order)
}

// AddLineItem adds quantity units of a product. A product already in the
// cart has its line quantity incremented instead of gaining a second line.
func (c Cart) AddLineItem(product *entity.Product, quantity int) (Cart, error) {
	if product == nil {
		return c, apperror.NewDataIntegrityError("cannot add a line item without a product")
	}
	if quantity <= 0 {
		return c, apperror.NewFieldError("quantity", "must be greater than zero")
	}

	next := c.clone()
	for i := range next.items {
		if next.items[i].Product != nil && next.items[i].Product.ID == product.ID {
			next.items[i].Quantity += quantity
			return next, nil
		}
	}
	next.items = append(next.items, entity.LineItem{
		ID:       uuid.New(),
		Product:  product,
		Quantity: quantity,
	})
	return next, nil
}

// UpdateLineItem replaces the quantity of an existing line.
func (c Cart) UpdateLineItem(id uuid.UUID, quantity int) (Cart, error) {
	if quantity <= 0 {
		return c, apperror.NewFieldError("quantity", "must be greater than zero")
	}
	next := c.clone()
	for i := range next.items {
		if next.items[i].ID == id {
			next.items[i].Quantity = quantity
			return next, nil
		}
	}
	return c, apperror.NewDataIntegrityError("line item %s is not in the cart", id)
}

// RemoveLineItem deletes a line from the cart.
func (c Cart) RemoveLineItem(id uuid.UUID) (Cart, error) {
	for i := range c.items {
		if c.items[i].ID == id {
			next := c.clone()
			next.items = append(next.items[:i], next.items[i+1:]...)
			return next, nil
		}
	}
	return c, apperror.NewDataIntegrityError("line item %s is not in the cart", id)
}

// ApplyDiscount attaches a discount to an existing line, replacing any
// discount already applied.
func (c Cart) ApplyDiscount(id uuid.UUID, discount entity.Discount) (Cart, error) {
	if err := discount.Validate(); err != nil {
		return c, err
	}
	next := c.clone()
	for i := range next.items {
		if next.items[i].ID == id {
			d := discount
			next.items[i].Discount = &d
			return next, nil
		}
	}
	return c, apperror.NewDataIntegrityError("line item %s is not in the cart", id)
}

// RemoveDiscount clears the discount of an existing line.
func (c Cart) RemoveDiscount(id uuid.UUID) (Cart, error) {
	next := c.clone()
	for i := range next.items {
		if next.items[i].ID == id {
			next.items[i].Discount = nil
			return next, nil
		}
	}
	return c, apperror.NewDataIntegrityError("line item %s is not in the cart", id)
}

// Clear empties the cart.
func (c Cart) Clear() Cart {
	return Cart{}
}
