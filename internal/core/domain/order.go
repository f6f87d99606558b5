package domain

import "time"

// OrderStatus tracks a customer order through fulfilment.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderProcessed OrderStatus = "processed"
	OrderShipped   OrderStatus = "shipped"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItem is one product line of an order or a restock.
type OrderItem struct {
	ProductID string  `yaml:"product_id"`
	Quantity  int     `yaml:"quantity"`
	UnitPrice float64 `yaml:"unit_price"`
}

// Total is quantity times unit price.
func (i OrderItem) Total() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// CustomerOrder represents an order placed by a customer.
type CustomerOrder struct {
	ID         string
	CustomerID string
	OrderDate  time.Time
	Products   []OrderItem
	Status     OrderStatus
}

// TotalAmount sums every line of the order.
func (o CustomerOrder) TotalAmount() float64 {
	var total float64
	for _, item := range o.Products {
		total += item.Total()
	}
	return total
}

// Validate checks the product lines of the order.
func (o CustomerOrder) Validate() error {
	if len(o.Products) == 0 {
		return Validation("Order must contain at least one product")
	}
	for _, item := range o.Products {
		if item.ProductID == "" {
			return Validation("Product ID is required")
		}
		if item.Quantity <= 0 {
			return Validation("Quantity for product %s must be positive", item.ProductID)
		}
		if item.UnitPrice < 0 {
			return Validation("Unit price for product %s cannot be negative", item.ProductID)
		}
	}
	return nil
}

// CloneItems returns a copy of the product lines so payloads
// never alias the order's own slice.
func CloneItems(items []OrderItem) []OrderItem {
	if items == nil {
		return nil
	}
	out := make([]OrderItem, len(items))
	copy(out, items)
	return out
}
