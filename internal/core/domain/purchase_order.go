package domain

import "time"

// PurchaseOrderStatus tracks an order sent to a supplier.
type PurchaseOrderStatus string

const (
	PurchaseOrderPending   PurchaseOrderStatus = "Pending"
	PurchaseOrderApproved  PurchaseOrderStatus = "Approved"
	PurchaseOrderDelivered PurchaseOrderStatus = "Delivered"
	PurchaseOrderCanceled  PurchaseOrderStatus = "Canceled"
)

// PurchaseOrder is a restock request sent to a supplier.
type PurchaseOrder struct {
	ID         string
	SupplierID string
	OrderDate  time.Time
	Items      []OrderItem
	Status     PurchaseOrderStatus
}

// Total sums every line of the purchase order.
func (po PurchaseOrder) Total() float64 {
	var total float64
	for _, item := range po.Items {
		total += item.Total()
	}
	return total
}
