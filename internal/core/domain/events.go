package domain

// EventType is the routing key of an event.
type EventType string

const (
	EventCustomerOrderCreated EventType = "CustomerOrderCreated"
	EventReorderStock         EventType = "ReorderStock"
	EventStockReplenished     EventType = "StockReplenished"
)

// Payload is the body of an event. Each payload knows which
// event type it belongs to, so a mismatched Event can be rejected.
type Payload interface {
	EventType() EventType
}

// Event is what travels over the bus.
type Event struct {
	Type    EventType
	Payload Payload
}

// CustomerOrderCreatedPayload is published after an order is persisted.
type CustomerOrderCreatedPayload struct {
	CustomerID string
	OrderID    string
	Products   []OrderItem
}

func (CustomerOrderCreatedPayload) EventType() EventType { return EventCustomerOrderCreated }

// ReorderStockPayload asks suppliers to restock the listed products.
type ReorderStockPayload struct {
	Products []OrderItem
}

func (ReorderStockPayload) EventType() EventType { return EventReorderStock }

// StockReplenishedPayload reports the quantity and cost of a restock.
type StockReplenishedPayload struct {
	Products []OrderItem
}

func (StockReplenishedPayload) EventType() EventType { return EventStockReplenished }

// NewEvent builds an event whose type is taken from its payload.
func NewEvent(payload Payload) Event {
	return Event{Type: payload.EventType(), Payload: payload}
}

// Items returns the product lines carried by a known payload, or nil.
func (e Event) Items() []OrderItem {
	switch p := e.Payload.(type) {
	case CustomerOrderCreatedPayload:
		return p.Products
	case ReorderStockPayload:
		return p.Products
	case StockReplenishedPayload:
		return p.Products
	default:
		return nil
	}
}
