package domain

// Product is an inventory item.
type Product struct {
	ID                string  `yaml:"id"`
	SupplierID        string  `yaml:"supplier_id"`
	Name              string  `yaml:"name"`
	Description       string  `yaml:"description"`
	Category          string  `yaml:"category"`
	UnitCost          float64 `yaml:"unit_cost"` // what we pay the supplier per unit
	CurrentStock      int     `yaml:"current_stock"`
	MaxStockLevel     int     `yaml:"max_stock_level"`
	MinStockThreshold int     `yaml:"min_stock_threshold"`
}

// IsBelowThreshold reports whether the product needs reordering.
func (p Product) IsBelowThreshold() bool {
	return p.CurrentStock < p.MinStockThreshold
}

// ReorderQuantity is the number of units needed to get back to MaxStockLevel.
func (p Product) ReorderQuantity() int {
	if p.CurrentStock >= p.MaxStockLevel {
		return 0
	}
	return p.MaxStockLevel - p.CurrentStock
}

// AdjustStock adds delta (which may be negative) to the current stock.
func (p *Product) AdjustStock(delta int) error {
	next := p.CurrentStock + delta
	if next < 0 {
		return Validation("Stock cannot be negative")
	}
	p.CurrentStock = next
	return nil
}

// Validate checks the stock levels are coherent.
func (p Product) Validate() error {
	if p.ID == "" {
		return Validation("Product ID is required")
	}
	if p.CurrentStock < 0 {
		return Validation("Stock cannot be negative")
	}
	if p.MinStockThreshold < 0 || p.MaxStockLevel < p.MinStockThreshold {
		return Validation("Product %s must satisfy 0 <= minimum threshold <= maximum stock level", p.ID)
	}
	if p.UnitCost < 0 {
		return Validation("Unit cost for product %s cannot be negative", p.ID)
	}
	return nil
}
