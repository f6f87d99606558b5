package domain

import "strings"

// Address is a supplier's postal and phone contact.
type Address struct {
	Street      string `yaml:"street"`
	City        string `yaml:"city"`
	PostalCode  string `yaml:"postal_code"`
	Country     string `yaml:"country"`
	PhoneNumber string `yaml:"phone_number"`
}

// FullAddress joins the address parts, skipping an empty postal code.
func (a Address) FullAddress() string {
	parts := []string{a.Street, a.City, a.Country}
	if a.PostalCode != "" {
		parts = append(parts, a.PostalCode)
	}
	return strings.Join(parts, ", ")
}

// Supplier provides products and receives purchase orders.
type Supplier struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	ContactPerson string   `yaml:"contact_person"`
	Email         string   `yaml:"email"`
	Address       Address  `yaml:"address"`
	OrderHistory  []string `yaml:"-"` // purchase order IDs
}

// AddOrderHistory records a purchase order sent to this supplier.
func (s *Supplier) AddOrderHistory(purchaseOrderID string) {
	s.OrderHistory = append(s.OrderHistory, purchaseOrderID)
}

// Validate checks the supplier's contact details.
func (s Supplier) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return Validation("Supplier ID is required")
	}
	if s.Email != "" && !ValidEmail(s.Email) {
		return Validation("Invalid email format.")
	}
	if s.Address.PhoneNumber != "" && !ValidPhoneNumber(s.Address.PhoneNumber) {
		return Validation("Invalid phone number format.")
	}
	return nil
}
