package memory

import (
	"Warehouse/internal/core/domain"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed is the initial content of the in-memory stores.
type Seed struct {
	Customers []domain.Customer `yaml:"customers"`
	Suppliers []domain.Supplier `yaml:"suppliers"`
	Products  []domain.Product  `yaml:"products"`
}

// DefaultSeed returns the built-in warehouse fixtures.
func DefaultSeed() Seed {
	return Seed{
		Customers: []domain.Customer{
			{ID: "1", Name: "Harry Potter", Address: "123 Main St", Email: "harry.potter@hogwarts.edu"},
		},
		Suppliers: []domain.Supplier{
			{
				ID:            "supplier-123",
				Name:          "Concrete Suppliers Ltd.",
				ContactPerson: "John Doe",
				Email:         "john@concretesuppliers.com",
				Address: domain.Address{
					Street:      "123 Concrete Ave.",
					City:        "Concrete City",
					PostalCode:  "12345",
					Country:     "Concrete Country",
					PhoneNumber: "123-456-7890",
				},
			},
			{
				ID:            "supplier-456",
				Name:          "Steel Suppliers Inc.",
				ContactPerson: "Jane Smith",
				Email:         "jane@steelsuppliers.com",
				Address: domain.Address{
					Street:      "456 Steel St.",
					City:        "Steel City",
					PostalCode:  "67890",
					Country:     "Steel Country",
					PhoneNumber: "987-654-3210",
				},
			},
		},
		Products: []domain.Product{
			{
				ID:                "product-001",
				SupplierID:        "supplier-123",
				Name:              "Concrete Mix",
				Description:       "High-quality concrete mix",
				Category:          "RAW_MATERIAL",
				UnitCost:          10,
				CurrentStock:      50,
				MaxStockLevel:     50,
				MinStockThreshold: 10,
			},
		},
	}
}

// LoadSeed reads fixtures from a YAML file.
func LoadSeed(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if err := seed.Validate(); err != nil {
		return Seed{}, fmt.Errorf("invalid seed file %s: %w", path, err)
	}
	return seed, nil
}

// Validate checks every record, that IDs are unique per kind and that
// each product's supplier exists.
func (s Seed) Validate() error {
	suppliers := make(map[string]bool, len(s.Suppliers))
	for _, sup := range s.Suppliers {
		if err := sup.Validate(); err != nil {
			return err
		}
		if suppliers[sup.ID] {
			return domain.Validation("Duplicate supplier ID %s", sup.ID)
		}
		suppliers[sup.ID] = true
	}

	customers := make(map[string]bool, len(s.Customers))
	for _, c := range s.Customers {
		if err := c.Validate(); err != nil {
			return err
		}
		if customers[c.ID] {
			return domain.Validation("Duplicate customer ID %s", c.ID)
		}
		customers[c.ID] = true
	}

	products := make(map[string]bool, len(s.Products))
	for _, p := range s.Products {
		if err := p.Validate(); err != nil {
			return err
		}
		if products[p.ID] {
			return domain.Validation("Duplicate product ID %s", p.ID)
		}
		products[p.ID] = true
		if !suppliers[p.SupplierID] {
			return domain.Validation("Product %s references unknown supplier %s", p.ID, p.SupplierID)
		}
	}
	return nil
}
