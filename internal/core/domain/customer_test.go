package domain_test

import (
	"testing"

	"Warehouse/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, domain.ValidEmail("harry.potter@hogwarts.edu"))
	assert.False(t, domain.ValidEmail("harry.potter"))
	assert.False(t, domain.ValidEmail("harry @hogwarts.edu"))
}

func TestValidPhoneNumber(t *testing.T) {
	assert.True(t, domain.ValidPhoneNumber("123-456-7890"))
	assert.True(t, domain.ValidPhoneNumber("+44 (0) 20 7946"))
	assert.False(t, domain.ValidPhoneNumber("12345"))
	assert.False(t, domain.ValidPhoneNumber("call me maybe"))
}

func TestCustomer_Validate(t *testing.T) {
	c := domain.Customer{ID: "1", Name: "Harry Potter", Email: "harry.potter@hogwarts.edu"}
	assert.NoError(t, c.Validate())

	c.Email = "nope"
	assert.EqualError(t, c.Validate(), "Invalid email format.")
}

func TestSupplier_ValidateAndHistory(t *testing.T) {
	s := domain.Supplier{
		ID:    "supplier-123",
		Email: "john@concretesuppliers.com",
		Address: domain.Address{
			Street: "123 Concrete Ave.", City: "Concrete City", Country: "Concrete Country",
			PhoneNumber: "123-456-7890",
		},
	}
	assert.NoError(t, s.Validate())
	assert.Equal(t, "123 Concrete Ave., Concrete City, Concrete Country", s.Address.FullAddress())

	s.AddOrderHistory("po-1")
	s.AddOrderHistory("po-2")
	assert.Equal(t, []string{"po-1", "po-2"}, s.OrderHistory)

	s.Address.PhoneNumber = "x"
	assert.EqualError(t, s.Validate(), "Invalid phone number format.")
}
