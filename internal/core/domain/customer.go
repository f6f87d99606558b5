package domain

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s+\-()]{8,20}$`)
)

// Customer is someone who can place orders.
type Customer struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Email   string `yaml:"email"`
}

// Validate checks the customer's identity and contact data.
func (c Customer) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return Validation("Customer ID is required")
	}
	if !ValidEmail(c.Email) {
		return Validation("Invalid email format.")
	}
	return nil
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhoneNumber reports whether s looks like a phone number.
func ValidPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}
