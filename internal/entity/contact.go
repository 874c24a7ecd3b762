package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer lifecycle. Transitions are monotonic: a contact never moves
// backwards, only prospect -> customer -> client.
const (
	CustomerTypeProspect = "prospect"
	CustomerTypeCustomer = "customer"
	CustomerTypeClient   = "client"
)

var customerTypeRank = map[string]int{
	CustomerTypeProspect: 0,
	CustomerTypeCustomer: 1,
	CustomerTypeClient:   2,
}

type Contact struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id,omitempty"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Location        string    `json:"location,omitempty"`
	ProductInterest string    `json:"product_interest,omitempty"`
	CustomerType    string    `json:"customer_type"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Filled by list queries only.
	CompanyName string `json:"company_name,omitempty"`
}

// NewContact creates a contact on first sighting. When no display name is
// known we fall back to the local part of the address.
func NewContact(email, name, companyID string) (*Contact, error) {
	if name == "" {
		name = LocalPart(email)
	}

	contact := &Contact{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Name:         name,
		Email:        email,
		CustomerType: CustomerTypeProspect,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

func (c *Contact) Validate() error {
	if c.Email == "" {
		return errors.New("contact email is required")
	}
	if !strings.Contains(c.Email, "@") {
		return errors.New("contact email is invalid")
	}
	return nil
}

// CanBecome reports whether moving to the given customer type respects the
// monotonic lifecycle.
func (c *Contact) CanBecome(customerType string) bool {
	current, ok := customerTypeRank[c.CustomerType]
	if !ok {
		return false
	}
	next, ok := customerTypeRank[customerType]
	if !ok {
		return false
	}
	return next > current
}

// HasDerivedName reports whether the stored name still looks auto-derived
// from the email address, in which case a real name from a message header
// may overwrite it.
func (c *Contact) HasDerivedName() bool {
	prefix := LocalPart(c.Email)
	spaced := strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(prefix)
	return c.Name == prefix || c.Name == spaced || c.Name == "Unknown" || c.Name == ""
}

// LocalPart returns the text before the @ of an email address.
func LocalPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}

// EmailDomain returns the lower-cased text after the @ of an email address.
func EmailDomain(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return strings.ToLower(email[at+1:])
	}
	return ""
}
