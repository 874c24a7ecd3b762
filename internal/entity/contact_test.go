package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContactFallsBackToLocalPart(t *testing.T) {
	contact, err := NewContact("jane.doe@acme.com", "", "comp-1")

	require.NoError(t, err)
	assert.Equal(t, "jane.doe", contact.Name)
	assert.Equal(t, CustomerTypeProspect, contact.CustomerType)
	assert.NotEmpty(t, contact.ID)
}

func TestNewContactRejectsInvalidEmail(t *testing.T) {
	_, err := NewContact("not-an-email", "Jane", "comp-1")
	assert.Error(t, err)

	_, err = NewContact("", "Jane", "comp-1")
	assert.Error(t, err)
}

func TestCanBecomeIsMonotonic(t *testing.T) {
	prospect := &Contact{CustomerType: CustomerTypeProspect}
	customer := &Contact{CustomerType: CustomerTypeCustomer}
	client := &Contact{CustomerType: CustomerTypeClient}

	assert.True(t, prospect.CanBecome(CustomerTypeCustomer))
	assert.True(t, prospect.CanBecome(CustomerTypeClient))
	assert.True(t, customer.CanBecome(CustomerTypeClient))

	assert.False(t, customer.CanBecome(CustomerTypeProspect))
	assert.False(t, client.CanBecome(CustomerTypeCustomer))
	assert.False(t, client.CanBecome(CustomerTypeClient))
}

func TestHasDerivedName(t *testing.T) {
	tests := []struct {
		name    string
		contact Contact
		want    bool
	}{
		{"local part", Contact{Name: "jane.doe", Email: "jane.doe@acme.com"}, true},
		{"spaced local part", Contact{Name: "jane doe", Email: "jane.doe@acme.com"}, true},
		{"underscore variant", Contact{Name: "jane doe", Email: "jane_doe@acme.com"}, true},
		{"unknown placeholder", Contact{Name: "Unknown", Email: "jane@acme.com"}, true},
		{"empty", Contact{Name: "", Email: "jane@acme.com"}, true},
		{"real name", Contact{Name: "Jane Doe", Email: "jane.doe@acme.com"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.contact.HasDerivedName())
		})
	}
}

func TestEmailHelpers(t *testing.T) {
	assert.Equal(t, "jane", LocalPart("jane@acme.com"))
	assert.Equal(t, "acme.com", EmailDomain("jane@ACME.com"))
	assert.Equal(t, "no-at-sign", LocalPart("no-at-sign"))
	assert.Equal(t, "", EmailDomain("no-at-sign"))
}
