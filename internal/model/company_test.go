package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationLine(t *testing.T) {
	tests := []struct {
		name     string
		profile  CompanyProfile
		expected string
	}{
		{
			name:     "both numbers",
			profile:  CompanyProfile{CompanyNumber: "12345678", VATNumber: "GB987654321"},
			expected: "Company No. 12345678 VAT No. GB987654321",
		},
		{
			name:     "company number only",
			profile:  CompanyProfile{CompanyNumber: "12345678"},
			expected: "Company No. 12345678",
		},
		{
			name:     "vat number only",
			profile:  CompanyProfile{VATNumber: "GB987654321"},
			expected: "VAT No. GB987654321",
		},
		{
			name:     "neither",
			profile:  CompanyProfile{Name: "Acme Builders"},
			expected: "",
		},
		{
			name:     "whitespace only values",
			profile:  CompanyProfile{CompanyNumber: "  ", VATNumber: "\t"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.profile.RegistrationLine())
		})
	}
}

func TestAddressLines(t *testing.T) {
	p := CompanyProfile{
		AddressLine1: "Unit 4, Riverside Park",
		Town:         "Leeds",
		Postcode:     "LS1 4DY",
	}
	assert.Equal(t, []string{"Unit 4, Riverside Park", "Leeds", "LS1 4DY"}, p.AddressLines())

	empty := CompanyProfile{Name: "Acme Builders"}
	assert.Empty(t, empty.AddressLines())
}
