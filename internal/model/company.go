// Package model defines the data models for the application.
// This file defines the company profile stamped into the report header
// and footer.
package model

import "strings"

// CompanyProfile holds display-only organisation identity data. Every
// field except the name is optional: a missing logo simply skips logo
// placement and missing registration numbers suppress their footer
// fragment.
type CompanyProfile struct {
	Name          string `json:"name"`
	AddressLine1  string `json:"address_line1,omitempty"`
	AddressLine2  string `json:"address_line2,omitempty"`
	Town          string `json:"town,omitempty"`
	County        string `json:"county,omitempty"`
	Postcode      string `json:"postcode,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	LogoURL       string `json:"logo_url,omitempty"`
	CompanyNumber string `json:"company_number,omitempty"`
	VATNumber     string `json:"vat_number,omitempty"`
}

// AddressLines returns the non-blank postal address lines in display order
func (p *CompanyProfile) AddressLines() []string {
	var lines []string
	for _, l := range []string{p.AddressLine1, p.AddressLine2, p.Town, p.County, p.Postcode} {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// RegistrationLine returns the footer fragment built from the company
// and VAT numbers, joining only the values that are present. Returns an
// empty string when neither is set.
func (p *CompanyProfile) RegistrationLine() string {
	var parts []string
	if strings.TrimSpace(p.CompanyNumber) != "" {
		parts = append(parts, "Company No. "+p.CompanyNumber)
	}
	if strings.TrimSpace(p.VATNumber) != "" {
		parts = append(parts, "VAT No. "+p.VATNumber)
	}
	return strings.Join(parts, " ")
}
