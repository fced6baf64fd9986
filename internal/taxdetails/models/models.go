// Package models holds the fiscal records kept per rider and per merchant.
package models

import (
	"regexp"
	"strings"
	"time"

	id "bemyrider/pkg/domain"
)

// DateLayout is the wire format for birth dates.
const DateLayout = "2006-01-02"

// RiderTaxDetails is the fiscal data a rider must register before payout.
type RiderTaxDetails struct {
	RiderID          id.RiderID `json:"rider_id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	FiscalCode       string     `json:"fiscal_code"`
	BirthPlace       string     `json:"birth_place"`
	BirthDate        time.Time  `json:"birth_date"`
	ResidenceAddress string     `json:"residence_address"`
	ResidenceCity    string     `json:"residence_city"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// MerchantTaxDetails is the fiscal data of a merchant. VATNumber is empty
// when the merchant has not provided one.
type MerchantTaxDetails struct {
	MerchantID  id.MerchantID `json:"merchant_id"`
	CompanyName string        `json:"company_name"`
	VATNumber   string        `json:"vat_number,omitempty"`
	Address     string        `json:"address"`
	City        string        `json:"city"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

var vatPattern = regexp.MustCompile(`^[0-9]{11}$`)

// NormalizeVATNumber strips every whitespace character from a partita IVA.
func NormalizeVATNumber(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// ValidVATNumber reports whether s is exactly 11 digits after normalization.
func ValidVATNumber(s string) bool {
	return vatPattern.MatchString(NormalizeVATNumber(s))
}

// ValidationResult reports both checks run on a submitted fiscal code.
type ValidationResult struct {
	FiscalCode    string
	ValidFormat   bool
	ChecksumValid bool
}
