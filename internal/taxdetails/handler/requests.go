package handler

import (
	"strings"
	"time"

	"bemyrider/internal/fiscalcode"
	"bemyrider/internal/taxdetails/models"
	dErrors "bemyrider/pkg/domain-errors"
)

const maxFieldLength = 200

// CalculateRequest is the HTTP request body for POST /fiscal-code/calculate.
type CalculateRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	BirthDate  string `json:"birth_date"`
	BirthPlace string `json:"birth_place"`
	Sex        string `json:"sex,omitempty"`

	parsedDate time.Time
	parsedSex  fiscalcode.Sex
}

func (r *CalculateRequest) Sanitize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.BirthDate = strings.TrimSpace(r.BirthDate)
	r.BirthPlace = strings.TrimSpace(r.BirthPlace)
	r.Sex = strings.TrimSpace(r.Sex)
}

// Validate implements httputil.Validatable.
func (r *CalculateRequest) Validate() error {
	if err := checkLengths(r.FirstName, r.LastName, r.BirthPlace); err != nil {
		return err
	}
	switch {
	case r.FirstName == "":
		return dErrors.New(dErrors.CodeValidation, "first_name is required")
	case r.LastName == "":
		return dErrors.New(dErrors.CodeValidation, "last_name is required")
	case r.BirthDate == "":
		return dErrors.New(dErrors.CodeValidation, "birth_date is required")
	case r.BirthPlace == "":
		return dErrors.New(dErrors.CodeValidation, "birth_place is required")
	}
	date, err := parseDate(r.BirthDate)
	if err != nil {
		return err
	}
	r.parsedDate = date

	sex, err := fiscalcode.ParseSex(r.Sex)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "sex must be M or F")
	}
	r.parsedSex = sex
	return nil
}

func (r *CalculateRequest) Input() fiscalcode.Input {
	return fiscalcode.Input{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		BirthDate:  r.parsedDate,
		BirthPlace: r.BirthPlace,
		Sex:        r.parsedSex,
	}
}

// ValidateRequest is the HTTP request body for POST /fiscal-code/validate.
type ValidateRequest struct {
	FiscalCode string `json:"fiscal_code"`
}

func (r *ValidateRequest) Validate() error {
	if len(r.FiscalCode) > maxFieldLength {
		return dErrors.New(dErrors.CodeValidation, "fiscal_code is too long")
	}
	return nil
}

// RiderTaxDetailsRequest is the body for PUT /riders/{riderID}/tax-details.
// Required fields are enforced by the service so every caller gets them.
type RiderTaxDetailsRequest struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	FiscalCode       string `json:"fiscal_code"`
	BirthPlace       string `json:"birth_place"`
	BirthDate        string `json:"birth_date"`
	ResidenceAddress string `json:"residence_address"`
	ResidenceCity    string `json:"residence_city"`

	parsedDate time.Time
}

func (r *RiderTaxDetailsRequest) Sanitize() {
	r.BirthDate = strings.TrimSpace(r.BirthDate)
}

func (r *RiderTaxDetailsRequest) Validate() error {
	if err := checkLengths(r.FirstName, r.LastName, r.FiscalCode, r.BirthPlace, r.ResidenceAddress, r.ResidenceCity); err != nil {
		return err
	}
	if r.BirthDate == "" {
		return nil
	}
	date, err := parseDate(r.BirthDate)
	if err != nil {
		return err
	}
	r.parsedDate = date
	return nil
}

func (r *RiderTaxDetailsRequest) ToModel() *models.RiderTaxDetails {
	return &models.RiderTaxDetails{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		FiscalCode:       r.FiscalCode,
		BirthPlace:       r.BirthPlace,
		BirthDate:        r.parsedDate,
		ResidenceAddress: r.ResidenceAddress,
		ResidenceCity:    r.ResidenceCity,
	}
}

// MerchantTaxDetailsRequest is the body for PUT /merchants/{merchantID}/tax-details.
type MerchantTaxDetailsRequest struct {
	CompanyName string  `json:"company_name"`
	VATNumber   *string `json:"vat_number"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
}

func (r *MerchantTaxDetailsRequest) Validate() error {
	vat := ""
	if r.VATNumber != nil {
		vat = *r.VATNumber
	}
	return checkLengths(r.CompanyName, vat, r.Address, r.City)
}

func (r *MerchantTaxDetailsRequest) ToModel() *models.MerchantTaxDetails {
	d := &models.MerchantTaxDetails{
		CompanyName: r.CompanyName,
		Address:     r.Address,
		City:        r.City,
	}
	if r.VATNumber != nil {
		d.VATNumber = *r.VATNumber
	}
	return d
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, dErrors.New(dErrors.CodeValidation, "birth_date must be formatted as YYYY-MM-DD")
	}
	return t, nil
}

func checkLengths(values ...string) error {
	for _, v := range values {
		if len(v) > maxFieldLength {
			return dErrors.New(dErrors.CodeValidation, "field exceeds 200 characters")
		}
	}
	return nil
}
