package service

import (
	"errors"
	"strings"
	"time"

	"bemyrider/internal/fiscalcode"
	"bemyrider/internal/taxdetails/models"
	dErrors "bemyrider/pkg/domain-errors"
)

// prepareRider trims every field, uppercases the fiscal code and enforces
// the required fields of the rider fiscal-data form.
func prepareRider(d *models.RiderTaxDetails) error {
	if d.RiderID.IsNil() {
		return dErrors.New(dErrors.CodeInvalidInput, "rider_id is required")
	}
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.FiscalCode = strings.ToUpper(strings.TrimSpace(d.FiscalCode))
	d.BirthPlace = strings.TrimSpace(d.BirthPlace)
	d.ResidenceAddress = strings.TrimSpace(d.ResidenceAddress)
	d.ResidenceCity = strings.TrimSpace(d.ResidenceCity)

	switch {
	case d.FiscalCode == "":
		return dErrors.New(dErrors.CodeValidation, "fiscal_code is required")
	case !fiscalcode.Pattern.MatchString(d.FiscalCode):
		return dErrors.New(dErrors.CodeValidation, "fiscal_code has an invalid format")
	case d.BirthPlace == "":
		return dErrors.New(dErrors.CodeValidation, "birth_place is required")
	case d.BirthDate.IsZero():
		return dErrors.New(dErrors.CodeValidation, "birth_date is required")
	case d.ResidenceAddress == "":
		return dErrors.New(dErrors.CodeValidation, "residence_address is required")
	case d.ResidenceCity == "":
		return dErrors.New(dErrors.CodeValidation, "residence_city is required")
	}

	y, m, day := d.BirthDate.Date()
	d.BirthDate = time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return nil
}

// prepareMerchant trims fields and normalizes the optional VAT number.
func prepareMerchant(d *models.MerchantTaxDetails) error {
	if d.MerchantID.IsNil() {
		return dErrors.New(dErrors.CodeInvalidInput, "merchant_id is required")
	}
	d.CompanyName = strings.TrimSpace(d.CompanyName)
	d.Address = strings.TrimSpace(d.Address)
	d.City = strings.TrimSpace(d.City)
	d.VATNumber = models.NormalizeVATNumber(d.VATNumber)

	if d.CompanyName == "" {
		return dErrors.New(dErrors.CodeValidation, "company_name is required")
	}
	if d.VATNumber != "" && !models.ValidVATNumber(d.VATNumber) {
		return dErrors.New(dErrors.CodeValidation, "vat_number must be 11 digits")
	}
	return nil
}

func calculationOutcome(err error) string {
	switch {
	case errors.Is(err, fiscalcode.ErrMissingField):
		return "missing_field"
	case errors.Is(err, fiscalcode.ErrUnresolvableBirthPlace):
		return "unresolvable_place"
	case errors.Is(err, fiscalcode.ErrInvalidSex):
		return "invalid_sex"
	}
	return "error"
}

func translateCalculationError(err error) error {
	field := ""
	var fe *fiscalcode.FieldError
	if errors.As(err, &fe) {
		field = fe.Field
	}
	switch {
	case errors.Is(err, fiscalcode.ErrMissingField):
		return dErrors.Wrap(err, dErrors.CodeValidation, field+" is required")
	case errors.Is(err, fiscalcode.ErrUnresolvableBirthPlace):
		return dErrors.Wrap(err, dErrors.CodeUnresolvablePlace, "birth place has no known cadastral code")
	case errors.Is(err, fiscalcode.ErrInvalidSex):
		return dErrors.Wrap(err, dErrors.CodeValidation, "sex must be M or F")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "fiscal code calculation failed")
}
