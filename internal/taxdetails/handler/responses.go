package handler

import (
	"time"

	"bemyrider/internal/taxdetails/models"
)

type CalculateResponse struct {
	FiscalCode string `json:"fiscal_code"`
}

type ValidateResponse struct {
	FiscalCode    string `json:"fiscal_code"`
	ValidFormat   bool   `json:"valid_format"`
	ChecksumValid bool   `json:"checksum_valid"`
}

func FromValidation(r *models.ValidationResult) *ValidateResponse {
	return &ValidateResponse{
		FiscalCode:    r.FiscalCode,
		ValidFormat:   r.ValidFormat,
		ChecksumValid: r.ChecksumValid,
	}
}

type RiderTaxDetailsResponse struct {
	RiderID          string    `json:"rider_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	FiscalCode       string    `json:"fiscal_code"`
	BirthPlace       string    `json:"birth_place"`
	BirthDate        string    `json:"birth_date"`
	ResidenceAddress string    `json:"residence_address"`
	ResidenceCity    string    `json:"residence_city"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromRider(d *models.RiderTaxDetails) *RiderTaxDetailsResponse {
	return &RiderTaxDetailsResponse{
		RiderID:          d.RiderID.String(),
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		FiscalCode:       d.FiscalCode,
		BirthPlace:       d.BirthPlace,
		BirthDate:        d.BirthDate.Format(models.DateLayout),
		ResidenceAddress: d.ResidenceAddress,
		ResidenceCity:    d.ResidenceCity,
		UpdatedAt:        d.UpdatedAt,
	}
}

type MerchantTaxDetailsResponse struct {
	MerchantID  string    `json:"merchant_id"`
	CompanyName string    `json:"company_name"`
	VATNumber   *string   `json:"vat_number"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromMerchant(d *models.MerchantTaxDetails) *MerchantTaxDetailsResponse {
	resp := &MerchantTaxDetailsResponse{
		MerchantID:  d.MerchantID.String(),
		CompanyName: d.CompanyName,
		Address:     d.Address,
		City:        d.City,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.VATNumber != "" {
		vat := d.VATNumber
		resp.VATNumber = &vat
	}
	return resp
}
