package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bemyrider/internal/taxdetails/models"
	id "bemyrider/pkg/domain"
	txcontext "bemyrider/pkg/platform/tx"

	"github.com/google/uuid"
)

// PostgresStore persists tax details in PostgreSQL. Writes join the
// transaction carried by the context, if any.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) UpsertRider(ctx context.Context, details *models.RiderTaxDetails) error {
	query := `
		INSERT INTO rider_tax_details (
			rider_id, first_name, last_name, fiscal_code, birth_place,
			birth_date, residence_address, residence_city, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (rider_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			fiscal_code = EXCLUDED.fiscal_code,
			birth_place = EXCLUDED.birth_place,
			birth_date = EXCLUDED.birth_date,
			residence_address = EXCLUDED.residence_address,
			residence_city = EXCLUDED.residence_city,
			updated_at = EXCLUDED.updated_at
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(details.RiderID),
		details.FirstName,
		details.LastName,
		details.FiscalCode,
		details.BirthPlace,
		details.BirthDate,
		details.ResidenceAddress,
		details.ResidenceCity,
		details.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert rider tax details: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindRider(ctx context.Context, riderID id.RiderID) (*models.RiderTaxDetails, error) {
	query := `
		SELECT first_name, last_name, fiscal_code, birth_place, birth_date,
			residence_address, residence_city, updated_at
		FROM rider_tax_details
		WHERE rider_id = $1
	`
	record := models.RiderTaxDetails{RiderID: riderID}
	err := s.db.QueryRowContext(ctx, query, uuid.UUID(riderID)).Scan(
		&record.FirstName,
		&record.LastName,
		&record.FiscalCode,
		&record.BirthPlace,
		&record.BirthDate,
		&record.ResidenceAddress,
		&record.ResidenceCity,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find rider tax details: %w", err)
	}
	record.BirthDate = record.BirthDate.UTC()
	return &record, nil
}

func (s *PostgresStore) UpsertMerchant(ctx context.Context, details *models.MerchantTaxDetails) error {
	query := `
		INSERT INTO merchant_tax_details (
			merchant_id, company_name, vat_number, address, city, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (merchant_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			vat_number = EXCLUDED.vat_number,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			updated_at = EXCLUDED.updated_at
	`
	vat := sql.NullString{String: details.VATNumber, Valid: details.VATNumber != ""}
	_, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(details.MerchantID),
		details.CompanyName,
		vat,
		details.Address,
		details.City,
		details.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert merchant tax details: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindMerchant(ctx context.Context, merchantID id.MerchantID) (*models.MerchantTaxDetails, error) {
	query := `
		SELECT company_name, vat_number, address, city, updated_at
		FROM merchant_tax_details
		WHERE merchant_id = $1
	`
	var vat sql.NullString
	record := models.MerchantTaxDetails{MerchantID: merchantID}
	err := s.db.QueryRowContext(ctx, query, uuid.UUID(merchantID)).Scan(
		&record.CompanyName,
		&vat,
		&record.Address,
		&record.City,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find merchant tax details: %w", err)
	}
	record.VATNumber = vat.String
	return &record, nil
}
