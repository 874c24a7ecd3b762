package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/inbox-crm/internal/entity"
)

type CompanyRepository struct {
	DB Querier
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{DB: db}
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `
		SELECT id, company_name, website, created_at
		FROM companies
		WHERE id = $1
		LIMIT 1
	`

	var company entity.Company
	var website sql.NullString

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&company.ID,
		&company.Name,
		&website,
		&company.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}

	company.Website = fromNull(website)
	return &company, nil
}

// FindByName looks a company up by its canonical name (the unique key).
// Returns entity.ErrNotFound when absent.
func (r *CompanyRepository) FindByName(ctx context.Context, name string) (*entity.Company, error) {
	query := `
		SELECT id, company_name, website, created_at
		FROM companies
		WHERE company_name = $1
		LIMIT 1
	`

	var company entity.Company
	var website sql.NullString

	err := r.DB.QueryRowContext(ctx, query, name).Scan(
		&company.ID,
		&company.Name,
		&website,
		&company.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}

	company.Website = fromNull(website)
	return &company, nil
}

// Create inserts a new company. A concurrent insert of the same name surfaces
// as entity.ErrDuplicate so the caller can re-run the lookup. DO NOTHING keeps
// the losing insert from aborting the enclosing transaction.
func (r *CompanyRepository) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (id, company_name, website, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_name) DO NOTHING
	`

	result, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.Name,
		nullString(c.Website),
		c.CreatedAt,
	)
	if err != nil {
		return mapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrDuplicate
	}
	return nil
}

// UpdateWebsite backfills the website column and returns the row as stored.
func (r *CompanyRepository) UpdateWebsite(ctx context.Context, id, website string) (*entity.Company, error) {
	query := `
		UPDATE companies
		SET website = $1
		WHERE id = $2
		RETURNING id, company_name, website, created_at
	`

	var company entity.Company
	var ws sql.NullString

	err := r.DB.QueryRowContext(ctx, query, website, id).Scan(
		&company.ID,
		&company.Name,
		&ws,
		&company.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}

	company.Website = fromNull(ws)
	return &company, nil
}
