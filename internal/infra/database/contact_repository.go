package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/inbox-crm/internal/entity"
	"github.com/xavierca1/inbox-crm/internal/usecase"
)

type ContactRepository struct {
	DB Querier
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

const contactColumns = `id, company_id, name, email, phone, location, product_interest, customer_type, created_at, updated_at`

func (r *ContactRepository) scanContact(row *sql.Row) (*entity.Contact, error) {
	var contact entity.Contact
	var companyID, phone, location, productInterest sql.NullString

	err := row.Scan(
		&contact.ID,
		&companyID,
		&contact.Name,
		&contact.Email,
		&phone,
		&location,
		&productInterest,
		&contact.CustomerType,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}

	contact.CompanyID = fromNull(companyID)
	contact.Phone = fromNull(phone)
	contact.Location = fromNull(location)
	contact.ProductInterest = fromNull(productInterest)
	return &contact, nil
}

// FindByEmailOrPhone matches on email first; the phone clause only kicks in
// when a phone was extracted from the message body.
func (r *ContactRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) (*entity.Contact, error) {
	if phone == "" {
		query := `SELECT ` + contactColumns + ` FROM contacts WHERE email = $1 LIMIT 1`
		return r.scanContact(r.DB.QueryRowContext(ctx, query, email))
	}

	query := `SELECT ` + contactColumns + ` FROM contacts WHERE email = $1 OR phone = $2 LIMIT 1`
	return r.scanContact(r.DB.QueryRowContext(ctx, query, email, phone))
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1 LIMIT 1`
	return r.scanContact(r.DB.QueryRowContext(ctx, query, id))
}

// Create inserts a new contact. A concurrent insert of the same email surfaces
// as entity.ErrDuplicate so the caller can re-run the lookup. DO NOTHING keeps
// the losing insert from aborting the enclosing transaction.
func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, company_id, name, email, phone, location, product_interest, customer_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (email) DO NOTHING
	`

	result, err := r.DB.ExecContext(ctx, query,
		c.ID,
		nullString(c.CompanyID),
		c.Name,
		c.Email,
		nullString(c.Phone),
		nullString(c.Location),
		nullString(c.ProductInterest),
		c.CustomerType,
		c.CreatedAt,
		c.UpdatedAt,
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

// Update applies a fill-if-empty patch. Empty patch fields leave the stored
// value alone; promotion only ever moves prospect to customer. Returns the
// row as persisted after the update.
func (r *ContactRepository) Update(ctx context.Context, id string, patch usecase.ContactPatch) (*entity.Contact, error) {
	query := `
		UPDATE contacts
		SET
			name = COALESCE(NULLIF($1, ''), name),
			phone = COALESCE(NULLIF($2, ''), phone),
			location = COALESCE(NULLIF($3, ''), location),
			product_interest = COALESCE(NULLIF($4, ''), product_interest),
			company_id = COALESCE(NULLIF($5, ''), company_id),
			customer_type = CASE
				WHEN $6::boolean AND customer_type = 'prospect' THEN 'customer'
				ELSE customer_type
			END,
			customer_since = CASE
				WHEN $6::boolean AND customer_type = 'prospect' THEN NOW()
				ELSE customer_since
			END,
			updated_at = NOW()
		WHERE id = $7
		RETURNING ` + contactColumns

	return r.scanContact(r.DB.QueryRowContext(ctx, query,
		patch.Name,
		patch.Phone,
		patch.Location,
		patch.ProductInterest,
		patch.CompanyID,
		patch.Promote,
		id,
	))
}

// Promote advances the customer type. The WHERE guard makes the move
// monotonic: promoting an already-promoted contact is a no-op, never a
// demotion.
func (r *ContactRepository) Promote(ctx context.Context, id, to string) error {
	var from string
	switch to {
	case entity.CustomerTypeCustomer:
		from = entity.CustomerTypeProspect
	case entity.CustomerTypeClient:
		from = entity.CustomerTypeCustomer
	default:
		return entity.ErrInvalidTransition
	}

	query := `
		UPDATE contacts
		SET customer_type = $1,
		    customer_since = CASE WHEN $1 = 'customer' THEN NOW() ELSE customer_since END,
		    updated_at = NOW()
		WHERE id = $2 AND customer_type = $3
	`

	_, err := r.DB.ExecContext(ctx, query, to, id, from)
	return mapError(err)
}

// List returns contacts with their company names for the dashboards.
func (r *ContactRepository) List(ctx context.Context, limit int) ([]*entity.Contact, error) {
	query := `
		SELECT c.id, c.company_id, c.name, c.email, c.phone, c.location, c.product_interest,
		       c.customer_type, c.created_at, c.updated_at, co.company_name
		FROM contacts c
		LEFT JOIN companies co ON c.company_id = co.id
		ORDER BY c.created_at DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var contacts []*entity.Contact
	for rows.Next() {
		var contact entity.Contact
		var companyID, phone, location, productInterest, companyName sql.NullString

		if err := rows.Scan(
			&contact.ID,
			&companyID,
			&contact.Name,
			&contact.Email,
			&phone,
			&location,
			&productInterest,
			&contact.CustomerType,
			&contact.CreatedAt,
			&contact.UpdatedAt,
			&companyName,
		); err != nil {
			return nil, mapError(err)
		}

		contact.CompanyID = fromNull(companyID)
		contact.Phone = fromNull(phone)
		contact.Location = fromNull(location)
		contact.ProductInterest = fromNull(productInterest)
		contact.CompanyName = fromNull(companyName)
		contacts = append(contacts, &contact)
	}

	return contacts, rows.Err()
}
