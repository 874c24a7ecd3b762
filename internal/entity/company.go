package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// IndividualCompanyName is the shared bucket for contacts writing from
// personal mailboxes (gmail, yahoo, ...). There is exactly one such row.
const IndividualCompanyName = "Individual"

type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Website   string    `json:"website,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCompany(name, website string) (*Company, error) {
	company := &Company{
		ID:        uuid.New().String(),
		Name:      name,
		Website:   website,
		CreatedAt: time.Now(),
	}

	if err := company.Validate(); err != nil {
		return nil, err
	}

	return company, nil
}

func (c *Company) Validate() error {
	if c.Name == "" {
		return errors.New("company name is required")
	}
	return nil
}

func (c *Company) IsIndividual() bool {
	return c.Name == IndividualCompanyName
}
