package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/inbox-crm/internal/entity"
)

func resolverStores(companies *MockCompanyStore, contacts *MockContactStore) Stores {
	return Stores{Companies: companies, Contacts: contacts}
}

func TestResolvePersonalDomainUsesIndividualCompany(t *testing.T) {
	companies := new(MockCompanyStore)
	contacts := new(MockContactStore)

	individual := &entity.Company{ID: "comp-1", Name: entity.IndividualCompanyName}
	companies.On("FindByName", mock.Anything, entity.IndividualCompanyName).Return(individual, nil)
	contacts.On("FindByEmailOrPhone", mock.Anything, "bob@gmail.com", "").Return(nil, entity.ErrNotFound)
	contacts.On("Create", mock.Anything, mock.AnythingOfType("*entity.Contact")).Return(nil)

	r := NewResolver()
	contact, company, err := r.Resolve(context.Background(), resolverStores(companies, contacts), ResolveInput{
		Email: "bob@gmail.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "comp-1", company.ID)
	assert.Equal(t, "bob", contact.Name) // derived from the local part
	assert.Equal(t, "comp-1", contact.CompanyID)
	assert.Equal(t, entity.CustomerTypeProspect, contact.CustomerType)
	companies.AssertExpectations(t)
	contacts.AssertExpectations(t)
}

func TestResolveCorporateDomainCreatesNamedCompany(t *testing.T) {
	companies := new(MockCompanyStore)
	contacts := new(MockContactStore)

	companies.On("FindByName", mock.Anything, "Acme").Return(nil, entity.ErrNotFound)
	companies.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Company) bool {
		return c.Name == "Acme" && c.Website == "acme.com"
	})).Return(nil)
	contacts.On("FindByEmailOrPhone", mock.Anything, "jane@acme.com", "").Return(nil, entity.ErrNotFound)
	contacts.On("Create", mock.Anything, mock.AnythingOfType("*entity.Contact")).Return(nil)

	r := NewResolver()
	_, company, err := r.Resolve(context.Background(), resolverStores(companies, contacts), ResolveInput{
		Email: "jane@acme.com",
		Name:  "Jane Doe",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Acme", company.Name)
	companies.AssertExpectations(t)
}

func TestResolveCompanyNameHintWins(t *testing.T) {
	companies := new(MockCompanyStore)
	contacts := new(MockContactStore)

	acme := &entity.Company{ID: "comp-9", Name: "Acme Corporation", Website: "acme.io"}
	companies.On("FindByName", mock.Anything, "Acme Corporation").Return(acme, nil)
	contacts.On("FindByEmailOrPhone", mock.Anything, "jane@gmail.com", "").Return(nil, entity.ErrNotFound)
	contacts.On("Create", mock.Anything, mock.AnythingOfType("*entity.Contact")).Return(nil)

	r := NewResolver()
	_, company, err := r.Resolve(context.Background(), resolverStores(companies, contacts), ResolveInput{
		Email:           "jane@gmail.com",
		CompanyNameHint: "Acme Corporation",
	})

	assert.NoError(t, err)
	assert.Equal(t, "comp-9", company.ID)
}

func TestResolveCompanyCreateRaceAdoptsWinner(t *testing.T) {
	companies := new(MockCompanyStore)
	contacts := new(MockContactStore)

	winner := &entity.Company{ID: "comp-2", Name: "Acme", Website: "acme.com"}
	companies.On("FindByName", mock.Anything, "Acme").Return(nil, entity.ErrNotFound).Once()
	companies.On("Create", mock.Anything, mock.AnythingOfType("*entity.Company")).Return(entity.ErrDuplicate)
	companies.On("FindByName", mock.Anything, "Acme").Return(winner, nil).Once()
	contacts.On("FindByEmailOrPhone", mock.Anything, "jane@acme.com", "").Return(nil, entity.ErrNotFound)
	contacts.On("Create", mock.Anything, mock.AnythingOfType("*entity.Contact")).Return(nil)

	r := NewResolver()
	contact, company, err := r.Resolve(context.Background(), resolverStores(companies, contacts), ResolveInput{
		Email: "jane@acme.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "comp-2", company.ID)
	assert.Equal(t, "comp-2", contact.CompanyID)
	companies.AssertExpectations(t)
}

func TestResolveBackfillsPlaceholderWebsite(t *testing.T) {
	companies := new(MockCompanyStore)
	contacts := new(MockContactStore)

	stored := &entity.Company{ID: "comp-3", Name: "Acme", Website: "acme.com"}
	updated := &entity.Company{ID: "comp-3", Name: "Acme", Website: "https://www.acme.com"}
	companies.On("FindByName", mock.Anything, "Acme").Return(stored, nil)
	companies.On("UpdateWebsite", mock.Anything, "comp-3", "https://www.acme.com").Return(updated, nil)
	contacts.On("FindByEmailOrPhone", mock.Anything, "jane@acme.com", "").Return(nil, entity.ErrNotFound)
	contacts.On("Create", mock.Anything, mock.AnythingOfType("*entity.Contact")).Return(nil)

	r := NewResolver()
	_, company, err := r.Resolve(context.Background(), resolverStores(companies, contacts), ResolveInput{
		Email:       "jane@acme.com",
		WebsiteHint: "https://www.acme.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://www.acme.com", company.Website)
	companies.AssertExpectations(t)
}

func TestResolveKeepsRealWebsite(t *testing.T) {
	companies := new(MockCompanyStore)
	contacts := new(MockContactStore)

	stored := &entity.Company{ID: "comp-3", Name: "Acme", Website: "https://acme.com/en"}
	companies.On("FindByName", mock.Anything, "Acme").Return(stored, nil)
	contacts.On("FindByEmailOrPhone", mock.Anything, "jane@acme.com", "").Return(nil, entity.ErrNotFound)
	contacts.On("Create", mock.Anything, mock.AnythingOfType("*entity.Contact")).Return(nil)

	r := NewResolver()
	_, company, err := r.Resolve(context.Background(), resolverStores(companies, contacts), ResolveInput{
		Email:       "jane@acme.com",
		WebsiteHint: "http://spam.example",
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://acme.com/en", company.Website)
	companies.AssertNotCalled(t, "UpdateWebsite", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveExistingContactGetsPatchedAndPromoted(t *testing.T) {
	companies := new(MockCompanyStore)
	contacts := new(MockContactStore)

	acme := &entity.Company{ID: "comp-4", Name: "Acme", Website: "acme.com"}
	existing := &entity.Contact{
		ID:           "cont-1",
		CompanyID:    "comp-4",
		Name:         "jane", // derived from jane@acme.com
		Email:        "jane@acme.com",
		CustomerType: entity.CustomerTypeProspect,
	}
	patched := &entity.Contact{
		ID:           "cont-1",
		CompanyID:    "comp-4",
		Name:         "Jane Doe",
		Email:        "jane@acme.com",
		Phone:        "+1 555 0100",
		CustomerType: entity.CustomerTypeCustomer,
	}

	companies.On("FindByName", mock.Anything, "Acme").Return(acme, nil)
	contacts.On("FindByEmailOrPhone", mock.Anything, "jane@acme.com", "+1 555 0100").Return(existing, nil)
	contacts.On("Update", mock.Anything, "cont-1", ContactPatch{
		Name:    "Jane Doe",
		Phone:   "+1 555 0100",
		Promote: true,
	}).Return(patched, nil)

	r := NewResolver()
	contact, _, err := r.Resolve(context.Background(), resolverStores(companies, contacts), ResolveInput{
		Email: "jane@acme.com",
		Name:  "Jane Doe",
		Phone: "+1 555 0100",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", contact.Name)
	assert.Equal(t, entity.CustomerTypeCustomer, contact.CustomerType)
	contacts.AssertExpectations(t)
}

func TestResolveDoesNotOverwriteRealName(t *testing.T) {
	companies := new(MockCompanyStore)
	contacts := new(MockContactStore)

	acme := &entity.Company{ID: "comp-4", Name: "Acme"}
	existing := &entity.Contact{
		ID:           "cont-1",
		CompanyID:    "comp-4",
		Name:         "Jane Johnson-Doe",
		Email:        "jane@acme.com",
		Phone:        "+1 555 0100",
		CustomerType: entity.CustomerTypeCustomer,
	}

	companies.On("FindByName", mock.Anything, "Acme").Return(acme, nil)
	contacts.On("FindByEmailOrPhone", mock.Anything, "jane@acme.com", "").Return(existing, nil)

	r := NewResolver()
	contact, _, err := r.Resolve(context.Background(), resolverStores(companies, contacts), ResolveInput{
		Email: "jane@acme.com",
		Name:  "J. Doe",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Jane Johnson-Doe", contact.Name)
	// Customer already, nothing to fill: no write at all.
	contacts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveUpgradesIndividualToNamedCompany(t *testing.T) {
	companies := new(MockCompanyStore)
	contacts := new(MockContactStore)

	individual := &entity.Company{ID: "comp-ind", Name: entity.IndividualCompanyName}
	acme := &entity.Company{ID: "comp-5", Name: "Initech", Website: "initech.com"}
	existing := &entity.Contact{
		ID:           "cont-2",
		CompanyID:    "comp-ind",
		Name:         "Peter Gibbons",
		Email:        "peter@initech.com",
		CustomerType: entity.CustomerTypeCustomer,
	}
	moved := &entity.Contact{
		ID:           "cont-2",
		CompanyID:    "comp-5",
		Name:         "Peter Gibbons",
		Email:        "peter@initech.com",
		CustomerType: entity.CustomerTypeCustomer,
	}

	companies.On("FindByName", mock.Anything, "Initech").Return(acme, nil)
	companies.On("FindByID", mock.Anything, "comp-ind").Return(individual, nil)
	contacts.On("FindByEmailOrPhone", mock.Anything, "peter@initech.com", "").Return(existing, nil)
	contacts.On("Update", mock.Anything, "cont-2", ContactPatch{CompanyID: "comp-5"}).Return(moved, nil)

	r := NewResolver()
	contact, _, err := r.Resolve(context.Background(), resolverStores(companies, contacts), ResolveInput{
		Email: "peter@initech.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "comp-5", contact.CompanyID)
	contacts.AssertExpectations(t)
}

func TestResolveContactCreateRacePatchesWinner(t *testing.T) {
	companies := new(MockCompanyStore)
	contacts := new(MockContactStore)

	acme := &entity.Company{ID: "comp-6", Name: "Acme"}
	winner := &entity.Contact{
		ID:           "cont-3",
		CompanyID:    "comp-6",
		Name:         "jane",
		Email:        "jane@acme.com",
		CustomerType: entity.CustomerTypeProspect,
	}
	patched := &entity.Contact{
		ID:           "cont-3",
		CompanyID:    "comp-6",
		Name:         "jane",
		Email:        "jane@acme.com",
		CustomerType: entity.CustomerTypeCustomer,
	}

	companies.On("FindByName", mock.Anything, "Acme").Return(acme, nil)
	contacts.On("FindByEmailOrPhone", mock.Anything, "jane@acme.com", "").Return(nil, entity.ErrNotFound).Once()
	contacts.On("Create", mock.Anything, mock.AnythingOfType("*entity.Contact")).Return(entity.ErrDuplicate)
	contacts.On("FindByEmailOrPhone", mock.Anything, "jane@acme.com", "").Return(winner, nil).Once()
	contacts.On("Update", mock.Anything, "cont-3", ContactPatch{Promote: true}).Return(patched, nil)

	r := NewResolver()
	contact, _, err := r.Resolve(context.Background(), resolverStores(companies, contacts), ResolveInput{
		Email: "jane@acme.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "cont-3", contact.ID)
	contacts.AssertExpectations(t)
}
