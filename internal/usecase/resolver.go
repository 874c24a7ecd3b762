package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xavierca1/inbox-crm/internal/entity"
)

// Mailboxes on these domains say nothing about an employer; their contacts
// all hang off the shared "Individual" company.
var defaultPersonalDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "aol.com",
	"icloud.com", "live.com", "msn.com", "proton.me", "protonmail.com",
}

// Resolver finds-or-creates the Company and Contact for a sender. It always
// runs on tx-bound stores so partial resolution never commits without the
// enclosing enquiry/ticket write.
//
// Creates race under concurrent intake: both sides may miss the lookup and
// insert. The stores report the losing insert as entity.ErrDuplicate without
// poisoning the transaction, and the resolver re-runs the lookup and adopts
// the winner.
type Resolver struct {
	personalDomains map[string]struct{}
}

func NewResolver() *Resolver {
	domains := make(map[string]struct{}, len(defaultPersonalDomains))
	for _, d := range defaultPersonalDomains {
		domains[d] = struct{}{}
	}
	return &Resolver{personalDomains: domains}
}

type ResolveInput struct {
	Email           string
	Name            string
	Phone           string
	Location        string
	ProductInterest string
	CompanyNameHint string
	WebsiteHint     string
}

func (r *Resolver) Resolve(ctx context.Context, s Stores, in ResolveInput) (*entity.Contact, *entity.Company, error) {
	company, err := r.resolveCompany(ctx, s, in)
	if err != nil {
		return nil, nil, err
	}

	contact, err := r.resolveContact(ctx, s, in, company)
	if err != nil {
		return nil, nil, err
	}

	return contact, company, nil
}

func (r *Resolver) resolveCompany(ctx context.Context, s Stores, in ResolveInput) (*entity.Company, error) {
	domain := entity.EmailDomain(in.Email)

	name, personal := r.canonicalName(domain, in.CompanyNameHint)

	company, err := s.Companies.FindByName(ctx, name)
	switch {
	case err == nil:
		return r.maybeBackfillWebsite(ctx, s, company, domain, in.WebsiteHint)

	case errors.Is(err, entity.ErrNotFound):
		website := strings.TrimSpace(in.WebsiteHint)
		if website == "" && !personal {
			website = domain
		}

		company, err = entity.NewCompany(name, website)
		if err != nil {
			return nil, err
		}

		createErr := s.Companies.Create(ctx, company)
		if errors.Is(createErr, entity.ErrDuplicate) {
			// Lost the race: someone committed this name first. Use theirs.
			return s.Companies.FindByName(ctx, name)
		}
		if createErr != nil {
			return nil, createErr
		}
		return company, nil

	default:
		return nil, fmt.Errorf("company lookup: %w", err)
	}
}

// canonicalName applies the naming rules in priority order: content hint,
// personal-domain bucket, capitalized first domain label.
func (r *Resolver) canonicalName(domain, hint string) (string, bool) {
	if h := strings.TrimSpace(hint); len(h) > 1 {
		return h, false
	}

	if _, ok := r.personalDomains[domain]; ok {
		return entity.IndividualCompanyName, true
	}

	label := domain
	if dot := strings.Index(domain, "."); dot > 0 {
		label = domain[:dot]
	}
	if label == "" {
		return entity.IndividualCompanyName, true
	}

	return strings.ToUpper(label[:1]) + label[1:], false
}

// maybeBackfillWebsite upgrades the stored website when a real one is known
// and the current value is missing or just the bare domain placeholder.
func (r *Resolver) maybeBackfillWebsite(ctx context.Context, s Stores, company *entity.Company, domain, hint string) (*entity.Company, error) {
	website := strings.TrimSpace(hint)
	if website == "" || website == company.Website {
		return company, nil
	}

	if company.Website != "" && company.Website != domain {
		return company, nil
	}

	updated, err := s.Companies.UpdateWebsite(ctx, company.ID, website)
	if err != nil {
		return nil, fmt.Errorf("company website backfill: %w", err)
	}
	return updated, nil
}

func (r *Resolver) resolveContact(ctx context.Context, s Stores, in ResolveInput, company *entity.Company) (*entity.Contact, error) {
	contact, err := s.Contacts.FindByEmailOrPhone(ctx, in.Email, in.Phone)
	switch {
	case err == nil:
		return r.patchContact(ctx, s, contact, in, company)

	case errors.Is(err, entity.ErrNotFound):
		contact, err = entity.NewContact(in.Email, strings.TrimSpace(in.Name), company.ID)
		if err != nil {
			return nil, err
		}
		contact.Phone = in.Phone
		contact.Location = in.Location
		contact.ProductInterest = in.ProductInterest

		createErr := s.Contacts.Create(ctx, contact)
		if errors.Is(createErr, entity.ErrDuplicate) {
			// Lost the race on the email unique constraint: re-read and
			// patch the winner instead.
			existing, err := s.Contacts.FindByEmailOrPhone(ctx, in.Email, in.Phone)
			if err != nil {
				return nil, err
			}
			return r.patchContact(ctx, s, existing, in, company)
		}
		if createErr != nil {
			return nil, createErr
		}
		return contact, nil

	default:
		return nil, fmt.Errorf("contact lookup: %w", err)
	}
}

// patchContact fills missing fields on an existing contact and promotes a
// prospect that wrote again. Fields already set are never overwritten, and
// the customer type never moves backwards.
func (r *Resolver) patchContact(ctx context.Context, s Stores, contact *entity.Contact, in ResolveInput, company *entity.Company) (*entity.Contact, error) {
	patch := ContactPatch{
		Promote: contact.CustomerType == entity.CustomerTypeProspect,
	}

	if name := strings.TrimSpace(in.Name); name != "" && contact.HasDerivedName() && name != contact.Name {
		patch.Name = name
	}
	if in.Phone != "" && contact.Phone == "" {
		patch.Phone = in.Phone
	}
	if in.Location != "" && contact.Location == "" {
		patch.Location = in.Location
	}
	if in.ProductInterest != "" && contact.ProductInterest == "" {
		patch.ProductInterest = in.ProductInterest
	}

	if upgrade, err := r.shouldUpgradeCompany(ctx, s, contact, company); err != nil {
		return nil, err
	} else if upgrade {
		patch.CompanyID = company.ID
	}

	if patch.Empty() {
		return contact, nil
	}

	updated, err := s.Contacts.Update(ctx, contact.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("contact patch: %w", err)
	}
	return updated, nil
}

// shouldUpgradeCompany reports whether the contact should move from the
// shared Individual bucket to a real, named company. Named-to-named moves
// are never done automatically.
func (r *Resolver) shouldUpgradeCompany(ctx context.Context, s Stores, contact *entity.Contact, company *entity.Company) (bool, error) {
	if company == nil || company.IsIndividual() || contact.CompanyID == company.ID {
		return false, nil
	}
	if contact.CompanyID == "" {
		return true, nil
	}

	current, err := s.Companies.FindByID(ctx, contact.CompanyID)
	if errors.Is(err, entity.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	return current.IsIndividual(), nil
}
