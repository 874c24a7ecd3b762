package ai

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/xavierca1/inbox-crm/internal/entity"
)

const draftLayout = `Dear %s,

%s We received your message and we're reviewing it carefully.

%s

%s

Best regards,
%s
%s`

// Drafter assembles a reply draft from randomized template pools. The rand
// source is injected so tests can seed it; the mutex is needed because
// rand.Rand is not safe for concurrent use and drafts are produced from both
// the webhook handler and the IMAP poller.
type Drafter struct {
	enquiry  TemplateSet
	support  TemplateSet
	signTeam string
	signOrg  string

	mu  sync.Mutex
	rng *rand.Rand
}

func NewDrafter(src rand.Source, signTeam, signOrg string) *Drafter {
	return &Drafter{
		enquiry:  DefaultEnquiryTemplates,
		support:  DefaultSupportTemplates,
		signTeam: signTeam,
		signOrg:  signOrg,
		rng:      rand.New(src),
	}
}

// Draft produces a reply for the contact. Support intent uses the support
// pools; enquiry and anything else falls back to the enquiry pools. Repeated
// calls may differ but the result is never empty.
func (d *Drafter) Draft(contactName string, intent entity.Intent) string {
	templates := d.enquiry
	if intent == entity.IntentSupport {
		templates = d.support
	}

	return fmt.Sprintf(draftLayout,
		contactName,
		d.pick(templates.Greetings),
		d.pick(templates.Bodies),
		d.pick(templates.Closings),
		d.signTeam,
		d.signOrg,
	)
}

func (d *Drafter) pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return pool[d.rng.Intn(len(pool))]
}
