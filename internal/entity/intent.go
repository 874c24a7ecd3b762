package entity

// Intent of an inbound email, detected by keyword analysis.
type Intent string

const (
	IntentEnquiry Intent = "enquiry"
	IntentSupport Intent = "support"
	IntentOther   Intent = "other"
)

func (i Intent) Valid() bool {
	return i == IntentEnquiry || i == IntentSupport || i == IntentOther
}
