package ai

// Default keyword lists for intent detection. Injected into the Classifier at
// construction so deployments can tune them without touching the scoring code.

var DefaultSupportKeywords = []string{
	"issue", "error", "problem", "not working", "broken",
	"bug", "crash", "fail", "failed", "down", "offline",
	"can't", "cannot", "doesn't work", "doesn't",
	"trouble", "urgent", "asap", "help", "support",
	"complaint", "refund", "return", "uninstall", "delete",
	"login issue", "access denied", "error code", "exception",
}

var DefaultEnquiryKeywords = []string{
	"pricing", "price", "cost", "quote", "quotation",
	"plan", "package", "feature", "features", "information",
	"details", "demo", "trial", "free", "interested", "inquire",
	"product", "service", "offer", "how much", "what is",
	"capability", "integration", "how does", "does it",
	"custom", "enterprise", "upgrade", "downgrade",
}
