package ai

// TemplateSet holds the pools a draft is assembled from: one greeting, one
// body and one closing per reply.
type TemplateSet struct {
	Greetings []string
	Bodies    []string
	Closings  []string
}

var DefaultEnquiryTemplates = TemplateSet{
	Greetings: []string{
		"Thank you for reaching out to us!",
		"We appreciate your interest in our products and services.",
		"Thank you for your inquiry!",
		"We're delighted to hear from you.",
		"Thank you for contacting us.",
	},
	Bodies: []string{
		"We're excited to help you learn more about our solutions. Our team can provide detailed information about our pricing, features, and customization options tailored to your specific needs.",
		"Your interest is important to us. We offer a range of plans and features designed to meet diverse business requirements.",
		"We would love to discuss how our products can help solve your business challenges. We have several options available.",
		"We're confident our solutions can add significant value to your organization. Let us know what specific information would be most helpful.",
		"Our team specializes in providing solutions that align with your business goals. We're here to answer any questions you have.",
	},
	Closings: []string{
		"Please reply to this email with any questions, or feel free to schedule a demo with our team at your convenience.",
		"We'd be happy to arrange a personalized demonstration. Just let us know what works best for your schedule.",
		"Feel free to reach out anytime if you need more information. We're here to help you succeed.",
		"Our sales team is ready to discuss how we can best serve your organization. Looking forward to hearing from you.",
		"Please don't hesitate to contact us. We're committed to finding the perfect solution for you.",
	},
}

var DefaultSupportTemplates = TemplateSet{
	Greetings: []string{
		"Thank you for reaching out to our support team.",
		"We're here to help resolve your issue quickly.",
		"We appreciate you bringing this to our attention.",
		"Thank you for reporting this issue.",
		"We take your concern seriously.",
	},
	Bodies: []string{
		"We understand the urgency of resolving this. Our technical team is reviewing your case and will provide a solution shortly.",
		"We're committed to getting you back up and running as quickly as possible. Our experts are investigating this right now.",
		"Thank you for the detailed information. Our team will analyze this and provide you with next steps soon.",
		"We take all technical issues seriously. Our support team will work with you to resolve this promptly.",
		"Your case has been logged with our support team. We'll investigate and provide a resolution strategy within 24 hours.",
	},
	Closings: []string{
		"If you need immediate assistance, please don't hesitate to contact our support hotline: +1-800-SUPPORT.",
		"We'll keep you updated on progress. Feel free to reply with any additional details that might help.",
		"Your satisfaction is our priority. We'll work with you until this is fully resolved.",
		"Please monitor your email for updates. We'll reach out with more information soon.",
		"We appreciate your patience. Our team is fully committed to resolving this issue for you.",
	},
}
