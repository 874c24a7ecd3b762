package imap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBodyPlainText(t *testing.T) {
	raw := "From: Jane <jane@acme.com>\r\n" +
		"To: sales@corp.example\r\n" +
		"Subject: Pricing\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"Hello, I'm interested in pricing. Call me at +1 (555) 010-0199."

	parsed, err := ParseBody(strings.NewReader(raw))

	require.NoError(t, err)
	assert.Contains(t, parsed.Text, "interested in pricing")
	assert.Equal(t, "+1 (555) 010-0199", parsed.Phone)
}

func TestParseBodyHTMLFallback(t *testing.T) {
	raw := "From: Jane <jane@acme.com>\r\n" +
		"Subject: Hi\r\n" +
		"Content-Type: text/html; charset=utf-8\r\n" +
		"\r\n" +
		"<html><head><style>p{color:red}</style></head>" +
		"<body><p>The app is <b>broken</b></p><script>alert(1)</script></body></html>"

	parsed, err := ParseBody(strings.NewReader(raw))

	require.NoError(t, err)
	assert.Contains(t, parsed.Text, "broken")
	assert.NotContains(t, parsed.Text, "alert(1)")
	assert.NotContains(t, parsed.Text, "color:red")
}

func TestParseBodyMultipartPrefersPlain(t *testing.T) {
	raw := "From: Jane <jane@acme.com>\r\n" +
		"Subject: Hi\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: multipart/alternative; boundary=BOUNDARY\r\n" +
		"\r\n" +
		"--BOUNDARY\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"plain wins\r\n" +
		"--BOUNDARY\r\n" +
		"Content-Type: text/html\r\n" +
		"\r\n" +
		"<p>html loses</p>\r\n" +
		"--BOUNDARY--\r\n"

	parsed, err := ParseBody(strings.NewReader(raw))

	require.NoError(t, err)
	assert.Equal(t, "plain wins", parsed.Text)
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"international", "reach me at +44 20 7946 0958 thanks", "+44 20 7946 0958"},
		{"dashed", "phone: 555-010-0199", "555-010-0199"},
		{"none", "no numbers here", ""},
		{"too short", "order 12345 is late", ""},
		{"too many digits", "ref 1234567890123456789012", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhone(tt.text))
		})
	}
}
