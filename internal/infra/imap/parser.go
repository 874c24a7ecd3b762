package imap

import (
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/emersion/go-message/mail"
)

// ParsedBody is what intake needs from a MIME message: plain text to
// classify and an extracted phone number if the sender left one.
type ParsedBody struct {
	Text  string
	Phone string
}

var phonePattern = regexp.MustCompile(`(\+?\d[\d\s().-]{7,}\d)`)

// ParseBody walks the MIME parts and returns the message as plain text.
// Plain parts win; HTML parts are only used when no plain part exists.
func ParseBody(r io.Reader) (*ParsedBody, error) {
	mr, err := mail.CreateReader(r)
	if err != nil {
		return nil, err
	}

	var plain, html string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		header, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}

		contentType, _, _ := header.ContentType()
		body, err := io.ReadAll(part.Body)
		if err != nil {
			continue
		}

		switch {
		case strings.HasPrefix(contentType, "text/plain") && plain == "":
			plain = string(body)
		case strings.HasPrefix(contentType, "text/html") && html == "":
			html = string(body)
		}
	}

	text := plain
	if text == "" && html != "" {
		text = htmlToText(html)
	}
	text = strings.TrimSpace(text)

	return &ParsedBody{
		Text:  text,
		Phone: ExtractPhone(text),
	}, nil
}

func htmlToText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	doc.Find("script, style").Remove()
	return doc.Text()
}

// ExtractPhone returns the first phone-looking run of digits in the text,
// or "" when none is found.
func ExtractPhone(text string) string {
	match := phonePattern.FindString(text)
	if match == "" {
		return ""
	}

	digits := 0
	for _, r := range match {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 8 || digits > 15 {
		return ""
	}

	return strings.TrimSpace(match)
}
