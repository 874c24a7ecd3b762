package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
}

func NewEmailSender(host string, port int, user, password, from, fromName string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		FromName: fromName,
	}
}

// Send delivers one plain-text reply. Replies go out as text because they
// quote the customer's own words; HTML templating buys nothing here.
func (s *EmailSender) Send(to, toName, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.From, s.FromName)
	if toName != "" {
		m.SetAddressHeader("To", to, toName)
	} else {
		m.SetHeader("To", to)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", to, err)
	}

	return nil
}
