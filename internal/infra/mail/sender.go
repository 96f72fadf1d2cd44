package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/acsolutions-lk/energy-leads-api/internal/entity"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	if from == "" {
		from = user
	}
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendSavingsReport renders and delivers the savings report for a captured
// lead. Errors bubble up; the caller decides what a failure means.
func (s *EmailSender) SendSavingsReport(lead *entity.Lead) error {
	subject, text, html, err := BuildSavingsReport(lead)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", lead.Contact.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)
	m.AddAlternative("text/html", html)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send savings report: %w", err)
	}

	return nil
}
