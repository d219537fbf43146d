package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"agencyhub/internal/models"
)

type EmailService interface {
	SendInvoiceEmail(to string, inv models.Invoice) error
	SendWelcomeEmail(to, companyName string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendInvoiceEmail(to string, inv models.Invoice) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Invoice %s from Nexus Agency", inv.ID))

	rows := ""
	for _, item := range inv.Items {
		rows += fmt.Sprintf("<tr><td>%s</td><td>$%.2f</td></tr>", item.Description, item.Amount)
	}
	body := fmt.Sprintf(`
		<h2>Invoice %s</h2>
		<p>Hi %s, your invoice is ready.</p>
		<table>%s</table>
		<p><strong>Total: $%.2f</strong> (due %s)</p>
		<p>Best regards,<br>Nexus Agency</p>
	`, inv.ID, inv.ClientName, rows, inv.TotalAmount, inv.DueDate.Format("Jan 2, 2006"))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send invoice email: %w", err)
	}
	return nil
}

func (s *emailService) SendWelcomeEmail(to, companyName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Welcome to Nexus Agency!")

	body := fmt.Sprintf(`
		<h2>Welcome aboard, %s!</h2>
		<p>Your client portal is ready. Log in to track tasks, approve creatives and view reports.</p>
		<p>Best regards,<br>The Nexus Agency Team</p>
	`, companyName)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}
