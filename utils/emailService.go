package utils

import (
	"fmt"
	"log"
	"sync"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends a single HTML email. Implementations must be safe for
// concurrent use; every trigger below calls Send from its own goroutine.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SendgridMailer delivers through the SendGrid v3 API.
type SendgridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func NewSendgridMailer(apiKey, fromEmail string) *SendgridMailer {
	return &SendgridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   sgmail.NewEmail("Ehacking School", fromEmail),
	}
}

func (m *SendgridMailer) Send(to, subject, htmlBody string) error {
	msg := sgmail.NewSingleEmail(m.from, subject, sgmail.NewEmail("", to), "", htmlBody)
	resp, err := m.client.Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// ConsoleMailer logs emails instead of sending them. Used when no SendGrid
// key is configured, and by tests to record what would have been sent.
type ConsoleMailer struct {
	mu   sync.Mutex
	Sent []SentEmail
}

type SentEmail struct {
	To      string
	Subject string
	Body    string
}

func (m *ConsoleMailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	m.Sent = append(m.Sent, SentEmail{To: to, Subject: subject, Body: htmlBody})
	m.mu.Unlock()
	log.Printf("--- Email (console) ---\nTo: %s\nSubject: %s\n", to, subject)
	return nil
}

// Messages returns a snapshot of recorded emails.
func (m *ConsoleMailer) Messages() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentEmail, len(m.Sent))
	copy(out, m.Sent)
	return out
}

// sendAsync fires the send in the background. Delivery failures are logged
// and never reach the caller; request success must not depend on email.
func sendAsync(m Mailer, to, subject, htmlBody string) {
	go func() {
		if err := m.Send(to, subject, htmlBody); err != nil {
			log.Printf("Email send error: %v", err)
		}
	}()
}

// HTML wrapper shared by all outbound emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #0A0A23; padding: 30px; text-align: center; }
			.header h1 { color: #00FF88; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A2E; line-height: 1.6; }
			.content h2 { color: #0A0A23; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #00FF88; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>EHACKING SCHOOL</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Ehacking School. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(m Mailer, email, firstName string) {
	subject := "Welcome to Ehacking School!"
	body := fmt.Sprintf(`
		<p>Welcome %s!</p>
		<p>Your account has been created successfully. Start learning today!</p>
	`, firstName)

	sendAsync(m, email, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Contact confirmation (to submitter)
func SendContactConfirmationEmail(m Mailer, email, name, message, reference string) {
	subject := "We received your message - Ehacking School"
	body := fmt.Sprintf(`
		<p>Thank you %s!</p>
		<p>We've received your message and will respond within 24 hours.</p>
		<div class="info-box">Reference: %s</div>
		<p><strong>Your message:</strong><br>%s</p>
	`, name, reference, message)

	sendAsync(m, email, subject, getEmailTemplate("Message Received", body))
}

// 3. Contact alert (to admin)
func SendContactAlertEmail(m Mailer, adminEmail, name, email, phone, category, subject, message, reference string) {
	if phone == "" {
		phone = "N/A"
	}
	if category == "" {
		category = "N/A"
	}
	body := fmt.Sprintf(`
		<p><strong>Reference:</strong> %s</p>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<p><strong>Category:</strong> %s</p>
		<p><strong>Message:</strong><br>%s</p>
	`, reference, name, email, phone, category, message)

	sendAsync(m, adminEmail, "New Contact Form Submission: "+subject, getEmailTemplate("New Contact", body))
}
