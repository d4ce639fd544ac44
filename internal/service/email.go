package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"bicirent-backend/internal/logger"
	"bicirent-backend/internal/utils"
)

type sendgridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	enabled   bool
}

// NewEmailService builds the SendGrid-backed mailer. With an empty API key
// every send becomes a logged no-op, which keeps local development working
// without credentials.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendgridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   apiKey != "",
	}
}

func (s *sendgridEmailService) send(to, toName, subject, plainText, htmlContent string) error {
	if !s.enabled {
		logger.Debug("Email sending disabled, skipping", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendgridEmailService) SendRentalReceipt(ctx context.Context, email, name, bicycleCode string, hours int32, cost utils.CostBreakdown) error {
	subject := fmt.Sprintf("Rental receipt for bicycle %s", bicycleCode)
	plainText := fmt.Sprintf(
		"Hi %s,\n\nThanks for riding with us.\n\nBicycle: %s\nDuration: %d hour(s)\nSubtotal: $%.2f\nDiscount (%.0f%%): -$%.2f\nTotal: $%.2f\n",
		name, bicycleCode, hours, cost.Subtotal, cost.DiscountPercentage, cost.Discount, cost.Total,
	)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Rental Receipt</h2>
				<p>Hi %s, thanks for riding with us.</p>
				<table>
					<tr><td>Bicycle</td><td><strong>%s</strong></td></tr>
					<tr><td>Duration</td><td>%d hour(s)</td></tr>
					<tr><td>Subtotal</td><td>$%.2f</td></tr>
					<tr><td>Discount (%.0f%%)</td><td>-$%.2f</td></tr>
					<tr><td>Total</td><td><strong>$%.2f</strong></td></tr>
				</table>
			</body>
		</html>
	`, name, bicycleCode, hours, cost.Subtotal, cost.DiscountPercentage, cost.Discount, cost.Total)

	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *sendgridEmailService) SendEventRegistrationConfirmation(ctx context.Context, email, name, eventName string, eventDate time.Time) error {
	subject := fmt.Sprintf("You're registered: %s", eventName)
	when := eventDate.Format("Monday, January 2 2006 at 15:04")
	plainText := fmt.Sprintf("Hi %s,\n\nYour spot for %s on %s is confirmed.\n", name, eventName, when)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Registration Confirmed</h2>
				<p>Hi %s, your spot for <strong>%s</strong> on %s is confirmed.</p>
			</body>
		</html>
	`, name, eventName, when)

	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *sendgridEmailService) SendMaintenanceReminder(ctx context.Context, email, bicycleCode string, due time.Time, overdue bool) error {
	state := "due"
	if overdue {
		state = "overdue"
	}
	subject := fmt.Sprintf("Maintenance %s for bicycle %s", state, bicycleCode)
	when := due.Format("January 2, 2006")
	plainText := fmt.Sprintf("Bicycle %s has maintenance %s (scheduled for %s).\n", bicycleCode, state, when)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Maintenance Reminder</h2>
				<p>Bicycle <strong>%s</strong> has maintenance %s (scheduled for %s).</p>
			</body>
		</html>
	`, bicycleCode, state, when)

	return s.send(email, "", subject, plainText, htmlContent)
}
