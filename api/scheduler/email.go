package scheduler

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// OverdueMailer delivers the one-shot alert for an application that has
// exceeded the SAPS processing limit
type OverdueMailer interface {
	SendOverdueAlert(title string, workingDaysPending int) error
}

// Mailer sends overdue-application alert emails through SendGrid. A nil
// Mailer, or one without credentials, disables the channel entirely.
type Mailer struct {
	// OwnerEmail is the destination for overdue alerts
	OwnerEmail string
}

// NewMailer returns a mailer targeting the given address, or nil when the
// address is empty so callers can skip the channel with a nil check.
func NewMailer(ownerEmail string) OverdueMailer {
	if ownerEmail == "" {
		return nil
	}
	return &Mailer{OwnerEmail: ownerEmail}
}

// SendOverdueAlert emails the owner that an application has exceeded the
// 90 working day SAPS processing limit.
func (m *Mailer) SendOverdueAlert(title string, workingDaysPending int) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		zap.S().Debug("SENDGRID_API_KEY not set, skipping overdue alert email")
		return nil
	}

	from := mail.NewEmail("Firearm Licence Tracker", "no-reply@firearm-tracker.app")
	to := mail.NewEmail("", m.OwnerEmail)
	subject := fmt.Sprintf("Application overdue: %s", title)
	plainTextContent := fmt.Sprintf(
		"%s has been pending for %d working days, which exceeds the 90 working day limit SAPS commits to for firearm applications. Consider lodging an enquiry or escalating to the provincial office.",
		title, workingDaysPending,
	)
	htmlContent := fmt.Sprintf(
		"<p><strong>%s</strong> has been pending for <strong>%d working days</strong>, which exceeds the 90 working day limit SAPS commits to for firearm applications.</p><p>Consider lodging an enquiry or escalating to the provincial office.</p>",
		title, workingDaysPending,
	)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}

	zap.S().Infow("overdue alert email sent",
		"to", m.OwnerEmail,
		"statusCode", response.StatusCode,
	)
	return nil
}
