package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendgridMessageIDHeader = "X-Message-Id"

// sendWithSendgrid hands the rendered message to the Sendgrid v3 mail API.
// Every message is tagged with its template name as a Sendgrid category.
func (s *Service) sendWithSendgrid(ctx context.Context, data EmailData, htmlContent, textContent string) error {
	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", data.To))

	message := mail.NewV3Mail().
		SetFrom(mail.NewEmail(data.FromName, data.From)).
		AddPersonalizations(p).
		AddContent(
			mail.NewContent("text/plain", textContent),
			mail.NewContent("text/html", htmlContent),
		).
		AddCategories(data.TemplateName)
	message.Subject = data.Subject

	response, err := s.sendgridClient.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sending email via Sendgrid: %w", err)
	}
	if response.StatusCode != http.StatusAccepted {
		return fmt.Errorf("sendgrid rejected %s email: status %d: %s", data.TemplateName, response.StatusCode, response.Body)
	}

	var messageID string
	if ids := response.Headers[sendgridMessageIDHeader]; len(ids) > 0 {
		messageID = ids[0]
	}
	slog.InfoContext(ctx, "Email accepted by Sendgrid",
		"to", data.To,
		"template", data.TemplateName,
		"messageID", messageID,
	)
	return nil
}
