// internal/service/mail.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dangerclosesec/roofdesk/internal/domain"
	"github.com/dangerclosesec/roofdesk/internal/email"
	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/dangerclosesec/roofdesk/internal/validation"
)

const (
	defaultReportMessage = "Please find attached your inspection report."
	defaultQuoteMessage  = "Please find your quote details below."

	ReportEmailSent = "Report email sent successfully"
	QuoteEmailSent  = "Quote email sent successfully"
)

// MailStore is the part of the store the email functions touch.
type MailStore interface {
	GetReport(ctx context.Context, id string) (*model.InspectionReport, error)
	GetQuote(ctx context.Context, id string) (*model.Quote, error)
	CreateEmailLog(ctx context.Context, entry model.EmailLog) (*model.EmailLog, error)
}

type SendReportEmailInput struct {
	ReportID       string `json:"reportId" validate:"required"`
	RecipientEmail string `json:"recipientEmail" validate:"required,email"`
	Subject        string `json:"subject" validate:"singleline"`
	Message        string `json:"message"`
}

func (in *SendReportEmailInput) Normalize() {
	in.ReportID = strings.TrimSpace(in.ReportID)
	in.RecipientEmail = strings.TrimSpace(in.RecipientEmail)
	in.Subject = strings.TrimSpace(in.Subject)
}

type SendQuoteEmailInput struct {
	QuoteID        string `json:"quoteId" validate:"required"`
	RecipientEmail string `json:"recipientEmail" validate:"required,email"`
	Subject        string `json:"subject" validate:"singleline"`
	Message        string `json:"message"`
}

func (in *SendQuoteEmailInput) Normalize() {
	in.QuoteID = strings.TrimSpace(in.QuoteID)
	in.RecipientEmail = strings.TrimSpace(in.RecipientEmail)
	in.Subject = strings.TrimSpace(in.Subject)
}

type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type MailService struct {
	store      MailStore
	sender     email.Sender
	senderName string
	validate   *validation.Validator
}

func NewMailService(store MailStore, sender email.Sender, senderName string, validate *validation.Validator) *MailService {
	return &MailService{store: store, sender: sender, senderName: senderName, validate: validate}
}

// SendReportEmail mails a summary of a visible report and records the
// delivery in the email log.
func (s *MailService) SendReportEmail(ctx context.Context, actor *model.User, in SendReportEmailInput) (*SendResult, error) {
	if err := s.validate.Check(&in); err != nil {
		return nil, err
	}

	report, err := s.store.GetReport(ctx, in.ReportID)
	if err != nil {
		return nil, fmt.Errorf("finding report: %w", err)
	}
	if report == nil || !CanSeeWork(actor, report.Author()) {
		return nil, domain.ErrReportNotFound
	}

	subject := in.Subject
	if subject == "" {
		subject = "Inspection Report - " + report.Customer.Name
	}
	message := in.Message
	if message == "" {
		message = defaultReportMessage
	}

	err = s.sender.SendEmail(ctx, email.EmailData{
		To:           in.RecipientEmail,
		Subject:      subject,
		TemplateName: email.TemplateReport,
		TemplateData: email.ReportTemplateData{
			Message:    message,
			SenderName: s.senderName,
			Report:     *report,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDeliveryFailed, err)
	}

	s.record(ctx, model.EmailLog{
		Type:           model.EmailTypeReport,
		ReferenceID:    report.ID,
		RecipientEmail: in.RecipientEmail,
		Subject:        subject,
		SentBy:         actor.UID,
	})

	return &SendResult{Success: true, Message: ReportEmailSent}, nil
}

// SendQuoteEmail mails a visible quote with its line items and totals.
func (s *MailService) SendQuoteEmail(ctx context.Context, actor *model.User, in SendQuoteEmailInput) (*SendResult, error) {
	if err := s.validate.Check(&in); err != nil {
		return nil, err
	}

	quote, err := s.store.GetQuote(ctx, in.QuoteID)
	if err != nil {
		return nil, fmt.Errorf("finding quote: %w", err)
	}
	if quote == nil || !CanSeeWork(actor, quote.Author()) {
		return nil, domain.ErrQuoteNotFound
	}

	subject := in.Subject
	if subject == "" {
		subject = "Quote - " + quote.Customer.Name
	}
	message := in.Message
	if message == "" {
		message = defaultQuoteMessage
	}

	err = s.sender.SendEmail(ctx, email.EmailData{
		To:           in.RecipientEmail,
		Subject:      subject,
		TemplateName: email.TemplateQuote,
		TemplateData: email.NewQuoteTemplateData(*quote, message, s.senderName),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDeliveryFailed, err)
	}

	s.record(ctx, model.EmailLog{
		Type:           model.EmailTypeQuote,
		ReferenceID:    quote.ID,
		RecipientEmail: in.RecipientEmail,
		Subject:        subject,
		SentBy:         actor.UID,
	})

	return &SendResult{Success: true, Message: QuoteEmailSent}, nil
}

// record writes the email log. The mail has already gone out, so a failure
// here is logged and not returned.
func (s *MailService) record(ctx context.Context, entry model.EmailLog) {
	if _, err := s.store.CreateEmailLog(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "Failed to record email log", "error", err, "type", entry.Type, "referenceID", entry.ReferenceID)
	}
}
