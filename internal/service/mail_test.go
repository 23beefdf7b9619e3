package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dangerclosesec/roofdesk/internal/domain"
	"github.com/dangerclosesec/roofdesk/internal/email"
	"github.com/dangerclosesec/roofdesk/internal/fixtures"
	"github.com/dangerclosesec/roofdesk/internal/mocks"
	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/dangerclosesec/roofdesk/internal/service"
	"github.com/dangerclosesec/roofdesk/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fixtureUser(uid string) *model.User {
	for _, u := range fixtures.Dataset().Users {
		if u.UID == uid {
			return &u
		}
	}
	return nil
}

func TestSendReportEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMailStore(ctrl)
	sender := mocks.NewMockSender(ctrl)
	svc := service.NewMailService(store, sender, "Taklaget", validation.New())

	report := fixtures.Dataset().Reports[0]
	ctx := context.Background()

	store.EXPECT().GetReport(gomock.Any(), "report-1").Return(&report, nil)
	sender.EXPECT().SendEmail(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, data email.EmailData) error {
		assert.Equal(t, "kunde@example.com", data.To)
		assert.Equal(t, "Inspection Report - DANDY Business Park", data.Subject)
		assert.Equal(t, email.TemplateReport, data.TemplateName)

		td, ok := data.TemplateData.(email.ReportTemplateData)
		require.True(t, ok)
		assert.Equal(t, "Taklaget", td.SenderName)
		assert.Equal(t, "report-1", td.Report.ID)
		assert.NotEmpty(t, td.Message)
		return nil
	})
	store.EXPECT().CreateEmailLog(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry model.EmailLog) (*model.EmailLog, error) {
		assert.Equal(t, model.EmailTypeReport, entry.Type)
		assert.Equal(t, "report-1", entry.ReferenceID)
		assert.Equal(t, fixtures.Roofer1ID, entry.SentBy)
		assert.Equal(t, "Inspection Report - DANDY Business Park", entry.Subject)
		return &entry, nil
	})

	res, err := svc.SendReportEmail(ctx, fixtureUser(fixtures.Roofer1ID), service.SendReportEmailInput{
		ReportID:       "report-1",
		RecipientEmail: " kunde@example.com ",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, service.ReportEmailSent, res.Message)
}

func TestSendReportEmailHiddenReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMailStore(ctrl)
	sender := mocks.NewMockSender(ctrl)
	svc := service.NewMailService(store, sender, "Taklaget", validation.New())

	report := fixtures.Dataset().Reports[0]
	store.EXPECT().GetReport(gomock.Any(), "report-1").Return(&report, nil)

	_, err := svc.SendReportEmail(context.Background(), fixtureUser(fixtures.Roofer2ID), service.SendReportEmailInput{
		ReportID:       "report-1",
		RecipientEmail: "kunde@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestSendReportEmailValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewMailService(mocks.NewMockMailStore(ctrl), mocks.NewMockSender(ctrl), "Taklaget", validation.New())

	_, err := svc.SendReportEmail(context.Background(), fixtureUser(fixtures.Roofer1ID), service.SendReportEmailInput{
		RecipientEmail: "not-an-email",
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Report is required", verr.Fields["reportId"])
	assert.Equal(t, "Invalid email", verr.Fields["recipientEmail"])
}

func TestSendQuoteEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMailStore(ctrl)
	sender := mocks.NewMockSender(ctrl)
	svc := service.NewMailService(store, sender, "Taklaget", validation.New())

	quote := fixtures.Dataset().Quotes[0]

	store.EXPECT().GetQuote(gomock.Any(), "quote-1").Return(&quote, nil)
	sender.EXPECT().SendEmail(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, data email.EmailData) error {
		assert.Equal(t, "Tilbud", data.Subject)
		assert.Equal(t, email.TemplateQuote, data.TemplateName)

		td, ok := data.TemplateData.(email.QuoteTemplateData)
		require.True(t, ok)
		assert.Equal(t, "Se venligst tilbuddet", td.Message)
		return nil
	})
	store.EXPECT().CreateEmailLog(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))

	res, err := svc.SendQuoteEmail(context.Background(), fixtureUser(fixtures.OrgAdminID), service.SendQuoteEmailInput{
		QuoteID:        "quote-1",
		RecipientEmail: "jens@example.com",
		Subject:        "Tilbud",
		Message:        "Se venligst tilbuddet",
	})
	require.NoError(t, err)
	assert.Equal(t, service.QuoteEmailSent, res.Message)
}

func TestSendQuoteEmailDeliveryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMailStore(ctrl)
	sender := mocks.NewMockSender(ctrl)
	svc := service.NewMailService(store, sender, "Taklaget", validation.New())

	quote := fixtures.Dataset().Quotes[0]
	store.EXPECT().GetQuote(gomock.Any(), "quote-1").Return(&quote, nil)
	sender.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	_, err := svc.SendQuoteEmail(context.Background(), fixtureUser(fixtures.SuperAdminID), service.SendQuoteEmailInput{
		QuoteID:        "quote-1",
		RecipientEmail: "jens@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSendQuoteEmailMissingQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMailStore(ctrl)
	svc := service.NewMailService(store, mocks.NewMockSender(ctrl), "Taklaget", validation.New())

	store.EXPECT().GetQuote(gomock.Any(), "nope").Return(nil, nil)

	_, err := svc.SendQuoteEmail(context.Background(), fixtureUser(fixtures.SuperAdminID), service.SendQuoteEmailInput{
		QuoteID:        "nope",
		RecipientEmail: "jens@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrQuoteNotFound)
}

func TestSendEmailRejectsMultilineSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMailStore(ctrl)
	sender := mocks.NewMockSender(ctrl)
	svc := service.NewMailService(store, sender, "Taklaget", validation.New())
	ctx := context.Background()
	peter := fixtureUser(fixtures.Roofer1ID)

	_, err := svc.SendQuoteEmail(ctx, peter, service.SendQuoteEmailInput{
		QuoteID:        "quote-1",
		RecipientEmail: "jens@example.com",
		Subject:        "Quote\r\nBcc: attacker@evil.example",
	})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Subject must be a single line", verr.Fields["subject"])

	_, err = svc.SendReportEmail(ctx, peter, service.SendReportEmailInput{
		ReportID:       "report-1",
		RecipientEmail: "jens@example.com",
		Subject:        "Report\nX-Priority: 1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
