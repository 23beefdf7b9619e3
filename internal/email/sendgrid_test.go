package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sendgridRequest struct {
	From struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"from"`
	Subject          string `json:"subject"`
	Personalizations []struct {
		To []struct {
			Email string `json:"email"`
		} `json:"to"`
	} `json:"personalizations"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
	Categories []string `json:"categories"`
}

func newSendgridService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := testConfig()
	cfg.Sendgrid.APIKey = "SG.test-key"

	s, err := NewEmailService(cfg, ProviderSendgrid)
	require.NoError(t, err)
	s.sendgridClient.BaseURL = srv.URL + "/v3/mail/send"
	return s
}

func TestSendWithSendgrid(t *testing.T) {
	var got sendgridRequest
	s := newSendgridService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer SG.test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("X-Message-Id", "msg-123")
		w.WriteHeader(http.StatusAccepted)
	})

	err := s.SendEmail(context.Background(), EmailData{
		To:           "jens@example.com",
		Subject:      "Quote - Jens Olsen",
		TemplateName: TemplateQuote,
		TemplateData: NewQuoteTemplateData(testQuote(), "Hello", "Taklaget Team"),
	})
	require.NoError(t, err)

	assert.Equal(t, "noreply@taklaget.dk", got.From.Email)
	assert.Equal(t, "Taklaget Team", got.From.Name)
	assert.Equal(t, "Quote - Jens Olsen", got.Subject)
	require.Len(t, got.Personalizations, 1)
	require.Len(t, got.Personalizations[0].To, 1)
	assert.Equal(t, "jens@example.com", got.Personalizations[0].To[0].Email)
	require.Len(t, got.Content, 2)
	assert.Equal(t, "text/plain", got.Content[0].Type)
	assert.Contains(t, got.Content[0].Value, "Hello")
	assert.Equal(t, "text/html", got.Content[1].Type)
	assert.Equal(t, []string{TemplateQuote}, got.Categories)
}

func TestSendWithSendgridRejected(t *testing.T) {
	s := newSendgridService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"message":"invalid from"}]}`))
	})

	err := s.SendEmail(context.Background(), EmailData{
		To:           "jens@example.com",
		Subject:      "Quote - Jens Olsen",
		TemplateName: TemplateQuote,
		TemplateData: NewQuoteTemplateData(testQuote(), "Hello", "Taklaget Team"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "invalid from")
}
