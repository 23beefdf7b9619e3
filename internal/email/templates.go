package email

import (
	"github.com/dangerclosesec/roofdesk/internal/model"
)

const (
	TemplateReport = "report_email"
	TemplateQuote  = "quote_email"
)

// ReportTemplateData feeds the report_email template.
type ReportTemplateData struct {
	Message    string
	SenderName string
	Report     model.InspectionReport
}

type QuoteLineView struct {
	Description string
	Quantity    string
	UnitPrice   string
	Total       string
}

// QuoteTemplateData feeds the quote_email template. Amounts are
// preformatted in the quote's currency.
type QuoteTemplateData struct {
	Message      string
	SenderName   string
	CustomerName string
	ValidUntil   string
	Currency     string
	LineItems    []QuoteLineView
	Subtotal     string
	Tax          string
	Total        string
}

func NewQuoteTemplateData(q model.Quote, message, senderName string) QuoteTemplateData {
	lines := make([]QuoteLineView, 0, len(q.LineItems))
	for _, item := range q.LineItems {
		lines = append(lines, QuoteLineView{
			Description: item.Description,
			Quantity:    model.FormatAmount(item.Quantity),
			UnitPrice:   model.FormatAmount(item.UnitPrice),
			Total:       model.FormatAmount(item.Total),
		})
	}

	return QuoteTemplateData{
		Message:      message,
		SenderName:   senderName,
		CustomerName: q.Customer.Name,
		ValidUntil:   q.ValidUntil.Format("2006-01-02"),
		Currency:     q.Currency,
		LineItems:    lines,
		Subtotal:     model.FormatAmount(q.Subtotal),
		Tax:          model.FormatAmount(q.Tax),
		Total:        model.FormatAmount(q.Total),
	}
}
