package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "DRAFT"
	QuoteSent     QuoteStatus = "SENT"
	QuoteAccepted QuoteStatus = "ACCEPTED"
	QuoteRejected QuoteStatus = "REJECTED"
)

const DefaultCurrency = "DKK"

type QuoteLineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

type Quote struct {
	ID           string          `json:"id"`
	OrgID        string          `json:"orgId"`
	DepartmentID string          `json:"departmentId"`
	RooferID     string          `json:"rooferId"`
	ReportID     string          `json:"reportId,omitempty"`
	Customer     Customer        `json:"customer"`
	LineItems    []QuoteLineItem `json:"lineItems"`
	Subtotal     float64         `json:"subtotal"`
	Tax          float64         `json:"tax"`
	Total        float64         `json:"total"`
	Currency     string          `json:"currency"`
	Status       QuoteStatus     `json:"status"`
	ValidUntil   time.Time       `json:"validUntil"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func (q *Quote) Author() Author {
	return Author{OrgID: q.OrgID, DepartmentID: q.DepartmentID, RooferID: q.RooferID}
}

type QuoteLineItemInput struct {
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"min=1"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
}

type QuoteInput struct {
	ReportID   string               `json:"reportId,omitempty"`
	Customer   CustomerInput        `json:"customer"`
	LineItems  []QuoteLineItemInput `json:"lineItems" validate:"min=1,dive"`
	Tax        float64              `json:"tax" validate:"gte=0"`
	Currency   string               `json:"currency"`
	ValidUntil string               `json:"validUntil" validate:"required,isodate"`
}

func (in *QuoteInput) Normalize() {
	in.ReportID = strings.TrimSpace(in.ReportID)
	in.Customer.Normalize()
	for i := range in.LineItems {
		in.LineItems[i].Description = strings.TrimSpace(in.LineItems[i].Description)
	}
	in.Currency = strings.TrimSpace(in.Currency)
	if in.Currency == "" {
		in.Currency = DefaultCurrency
	}
	in.ValidUntil = strings.TrimSpace(in.ValidUntil)
}

// PriceLineItems expands inputs into line items with total = quantity × unitPrice.
func PriceLineItems(items []QuoteLineItemInput, newID func() string) []QuoteLineItem {
	out := make([]QuoteLineItem, 0, len(items))
	for _, item := range items {
		out = append(out, QuoteLineItem{
			ID:          newID(),
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Quantity * item.UnitPrice,
		})
	}
	return out
}

// Subtotal sums line item totals in order, starting from zero.
func Subtotal(items []QuoteLineItem) float64 {
	sum := 0.0
	for _, item := range items {
		sum += item.Total
	}
	return sum
}

// FormatAmount renders a money value in its shortest exact form, so 9500
// prints as "9500" and 62.5 as "62.5".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Reprice recomputes subtotal and total from the current line items and tax.
func (q *Quote) Reprice() {
	q.Subtotal = Subtotal(q.LineItems)
	q.Total = q.Subtotal + q.Tax
}

// NewQuote builds a priced draft quote owned by author. The referenced
// report, if any, is not checked.
func NewQuote(id string, author Author, in QuoteInput, now time.Time, newID func() string) (Quote, error) {
	validUntil, err := ParseDate(in.ValidUntil)
	if err != nil {
		return Quote{}, err
	}

	currency := in.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	q := Quote{
		ID:           id,
		OrgID:        author.OrgID,
		DepartmentID: author.DepartmentID,
		RooferID:     author.RooferID,
		ReportID:     in.ReportID,
		Customer:     in.Customer.Customer(newID()),
		LineItems:    PriceLineItems(in.LineItems, newID),
		Tax:          in.Tax,
		Currency:     currency,
		Status:       QuoteDraft,
		ValidUntil:   validUntil,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	q.Reprice()
	return q, nil
}

type QuotePatch struct {
	ReportID   *string               `json:"reportId,omitempty"`
	Customer   *CustomerInput        `json:"customer,omitempty"`
	LineItems  *[]QuoteLineItemInput `json:"lineItems,omitempty" validate:"omitnil,min=1,dive"`
	Tax        *float64              `json:"tax,omitempty" validate:"omitnil,gte=0"`
	Currency   *string               `json:"currency,omitempty" validate:"omitnil,required"`
	Status     *QuoteStatus          `json:"status,omitempty" validate:"omitnil,oneof=DRAFT SENT ACCEPTED REJECTED"`
	ValidUntil *string               `json:"validUntil,omitempty" validate:"omitnil,isodate"`
}

func (p *QuotePatch) Normalize() {
	if p.Customer != nil {
		p.Customer.Normalize()
	}
	trimPtr(p.ReportID)
	trimPtr(p.Currency)
	trimPtr(p.ValidUntil)
	if p.LineItems != nil {
		for i := range *p.LineItems {
			(*p.LineItems)[i].Description = strings.TrimSpace((*p.LineItems)[i].Description)
		}
	}
}

// Apply merges p onto q. Replacing line items or tax reprices the quote.
func (q *Quote) Apply(p QuotePatch, newID func() string) error {
	if p.ValidUntil != nil {
		validUntil, err := ParseDate(*p.ValidUntil)
		if err != nil {
			return err
		}
		q.ValidUntil = validUntil
	}
	setIf(&q.ReportID, p.ReportID)
	if p.Customer != nil {
		q.Customer = p.Customer.Customer(q.Customer.ID)
	}
	setIf(&q.Tax, p.Tax)
	setIf(&q.Currency, p.Currency)
	setIf(&q.Status, p.Status)
	if p.LineItems != nil {
		q.LineItems = PriceLineItems(*p.LineItems, newID)
	}
	if p.LineItems != nil || p.Tax != nil {
		q.Reprice()
	}
	return nil
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"}

// ParseDate accepts an RFC 3339 instant or a calendar date. Dates without a
// zone are read as UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing date %q: unsupported format", s)
}
