package repository

import (
	"time"

	"github.com/dangerclosesec/roofdesk/internal/model"
	"gorm.io/datatypes"
)

// Row types map entities onto tables. Their type names drive the table
// names ("inspection_reports", "api_tokens", ...) so the configured table
// prefix applies through the naming strategy. Timestamps come from the
// store's Clock, never from GORM.

type organization struct {
	ID        string `gorm:"primaryKey;size:64"`
	Name      string `gorm:"not null"`
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func organizationRow(o model.Organization) organization {
	return organization{ID: o.ID, Name: o.Name, Address: o.Address, Phone: o.Phone, Email: o.Email, CreatedAt: o.CreatedAt, UpdatedAt: o.UpdatedAt}
}

func (r organization) entity() model.Organization {
	return model.Organization{ID: r.ID, Name: r.Name, Address: r.Address, Phone: r.Phone, Email: r.Email, CreatedAt: r.CreatedAt.UTC(), UpdatedAt: r.UpdatedAt.UTC()}
}

type department struct {
	ID          string `gorm:"primaryKey;size:64"`
	OrgID       string `gorm:"size:64;index;not null"`
	Name        string `gorm:"not null"`
	Description string
	CreatedAt   time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
}

func departmentRow(d model.Department) department {
	return department{ID: d.ID, OrgID: d.OrgID, Name: d.Name, Description: d.Description, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
}

func (r department) entity() model.Department {
	return model.Department{ID: r.ID, OrgID: r.OrgID, Name: r.Name, Description: r.Description, CreatedAt: r.CreatedAt.UTC(), UpdatedAt: r.UpdatedAt.UTC()}
}

type user struct {
	UID          string `gorm:"primaryKey;size:64;column:uid"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	Name         string `gorm:"not null"`
	Role         string `gorm:"size:32;not null"`
	OrgID        string `gorm:"size:64;index;not null"`
	DepartmentID string `gorm:"size:64;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

func userRow(u model.User) user {
	return user{UID: u.UID, Email: u.Email, Name: u.Name, Role: string(u.Role), OrgID: u.OrgID, DepartmentID: u.DepartmentID, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}

func (r user) entity() model.User {
	return model.User{UID: r.UID, Email: r.Email, Name: r.Name, Role: model.Role(r.Role), OrgID: r.OrgID, DepartmentID: r.DepartmentID, CreatedAt: r.CreatedAt.UTC(), UpdatedAt: r.UpdatedAt.UTC()}
}

type inspectionReport struct {
	ID              string `gorm:"primaryKey;size:64"`
	OrgID           string `gorm:"size:64;index;not null"`
	DepartmentID    string `gorm:"size:64;index"`
	RooferID        string `gorm:"size:64;index"`
	Customer        datatypes.JSONType[model.Customer]
	Address         string
	RoofType        string
	Status          string `gorm:"size:32;not null"`
	Findings        string
	Recommendations string
	Photos          datatypes.JSONSlice[string]
	Assessment      datatypes.JSONType[model.RoofAssessment]
	CreatedAt       time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false"`
}

func reportRow(r model.InspectionReport) inspectionReport {
	photos := r.Photos
	if photos == nil {
		photos = []string{}
	}
	return inspectionReport{
		ID:              r.ID,
		OrgID:           r.OrgID,
		DepartmentID:    r.DepartmentID,
		RooferID:        r.RooferID,
		Customer:        datatypes.NewJSONType(r.Customer),
		Address:         r.Address,
		RoofType:        r.RoofType,
		Status:          string(r.Status),
		Findings:        r.Findings,
		Recommendations: r.Recommendations,
		Photos:          datatypes.NewJSONSlice(photos),
		Assessment:      datatypes.NewJSONType(r.RoofAssessment),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (r inspectionReport) entity() model.InspectionReport {
	photos := []string(r.Photos)
	if photos == nil {
		photos = []string{}
	}
	return model.InspectionReport{
		ID:              r.ID,
		OrgID:           r.OrgID,
		DepartmentID:    r.DepartmentID,
		RooferID:        r.RooferID,
		Customer:        r.Customer.Data(),
		Address:         r.Address,
		RoofType:        r.RoofType,
		Status:          model.ReportStatus(r.Status),
		Findings:        r.Findings,
		Recommendations: r.Recommendations,
		Photos:          photos,
		RoofAssessment:  r.Assessment.Data(),
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
	}
}

type quote struct {
	ID           string `gorm:"primaryKey;size:64"`
	OrgID        string `gorm:"size:64;index;not null"`
	DepartmentID string `gorm:"size:64;index"`
	RooferID     string `gorm:"size:64;index"`
	ReportID     string `gorm:"size:64;index"`
	Customer     datatypes.JSONType[model.Customer]
	LineItems    datatypes.JSONSlice[model.QuoteLineItem]
	Subtotal     float64
	Tax          float64
	Total        float64
	Currency     string `gorm:"size:8"`
	Status       string `gorm:"size:32;not null"`
	ValidUntil   time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

func quoteRow(q model.Quote) quote {
	items := q.LineItems
	if items == nil {
		items = []model.QuoteLineItem{}
	}
	return quote{
		ID:           q.ID,
		OrgID:        q.OrgID,
		DepartmentID: q.DepartmentID,
		RooferID:     q.RooferID,
		ReportID:     q.ReportID,
		Customer:     datatypes.NewJSONType(q.Customer),
		LineItems:    datatypes.NewJSONSlice(items),
		Subtotal:     q.Subtotal,
		Tax:          q.Tax,
		Total:        q.Total,
		Currency:     q.Currency,
		Status:       string(q.Status),
		ValidUntil:   q.ValidUntil,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

func (r quote) entity() model.Quote {
	items := []model.QuoteLineItem(r.LineItems)
	if items == nil {
		items = []model.QuoteLineItem{}
	}
	return model.Quote{
		ID:           r.ID,
		OrgID:        r.OrgID,
		DepartmentID: r.DepartmentID,
		RooferID:     r.RooferID,
		ReportID:     r.ReportID,
		Customer:     r.Customer.Data(),
		LineItems:    items,
		Subtotal:     r.Subtotal,
		Tax:          r.Tax,
		Total:        r.Total,
		Currency:     r.Currency,
		Status:       model.QuoteStatus(r.Status),
		ValidUntil:   r.ValidUntil.UTC(),
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
}

type apiToken struct {
	ID        string `gorm:"primaryKey;size:64"`
	Name      string `gorm:"not null"`
	Token     string `gorm:"size:64;uniqueIndex;not null"`
	CreatedBy string `gorm:"size:64;index"`
	CreatedAt time.Time `gorm:"autoCreateTime:false;index"`
	LastUsed  *time.Time
	IsActive  bool
}

func apiTokenRow(t model.APIToken) apiToken {
	return apiToken{ID: t.ID, Name: t.Name, Token: t.Token, CreatedBy: t.CreatedBy, CreatedAt: t.CreatedAt, LastUsed: t.LastUsed, IsActive: t.IsActive}
}

func (r apiToken) entity() model.APIToken {
	t := model.APIToken{ID: r.ID, Name: r.Name, Token: r.Token, CreatedBy: r.CreatedBy, CreatedAt: r.CreatedAt.UTC(), IsActive: r.IsActive}
	if r.LastUsed != nil {
		lu := r.LastUsed.UTC()
		t.LastUsed = &lu
	}
	return t
}

type emailLog struct {
	ID             string `gorm:"primaryKey;size:26"`
	Type           string `gorm:"size:16;not null"`
	ReferenceID    string `gorm:"size:64;index"`
	RecipientEmail string
	Subject        string
	SentBy         string `gorm:"size:64"`
	SentAt         time.Time `gorm:"index"`
}

func emailLogRow(e model.EmailLog) emailLog {
	return emailLog{ID: e.ID, Type: string(e.Type), ReferenceID: e.ReferenceID, RecipientEmail: e.RecipientEmail, Subject: e.Subject, SentBy: e.SentBy, SentAt: e.SentAt}
}

func (r emailLog) entity() model.EmailLog {
	return model.EmailLog{ID: r.ID, Type: model.EmailType(r.Type), ReferenceID: r.ReferenceID, RecipientEmail: r.RecipientEmail, Subject: r.Subject, SentBy: r.SentBy, SentAt: r.SentAt.UTC()}
}

func allRows() []any {
	return []any{&organization{}, &department{}, &user{}, &inspectionReport{}, &quote{}, &apiToken{}, &emailLog{}}
}
