package model

import (
	"strings"
	"time"
)

type ReportStatus string

const (
	ReportDraft      ReportStatus = "DRAFT"
	ReportInProgress ReportStatus = "IN_PROGRESS"
	ReportCompleted  ReportStatus = "COMPLETED"
	ReportApproved   ReportStatus = "APPROVED"
)

// Customer is a value embedded in reports and quotes. It has no lifecycle of
// its own; every create assigns it a fresh id.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type CustomerInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

func (in *CustomerInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
}

func (in CustomerInput) Customer(id string) Customer {
	return Customer{ID: id, Name: in.Name, Email: in.Email, Phone: in.Phone, Address: in.Address}
}

// Author identifies the organization, department and roofer that own a
// report or quote.
type Author struct {
	OrgID        string `json:"orgId"`
	DepartmentID string `json:"departmentId"`
	RooferID     string `json:"rooferId"`
}

// RoofAssessment holds the on-site assessment captured with a report.
type RoofAssessment struct {
	ContactPerson          string  `json:"contactPerson" validate:"required"`
	Phone                  string  `json:"phone" validate:"required"`
	Email                  string  `json:"email" validate:"required,email"`
	AdvisorContact         string  `json:"advisorContact" validate:"required"`
	AdvisorPhone           string  `json:"advisorPhone" validate:"required"`
	AdvisorEmail           string  `json:"advisorEmail" validate:"required,email"`
	RoofArea               float64 `json:"roofArea" validate:"gte=0"`
	RoofAge                string  `json:"roofAge,omitempty"`
	AccessConditions       string  `json:"accessConditions" validate:"required"`
	FallProtection         bool    `json:"fallProtection"`
	TechnicalExecution     string  `json:"technicalExecution" validate:"required"`
	Drainage               string  `json:"drainage" validate:"required"`
	Edges                  string  `json:"edges" validate:"required"`
	Skylights              string  `json:"skylights" validate:"required"`
	TechnicalInstallations string  `json:"technicalInstallations" validate:"required"`
	InsulationType         string  `json:"insulationType" validate:"required"`
	GreenRoof              bool    `json:"greenRoof"`
	SolarPanels            bool    `json:"solarPanels"`
	SolarPanelsDescription string  `json:"solarPanelsDescription,omitempty"`
	NoxReduction           bool    `json:"noxReduction"`
	RainwaterCollection    bool    `json:"rainwaterCollection"`
	RecreationalAreas      bool    `json:"recreationalAreas"`
	EconomicAssessment     string  `json:"economicAssessment,omitempty"`
}

func (a *RoofAssessment) Normalize() {
	for _, s := range []*string{
		&a.ContactPerson, &a.Phone, &a.Email, &a.AdvisorContact, &a.AdvisorPhone,
		&a.AdvisorEmail, &a.RoofAge, &a.AccessConditions, &a.TechnicalExecution,
		&a.Drainage, &a.Edges, &a.Skylights, &a.TechnicalInstallations,
		&a.InsulationType, &a.SolarPanelsDescription, &a.EconomicAssessment,
	} {
		*s = strings.TrimSpace(*s)
	}
}

type InspectionReport struct {
	ID              string       `json:"id"`
	OrgID           string       `json:"orgId"`
	DepartmentID    string       `json:"departmentId"`
	RooferID        string       `json:"rooferId"`
	Customer        Customer     `json:"customer"`
	Address         string       `json:"address"`
	RoofType        string       `json:"roofType"`
	Status          ReportStatus `json:"status"`
	Findings        string       `json:"findings"`
	Recommendations string       `json:"recommendations"`
	Photos          []string     `json:"photos"`
	RoofAssessment
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *InspectionReport) Author() Author {
	return Author{OrgID: r.OrgID, DepartmentID: r.DepartmentID, RooferID: r.RooferID}
}

type ReportInput struct {
	Customer        CustomerInput `json:"customer"`
	Address         string        `json:"address" validate:"required"`
	RoofType        string        `json:"roofType" validate:"required"`
	Findings        string        `json:"findings" validate:"required"`
	Recommendations string        `json:"recommendations" validate:"required"`
	Photos          []string      `json:"photos" validate:"dive,url"`
	RoofAssessment
}

func (in *ReportInput) Normalize() {
	in.Customer.Normalize()
	in.Address = strings.TrimSpace(in.Address)
	in.RoofType = strings.TrimSpace(in.RoofType)
	in.Findings = strings.TrimSpace(in.Findings)
	in.Recommendations = strings.TrimSpace(in.Recommendations)
	for i := range in.Photos {
		in.Photos[i] = strings.TrimSpace(in.Photos[i])
	}
	if in.Photos == nil {
		in.Photos = []string{}
	}
	in.RoofAssessment.Normalize()
}

// NewInspectionReport builds a draft report owned by author.
func NewInspectionReport(id string, author Author, in ReportInput, now time.Time, newID func() string) InspectionReport {
	photos := make([]string, len(in.Photos))
	copy(photos, in.Photos)

	return InspectionReport{
		ID:              id,
		OrgID:           author.OrgID,
		DepartmentID:    author.DepartmentID,
		RooferID:        author.RooferID,
		Customer:        in.Customer.Customer(newID()),
		Address:         in.Address,
		RoofType:        in.RoofType,
		Status:          ReportDraft,
		Findings:        in.Findings,
		Recommendations: in.Recommendations,
		Photos:          photos,
		RoofAssessment:  in.RoofAssessment,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

type ReportPatch struct {
	Customer        *CustomerInput `json:"customer,omitempty"`
	Address         *string        `json:"address,omitempty" validate:"omitnil,required"`
	RoofType        *string        `json:"roofType,omitempty" validate:"omitnil,required"`
	Status          *ReportStatus  `json:"status,omitempty" validate:"omitnil,oneof=DRAFT IN_PROGRESS COMPLETED APPROVED"`
	Findings        *string        `json:"findings,omitempty" validate:"omitnil,required"`
	Recommendations *string        `json:"recommendations,omitempty" validate:"omitnil,required"`
	Photos          *[]string      `json:"photos,omitempty" validate:"omitnil,dive,url"`
	RoofAssessmentPatch
}

func (p *ReportPatch) Normalize() {
	if p.Customer != nil {
		p.Customer.Normalize()
	}
	trimPtr(p.Address)
	trimPtr(p.RoofType)
	trimPtr(p.Findings)
	trimPtr(p.Recommendations)
	if p.Photos != nil {
		for i := range *p.Photos {
			(*p.Photos)[i] = strings.TrimSpace((*p.Photos)[i])
		}
	}
	p.RoofAssessmentPatch.Normalize()
}

// RoofAssessmentPatch mirrors RoofAssessment with optional fields so that a
// patch can touch a single assessment entry.
type RoofAssessmentPatch struct {
	ContactPerson          *string  `json:"contactPerson,omitempty" validate:"omitnil,required"`
	Phone                  *string  `json:"phone,omitempty" validate:"omitnil,required"`
	Email                  *string  `json:"email,omitempty" validate:"omitnil,required,email"`
	AdvisorContact         *string  `json:"advisorContact,omitempty" validate:"omitnil,required"`
	AdvisorPhone           *string  `json:"advisorPhone,omitempty" validate:"omitnil,required"`
	AdvisorEmail           *string  `json:"advisorEmail,omitempty" validate:"omitnil,required,email"`
	RoofArea               *float64 `json:"roofArea,omitempty" validate:"omitnil,gte=0"`
	RoofAge                *string  `json:"roofAge,omitempty"`
	AccessConditions       *string  `json:"accessConditions,omitempty" validate:"omitnil,required"`
	FallProtection         *bool    `json:"fallProtection,omitempty"`
	TechnicalExecution     *string  `json:"technicalExecution,omitempty" validate:"omitnil,required"`
	Drainage               *string  `json:"drainage,omitempty" validate:"omitnil,required"`
	Edges                  *string  `json:"edges,omitempty" validate:"omitnil,required"`
	Skylights              *string  `json:"skylights,omitempty" validate:"omitnil,required"`
	TechnicalInstallations *string  `json:"technicalInstallations,omitempty" validate:"omitnil,required"`
	InsulationType         *string  `json:"insulationType,omitempty" validate:"omitnil,required"`
	GreenRoof              *bool    `json:"greenRoof,omitempty"`
	SolarPanels            *bool    `json:"solarPanels,omitempty"`
	SolarPanelsDescription *string  `json:"solarPanelsDescription,omitempty"`
	NoxReduction           *bool    `json:"noxReduction,omitempty"`
	RainwaterCollection    *bool    `json:"rainwaterCollection,omitempty"`
	RecreationalAreas      *bool    `json:"recreationalAreas,omitempty"`
	EconomicAssessment     *string  `json:"economicAssessment,omitempty"`
}

func (p *RoofAssessmentPatch) Normalize() {
	for _, s := range []*string{
		p.ContactPerson, p.Phone, p.Email, p.AdvisorContact, p.AdvisorPhone,
		p.AdvisorEmail, p.RoofAge, p.AccessConditions, p.TechnicalExecution,
		p.Drainage, p.Edges, p.Skylights, p.TechnicalInstallations,
		p.InsulationType, p.SolarPanelsDescription, p.EconomicAssessment,
	} {
		trimPtr(s)
	}
}

func (a *RoofAssessment) Apply(p RoofAssessmentPatch) {
	setIf(&a.ContactPerson, p.ContactPerson)
	setIf(&a.Phone, p.Phone)
	setIf(&a.Email, p.Email)
	setIf(&a.AdvisorContact, p.AdvisorContact)
	setIf(&a.AdvisorPhone, p.AdvisorPhone)
	setIf(&a.AdvisorEmail, p.AdvisorEmail)
	setIf(&a.RoofArea, p.RoofArea)
	setIf(&a.RoofAge, p.RoofAge)
	setIf(&a.AccessConditions, p.AccessConditions)
	setIf(&a.FallProtection, p.FallProtection)
	setIf(&a.TechnicalExecution, p.TechnicalExecution)
	setIf(&a.Drainage, p.Drainage)
	setIf(&a.Edges, p.Edges)
	setIf(&a.Skylights, p.Skylights)
	setIf(&a.TechnicalInstallations, p.TechnicalInstallations)
	setIf(&a.InsulationType, p.InsulationType)
	setIf(&a.GreenRoof, p.GreenRoof)
	setIf(&a.SolarPanels, p.SolarPanels)
	setIf(&a.SolarPanelsDescription, p.SolarPanelsDescription)
	setIf(&a.NoxReduction, p.NoxReduction)
	setIf(&a.RainwaterCollection, p.RainwaterCollection)
	setIf(&a.RecreationalAreas, p.RecreationalAreas)
	setIf(&a.EconomicAssessment, p.EconomicAssessment)
}

func (r *InspectionReport) Apply(p ReportPatch) {
	if p.Customer != nil {
		r.Customer = p.Customer.Customer(r.Customer.ID)
	}
	setIf(&r.Address, p.Address)
	setIf(&r.RoofType, p.RoofType)
	setIf(&r.Status, p.Status)
	setIf(&r.Findings, p.Findings)
	setIf(&r.Recommendations, p.Recommendations)
	if p.Photos != nil {
		r.Photos = append([]string{}, (*p.Photos)...)
	}
	r.RoofAssessment.Apply(p.RoofAssessmentPatch)
}
