package model

import "time"

type EmailType string

const (
	EmailTypeReport EmailType = "report"
	EmailTypeQuote  EmailType = "quote"
)

// EmailLog records one delivered report or quote email.
type EmailLog struct {
	ID             string    `json:"id"`
	Type           EmailType `json:"type"`
	ReferenceID    string    `json:"referenceId"`
	RecipientEmail string    `json:"recipientEmail"`
	Subject        string    `json:"subject"`
	SentBy         string    `json:"sentBy"`
	SentAt         time.Time `json:"sentAt"`
}

// Dataset is a full snapshot of every entity collection.
type Dataset struct {
	Organizations []Organization     `json:"organizations"`
	Departments   []Department       `json:"departments"`
	Users         []User             `json:"users"`
	Reports       []InspectionReport `json:"inspectionReports"`
	Quotes        []Quote            `json:"quotes"`
	APITokens     []APIToken         `json:"apiTokens"`
}
