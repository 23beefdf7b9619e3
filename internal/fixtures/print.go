package fixtures

import (
	"fmt"
	"io"

	"github.com/dangerclosesec/roofdesk/internal/model"
)

// Summarize writes a human-readable overview of ds.
func Summarize(w io.Writer, ds model.Dataset) error {
	p := &printer{w: w}

	p.line("Current data:")
	p.line("Organizations: %d", len(ds.Organizations))
	p.line("Departments: %d", len(ds.Departments))
	p.line("Users: %d", len(ds.Users))
	p.line("Inspection Reports: %d", len(ds.Reports))
	p.line("Quotes: %d", len(ds.Quotes))
	p.line("API Tokens: %d", len(ds.APITokens))

	p.line("\nUsers:")
	for _, u := range ds.Users {
		p.line("- %s (%s) - %s", u.Name, u.Email, u.Role)
	}

	p.line("\nOrganizations:")
	for _, o := range ds.Organizations {
		p.line("- %s (%s)", o.Name, o.ID)
	}

	p.line("\nDepartments:")
	for _, d := range ds.Departments {
		p.line("- %s (%s)", d.Name, d.OrgID)
	}

	p.line("\nReports:")
	for _, r := range ds.Reports {
		p.line("- %s - %s (%s)", r.Customer.Name, r.Status, r.RoofType)
	}

	p.line("\nQuotes:")
	for _, q := range ds.Quotes {
		p.line("- %s - %s %s (%s)", q.Customer.Name, model.FormatAmount(q.Total), q.Currency, q.Status)
	}

	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}
