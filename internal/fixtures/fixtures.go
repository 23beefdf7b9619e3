// Package fixtures holds the demo dataset used by the in-memory backend and
// by the seed command.
package fixtures

import (
	"time"

	"github.com/dangerclosesec/roofdesk/internal/model"
)

const (
	OrgID = "taklaget"

	DeptCopenhagen = "dept-1"
	DeptAarhus     = "dept-2"

	SuperAdminID = "super-admin-1"
	OrgAdminID   = "org-admin-1"
	Roofer1ID    = "roofer-1"
	Roofer2ID    = "roofer-2"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

// Dataset returns a fresh copy of the demo data on every call.
func Dataset() model.Dataset {
	created := ts("2024-01-01T00:00:00Z")

	return model.Dataset{
		Organizations: []model.Organization{
			{
				ID:        OrgID,
				Name:      "Taklaget ApS",
				Address:   "Hovedgade 123, 2100 København Ø",
				Phone:     "+45 12 34 56 78",
				Email:     "kontakt@taklaget.dk",
				CreatedAt: created,
				UpdatedAt: created,
			},
		},
		Departments: []model.Department{
			{ID: DeptCopenhagen, OrgID: OrgID, Name: "København", Description: "København og omegn", CreatedAt: created, UpdatedAt: created},
			{ID: DeptAarhus, OrgID: OrgID, Name: "Aarhus", Description: "Aarhus og Jylland", CreatedAt: created, UpdatedAt: created},
		},
		Users: []model.User{
			{UID: SuperAdminID, Email: "admin@taklaget.dk", Name: "Super Administrator", Role: model.RoleSuperAdmin, OrgID: OrgID, CreatedAt: created, UpdatedAt: created},
			{UID: OrgAdminID, Email: "manager@taklaget.dk", Name: "Lars Nielsen", Role: model.RoleOrgAdmin, OrgID: OrgID, CreatedAt: created, UpdatedAt: created},
			{UID: Roofer1ID, Email: "peter@taklaget.dk", Name: "Peter Hansen", Role: model.RoleRoofer, OrgID: OrgID, DepartmentID: DeptCopenhagen, CreatedAt: created, UpdatedAt: created},
			{UID: Roofer2ID, Email: "morten@taklaget.dk", Name: "Morten Andersen", Role: model.RoleRoofer, OrgID: OrgID, DepartmentID: DeptAarhus, CreatedAt: created, UpdatedAt: created},
		},
		Reports: []model.InspectionReport{
			{
				ID:           "report-1",
				OrgID:        OrgID,
				DepartmentID: DeptCopenhagen,
				RooferID:     Roofer1ID,
				Customer: model.Customer{
					ID:      "customer-1",
					Name:    "DANDY Business Park",
					Email:   "fwk@dandybusinesspark.dk",
					Phone:   "+4529815911",
					Address: "Resilience House, Lysholt Allé 10, 7100 Vejle",
				},
				Address:  "Resilience House, Lysholt Allé 10, 7100 Vejle",
				RoofType: "Tagpap",
				Status:   model.ReportCompleted,
				Findings: "Taget virker generelt i god stand, men der er detaljer omkring folder, brønde og vedligeholdelse af det grønne tag som bør efterses nærmere.",
				Recommendations: "1. Taget virker generelt i god stand, men der er detaljer omkring folder, brønde og vedligeholdelse af det grønne tag som bør efterses nærmere af en autoriseret tagdækker.\n" +
					"2. Vi vil anbefale at der laves en serviceaftale for taget således at taget løbende efterses og eventuelle fejl, mangler og slitage udbedres.\n" +
					"3. Vi vil anbefale at der udføres ekstraordinære test af fugtighed i isoleringen så eventuelle genbrug opdages i tide.\n" +
					"4. Vi anbefaler at udarbejde en ESG-handlingsplan for taget, så det kan understøtte bæredygtighedstiltag i DANDY Business Park.",
				Photos: []string{
					"https://images.pexels.com/photos/280229/pexels-photo-280229.jpeg",
					"https://images.pexels.com/photos/1396122/pexels-photo-1396122.jpeg",
					"https://images.pexels.com/photos/2219024/pexels-photo-2219024.jpeg",
					"https://images.pexels.com/photos/159045/the-interior-of-the-repair-interior-design-159045.jpeg",
				},
				RoofAssessment: model.RoofAssessment{
					ContactPerson:          "Flemming Krarup & Michael Juul Andersen",
					Phone:                  "+4529815911",
					Email:                  "fwk@dandybusinesspark.dk",
					AdvisorContact:         "Flemming Adolfsen",
					AdvisorPhone:           "+4521619540",
					AdvisorEmail:           "flemming.adolfsen@agritectum.com",
					RoofArea:               490,
					RoofAge:                "Ikke angivet",
					AccessConditions:       "Adgang med lang stige",
					FallProtection:         true,
					TechnicalExecution:     "OK",
					Drainage:               "UV tagbrønde",
					Edges:                  "OK",
					Skylights:              "Et enkelt OK",
					TechnicalInstallations: "OK",
					InsulationType:         "EPS og Mineraluld",
					GreenRoof:              true,
					SolarPanels:            true,
					SolarPanelsDescription: "2 mindre områder, limet løsning",
					EconomicAssessment:     "Økonomisk vurdering følger efter detaljeret gennemgang.",
				},
				CreatedAt: ts("2024-01-15T10:00:00Z"),
				UpdatedAt: ts("2024-01-15T14:30:00Z"),
			},
		},
		Quotes: []model.Quote{
			{
				ID:           "quote-1",
				OrgID:        OrgID,
				DepartmentID: DeptCopenhagen,
				RooferID:     Roofer1ID,
				ReportID:     "report-1",
				Customer: model.Customer{
					ID:      "customer-1",
					Name:    "Jens Olsen",
					Email:   "jens@example.com",
					Phone:   "+45 98 76 54 32",
					Address: "Nørrebrogade 45, 2200 København N",
				},
				LineItems: []model.QuoteLineItem{
					{ID: "line-1", Description: "Udskiftning af tagsten", Quantity: 20, UnitPrice: 125, Total: 2500},
					{ID: "line-2", Description: "Reparation af tagrender", Quantity: 1, UnitPrice: 1500, Total: 1500},
					{ID: "line-3", Description: "Arbejdsløn", Quantity: 8, UnitPrice: 450, Total: 3600},
				},
				Subtotal:   7600,
				Tax:        1900,
				Total:      9500,
				Currency:   model.DefaultCurrency,
				Status:     model.QuoteSent,
				ValidUntil: ts("2024-02-15T23:59:59Z"),
				CreatedAt:  ts("2024-01-16T09:00:00Z"),
				UpdatedAt:  ts("2024-01-16T11:00:00Z"),
			},
		},
		APITokens: []model.APIToken{},
	}
}
