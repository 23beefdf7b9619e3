package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/roofdesk/internal/domain"
	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists entities through GORM. Listings are newest first.
type GormStore struct {
	db    *gorm.DB
	clock *Clock
	newID func() string
}

var (
	_ Store  = (*GormStore)(nil)
	_ Seeder = (*GormStore)(nil)
)

func NewGormStore(db *gorm.DB, clock *Clock) *GormStore {
	if clock == nil {
		clock = NewClock(DefaultPrecision)
	}
	return &GormStore{db: db, clock: clock, newID: newID}
}

// Migrate creates or updates every table the store uses.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(allRows()...); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// DB returns the underlying database connection
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) HasData(ctx context.Context) (bool, error) {
	var orgs, users int64
	if err := s.db.WithContext(ctx).Model(&organization{}).Count(&orgs).Error; err != nil {
		return false, fmt.Errorf("counting organizations: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&user{}).Count(&users).Error; err != nil {
		return false, fmt.Errorf("counting users: %w", err)
	}
	return orgs > 0 || users > 0, nil
}

// Import writes ds in one transaction, keeping ids and timestamps as given.
func (s *GormStore) Import(ctx context.Context, ds model.Dataset) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, o := range ds.Organizations {
			row := organizationRow(o)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("importing organization %s: %w", o.ID, err)
			}
			s.clock.observe(o.UpdatedAt)
		}
		for _, d := range ds.Departments {
			row := departmentRow(d)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("importing department %s: %w", d.ID, err)
			}
			s.clock.observe(d.UpdatedAt)
		}
		for _, u := range ds.Users {
			row := userRow(u)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("importing user %s: %w", u.UID, err)
			}
			s.clock.observe(u.UpdatedAt)
		}
		for _, r := range ds.Reports {
			row := reportRow(r)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("importing report %s: %w", r.ID, err)
			}
			s.clock.observe(r.UpdatedAt)
		}
		for _, q := range ds.Quotes {
			row := quoteRow(q)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("importing quote %s: %w", q.ID, err)
			}
			s.clock.observe(q.UpdatedAt)
		}
		for _, t := range ds.APITokens {
			row := apiTokenRow(t)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("importing api token %s: %w", t.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// Organizations

func (s *GormStore) ListOrganizations(ctx context.Context) ([]model.Organization, error) {
	var rows []organization
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find organizations: %w", err)
	}
	out := make([]model.Organization, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.entity())
	}
	return out, nil
}

func (s *GormStore) GetOrganization(ctx context.Context, id string) (*model.Organization, error) {
	var row organization
	found, err := s.first(ctx, &row, "id = ?", id)
	if err != nil || !found {
		return nil, wrap("finding organization", err)
	}
	o := row.entity()
	return &o, nil
}

func (s *GormStore) CreateOrganization(ctx context.Context, in model.OrganizationInput) (*model.Organization, error) {
	o := model.NewOrganization(s.newID(), in, s.clock.Now())
	row := organizationRow(o)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("creating organization: %w", translate(err))
	}
	return &o, nil
}

func (s *GormStore) UpdateOrganization(ctx context.Context, id string, patch model.OrganizationPatch) (*model.Organization, error) {
	var out model.Organization
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row organization
		if err := lockFirst(tx, &row, "id = ?", id); err != nil {
			return notFound(err, domain.ErrOrganizationNotFound)
		}
		out = row.entity()
		out.Apply(patch)
		out.UpdatedAt = s.clock.Now()
		updated := organizationRow(out)
		return tx.Save(&updated).Error
	})
	if err != nil {
		return nil, fmt.Errorf("updating organization: %w", translate(err))
	}
	return &out, nil
}

// Departments

func (s *GormStore) ListDepartments(ctx context.Context, orgID string) ([]model.Department, error) {
	q := s.db.WithContext(ctx).Order("created_at desc")
	if orgID != "" {
		q = q.Where("org_id = ?", orgID)
	}
	var rows []department
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find departments: %w", err)
	}
	out := make([]model.Department, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.entity())
	}
	return out, nil
}

func (s *GormStore) GetDepartment(ctx context.Context, orgID, id string) (*model.Department, error) {
	var row department
	found, err := s.first(ctx, &row, "id = ?", id)
	if err != nil || !found {
		return nil, wrap("finding department", err)
	}
	if orgID != "" && row.OrgID != orgID {
		return nil, nil
	}
	d := row.entity()
	return &d, nil
}

func (s *GormStore) CreateDepartment(ctx context.Context, orgID string, in model.DepartmentInput) (*model.Department, error) {
	var out model.Department
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var org organization
		if err := tx.First(&org, "id = ?", orgID).Error; err != nil {
			return notFound(err, domain.ErrOrganizationNotFound)
		}
		out = model.NewDepartment(s.newID(), orgID, in, s.clock.Now())
		row := departmentRow(out)
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, fmt.Errorf("creating department: %w", translate(err))
	}
	return &out, nil
}

func (s *GormStore) UpdateDepartment(ctx context.Context, id string, patch model.DepartmentPatch) (*model.Department, error) {
	var out model.Department
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row department
		if err := lockFirst(tx, &row, "id = ?", id); err != nil {
			return notFound(err, domain.ErrDepartmentNotFound)
		}
		out = row.entity()
		out.Apply(patch)
		out.UpdatedAt = s.clock.Now()
		updated := departmentRow(out)
		return tx.Save(&updated).Error
	})
	if err != nil {
		return nil, fmt.Errorf("updating department: %w", translate(err))
	}
	return &out, nil
}

// Users

func (s *GormStore) ListUsers(ctx context.Context, filter UserFilter) ([]model.User, error) {
	q := s.db.WithContext(ctx).Order("created_at desc")
	if filter.OrgID != "" {
		q = q.Where("org_id = ?", filter.OrgID)
	}
	if filter.DepartmentID != "" {
		q = q.Where("department_id = ?", filter.DepartmentID)
	}
	var rows []user
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	out := make([]model.User, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.entity())
	}
	return out, nil
}

func (s *GormStore) GetUser(ctx context.Context, uid string) (*model.User, error) {
	var row user
	found, err := s.first(ctx, &row, "uid = ?", uid)
	if err != nil || !found {
		return nil, wrap("finding user", err)
	}
	u := row.entity()
	return &u, nil
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var row user
	found, err := s.first(ctx, &row, "email = ?", email)
	if err != nil || !found {
		return nil, wrap("finding user by email", err)
	}
	u := row.entity()
	return &u, nil
}

func (s *GormStore) CreateUser(ctx context.Context, in model.UserInput) (*model.User, error) {
	u := model.NewUser(s.newID(), in, s.clock.Now())
	row := userRow(u)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		err = translate(err)
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return &u, nil
}

func (s *GormStore) UpdateUser(ctx context.Context, uid string, patch model.UserPatch) (*model.User, error) {
	var out model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row user
		if err := lockFirst(tx, &row, "uid = ?", uid); err != nil {
			return notFound(err, domain.ErrUserNotFound)
		}
		out = row.entity()
		out.Apply(patch)
		out.UpdatedAt = s.clock.Now()
		updated := userRow(out)
		return tx.Save(&updated).Error
	})
	if err != nil {
		err = translate(err)
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return &out, nil
}

// Inspection reports

func (s *GormStore) ListReports(ctx context.Context, filter ScopeFilter) ([]model.InspectionReport, error) {
	var rows []inspectionReport
	if err := s.scoped(ctx, filter).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find reports: %w", err)
	}
	out := make([]model.InspectionReport, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.entity())
	}
	return out, nil
}

func (s *GormStore) GetReport(ctx context.Context, id string) (*model.InspectionReport, error) {
	var row inspectionReport
	found, err := s.first(ctx, &row, "id = ?", id)
	if err != nil || !found {
		return nil, wrap("finding report", err)
	}
	r := row.entity()
	return &r, nil
}

func (s *GormStore) CreateReport(ctx context.Context, author model.Author, in model.ReportInput) (*model.InspectionReport, error) {
	r := model.NewInspectionReport(s.newID(), author, in, s.clock.Now(), s.newID)
	row := reportRow(r)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("creating report: %w", translate(err))
	}
	return &r, nil
}

func (s *GormStore) UpdateReport(ctx context.Context, id string, patch model.ReportPatch) (*model.InspectionReport, error) {
	var out model.InspectionReport
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row inspectionReport
		if err := lockFirst(tx, &row, "id = ?", id); err != nil {
			return notFound(err, domain.ErrReportNotFound)
		}
		out = row.entity()
		out.Apply(patch)
		out.UpdatedAt = s.clock.Now()
		updated := reportRow(out)
		return tx.Save(&updated).Error
	})
	if err != nil {
		return nil, fmt.Errorf("updating report: %w", translate(err))
	}
	return &out, nil
}

// Quotes

func (s *GormStore) ListQuotes(ctx context.Context, filter ScopeFilter) ([]model.Quote, error) {
	var rows []quote
	if err := s.scoped(ctx, filter).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find quotes: %w", err)
	}
	out := make([]model.Quote, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.entity())
	}
	return out, nil
}

func (s *GormStore) GetQuote(ctx context.Context, id string) (*model.Quote, error) {
	var row quote
	found, err := s.first(ctx, &row, "id = ?", id)
	if err != nil || !found {
		return nil, wrap("finding quote", err)
	}
	q := row.entity()
	return &q, nil
}

func (s *GormStore) CreateQuote(ctx context.Context, author model.Author, in model.QuoteInput) (*model.Quote, error) {
	q, err := model.NewQuote(s.newID(), author, in, s.clock.Now(), s.newID)
	if err != nil {
		return nil, fmt.Errorf("building quote: %w: %w", domain.ErrInvalidInput, err)
	}
	row := quoteRow(q)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("creating quote: %w", translate(err))
	}
	return &q, nil
}

func (s *GormStore) UpdateQuote(ctx context.Context, id string, patch model.QuotePatch) (*model.Quote, error) {
	var out model.Quote
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row quote
		if err := lockFirst(tx, &row, "id = ?", id); err != nil {
			return notFound(err, domain.ErrQuoteNotFound)
		}
		out = row.entity()
		if err := out.Apply(patch, s.newID); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
		out.UpdatedAt = s.clock.Now()
		updated := quoteRow(out)
		return tx.Save(&updated).Error
	})
	if err != nil {
		return nil, fmt.Errorf("updating quote: %w", translate(err))
	}
	return &out, nil
}

// API tokens

func (s *GormStore) ListAPITokens(ctx context.Context) ([]model.APIToken, error) {
	var rows []apiToken
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find api tokens: %w", err)
	}
	out := make([]model.APIToken, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.entity())
	}
	return out, nil
}

func (s *GormStore) GetAPITokenByValue(ctx context.Context, token string) (*model.APIToken, error) {
	var row apiToken
	found, err := s.first(ctx, &row, "token = ?", token)
	if err != nil || !found {
		return nil, wrap("finding api token", err)
	}
	t := row.entity()
	return &t, nil
}

func (s *GormStore) CreateAPIToken(ctx context.Context, name, createdBy string) (*model.APIToken, error) {
	t, err := model.NewAPIToken(s.newID(), name, createdBy, s.clock.Now())
	if err != nil {
		return nil, err
	}
	row := apiTokenRow(t)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("creating api token: %w", translate(err))
	}
	return &t, nil
}

func (s *GormStore) RevokeAPIToken(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Model(&apiToken{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return fmt.Errorf("revoking api token: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return s.tokenMissing(ctx, id)
	}
	return nil
}

func (s *GormStore) TouchAPIToken(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Model(&apiToken{}).Where("id = ?", id).Update("last_used", s.clock.Now())
	if res.Error != nil {
		return fmt.Errorf("touching api token: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return s.tokenMissing(ctx, id)
	}
	return nil
}

// tokenMissing tells an absent token apart from an update that changed
// nothing, which some drivers report as zero affected rows.
func (s *GormStore) tokenMissing(ctx context.Context, id string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&apiToken{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("counting api tokens: %w", err)
	}
	if count == 0 {
		return domain.ErrAPITokenNotFound
	}
	return nil
}

// Email logs

func (s *GormStore) CreateEmailLog(ctx context.Context, entry model.EmailLog) (*model.EmailLog, error) {
	entry.SentAt = s.clock.Now()
	entry.ID = newULID(entry.SentAt)
	row := emailLogRow(entry)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("creating email log: %w", translate(err))
	}
	return &entry, nil
}

func (s *GormStore) ListEmailLogs(ctx context.Context) ([]model.EmailLog, error) {
	var rows []emailLog
	if err := s.db.WithContext(ctx).Order("sent_at desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find email logs: %w", err)
	}
	out := make([]model.EmailLog, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.entity())
	}
	return out, nil
}

// helpers

func (s *GormStore) scoped(ctx context.Context, f ScopeFilter) *gorm.DB {
	q := s.db.WithContext(ctx).Order("created_at desc")
	if f.OrgID != "" {
		q = q.Where("org_id = ?", f.OrgID)
	}
	if f.DepartmentID != "" {
		q = q.Where("department_id = ?", f.DepartmentID)
	}
	if f.RooferID != "" {
		q = q.Where("roofer_id = ?", f.RooferID)
	}
	return q
}

// first loads one row and reports whether it exists.
func (s *GormStore) first(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	err := s.db.WithContext(ctx).Where(query, args...).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// lockFirst reads a row for update inside tx. Dialects without row locks
// ignore the clause.
func lockFirst(tx *gorm.DB, dest any, query string, args ...any) error {
	q := tx
	if tx.Dialector.Name() != "sqlite" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return q.Where(query, args...).First(dest).Error
}

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

const pgUniqueViolation = "23505"

// translate maps driver unique violations onto domain.ErrConflict.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.Detail)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	}
	return err
}
