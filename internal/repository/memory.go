package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dangerclosesec/roofdesk/internal/domain"
	"github.com/dangerclosesec/roofdesk/internal/model"
)

// MemoryStore keeps every collection in process memory, in insertion order.
// It hands out copies so callers never share state with the store.
type MemoryStore struct {
	mu    sync.RWMutex
	clock *Clock
	newID func() string

	orgs    []model.Organization
	depts   []model.Department
	users   []model.User
	reports []model.InspectionReport
	quotes  []model.Quote
	tokens  []model.APIToken
	emails  []model.EmailLog
}

var (
	_ Store  = (*MemoryStore)(nil)
	_ Seeder = (*MemoryStore)(nil)
)

func NewMemoryStore(clock *Clock) *MemoryStore {
	if clock == nil {
		clock = NewClock(DefaultPrecision)
	}
	return &MemoryStore{clock: clock, newID: newID}
}

// NewMemoryStoreFrom returns a store preloaded with ds.
func NewMemoryStoreFrom(clock *Clock, ds model.Dataset) *MemoryStore {
	s := NewMemoryStore(clock)
	_ = s.Import(context.Background(), ds)
	return s
}

func (s *MemoryStore) HasData(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orgs) > 0 || len(s.users) > 0, nil
}

func (s *MemoryStore) Import(ctx context.Context, ds model.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range ds.Organizations {
		s.orgs = append(s.orgs, o)
		s.clock.observe(o.UpdatedAt)
	}
	for _, d := range ds.Departments {
		s.depts = append(s.depts, d)
		s.clock.observe(d.UpdatedAt)
	}
	for _, u := range ds.Users {
		s.users = append(s.users, u)
		s.clock.observe(u.UpdatedAt)
	}
	for _, r := range ds.Reports {
		s.reports = append(s.reports, cloneReport(r))
		s.clock.observe(r.UpdatedAt)
	}
	for _, q := range ds.Quotes {
		s.quotes = append(s.quotes, cloneQuote(q))
		s.clock.observe(q.UpdatedAt)
	}
	for _, t := range ds.APITokens {
		s.tokens = append(s.tokens, cloneToken(t))
	}
	return nil
}

// Organizations

func (s *MemoryStore) ListOrganizations(ctx context.Context) ([]model.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Organization{}, s.orgs...), nil
}

func (s *MemoryStore) GetOrganization(ctx context.Context, id string) (*model.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.orgIndex(id); i >= 0 {
		o := s.orgs[i]
		return &o, nil
	}
	return nil, nil
}

func (s *MemoryStore) CreateOrganization(ctx context.Context, in model.OrganizationInput) (*model.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := model.NewOrganization(s.newID(), in, s.clock.Now())
	s.orgs = append(s.orgs, o)
	return &o, nil
}

func (s *MemoryStore) UpdateOrganization(ctx context.Context, id string, patch model.OrganizationPatch) (*model.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.orgIndex(id)
	if i < 0 {
		return nil, domain.ErrOrganizationNotFound
	}
	o := s.orgs[i]
	o.Apply(patch)
	o.UpdatedAt = s.clock.Now()
	s.orgs[i] = o
	return &o, nil
}

func (s *MemoryStore) orgIndex(id string) int {
	return slices.IndexFunc(s.orgs, func(o model.Organization) bool { return o.ID == id })
}

// Departments

func (s *MemoryStore) ListDepartments(ctx context.Context, orgID string) ([]model.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Department{}
	for _, d := range s.depts {
		if orgID == "" || d.OrgID == orgID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *MemoryStore) GetDepartment(ctx context.Context, orgID, id string) (*model.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.deptIndex(id)
	if i < 0 || (orgID != "" && s.depts[i].OrgID != orgID) {
		return nil, nil
	}
	d := s.depts[i]
	return &d, nil
}

func (s *MemoryStore) CreateDepartment(ctx context.Context, orgID string, in model.DepartmentInput) (*model.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.orgIndex(orgID) < 0 {
		return nil, domain.ErrOrganizationNotFound
	}
	d := model.NewDepartment(s.newID(), orgID, in, s.clock.Now())
	s.depts = append(s.depts, d)
	return &d, nil
}

func (s *MemoryStore) UpdateDepartment(ctx context.Context, id string, patch model.DepartmentPatch) (*model.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.deptIndex(id)
	if i < 0 {
		return nil, domain.ErrDepartmentNotFound
	}
	d := s.depts[i]
	d.Apply(patch)
	d.UpdatedAt = s.clock.Now()
	s.depts[i] = d
	return &d, nil
}

func (s *MemoryStore) deptIndex(id string) int {
	return slices.IndexFunc(s.depts, func(d model.Department) bool { return d.ID == id })
}

// Users

func (s *MemoryStore) ListUsers(ctx context.Context, filter UserFilter) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.User{}
	for _, u := range s.users {
		if filter.Match(u) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *MemoryStore) GetUser(ctx context.Context, uid string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.userIndex(uid); i >= 0 {
		u := s.users[i]
		return &u, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, in model.UserInput) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(in.Email, "") {
		return nil, domain.ErrEmailAlreadyExists
	}
	u := model.NewUser(s.newID(), in, s.clock.Now())
	s.users = append(s.users, u)
	return &u, nil
}

func (s *MemoryStore) UpdateUser(ctx context.Context, uid string, patch model.UserPatch) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(uid)
	if i < 0 {
		return nil, domain.ErrUserNotFound
	}
	if patch.Email != nil && s.emailTaken(*patch.Email, uid) {
		return nil, domain.ErrEmailAlreadyExists
	}
	u := s.users[i]
	u.Apply(patch)
	u.UpdatedAt = s.clock.Now()
	s.users[i] = u
	return &u, nil
}

func (s *MemoryStore) userIndex(uid string) int {
	return slices.IndexFunc(s.users, func(u model.User) bool { return u.UID == uid })
}

func (s *MemoryStore) emailTaken(email, exceptUID string) bool {
	return slices.ContainsFunc(s.users, func(u model.User) bool {
		return u.Email == email && u.UID != exceptUID
	})
}

// Inspection reports

func (s *MemoryStore) ListReports(ctx context.Context, filter ScopeFilter) ([]model.InspectionReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.InspectionReport{}
	for _, r := range s.reports {
		if filter.Match(r.Author()) {
			out = append(out, cloneReport(r))
		}
	}
	return out, nil
}

func (s *MemoryStore) GetReport(ctx context.Context, id string) (*model.InspectionReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.reportIndex(id); i >= 0 {
		r := cloneReport(s.reports[i])
		return &r, nil
	}
	return nil, nil
}

func (s *MemoryStore) CreateReport(ctx context.Context, author model.Author, in model.ReportInput) (*model.InspectionReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := model.NewInspectionReport(s.newID(), author, in, s.clock.Now(), s.newID)
	s.reports = append(s.reports, r)
	out := cloneReport(r)
	return &out, nil
}

func (s *MemoryStore) UpdateReport(ctx context.Context, id string, patch model.ReportPatch) (*model.InspectionReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.reportIndex(id)
	if i < 0 {
		return nil, domain.ErrReportNotFound
	}
	r := cloneReport(s.reports[i])
	r.Apply(patch)
	r.UpdatedAt = s.clock.Now()
	s.reports[i] = r
	out := cloneReport(r)
	return &out, nil
}

func (s *MemoryStore) reportIndex(id string) int {
	return slices.IndexFunc(s.reports, func(r model.InspectionReport) bool { return r.ID == id })
}

// Quotes

func (s *MemoryStore) ListQuotes(ctx context.Context, filter ScopeFilter) ([]model.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Quote{}
	for _, q := range s.quotes {
		if filter.Match(q.Author()) {
			out = append(out, cloneQuote(q))
		}
	}
	return out, nil
}

func (s *MemoryStore) GetQuote(ctx context.Context, id string) (*model.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.quoteIndex(id); i >= 0 {
		q := cloneQuote(s.quotes[i])
		return &q, nil
	}
	return nil, nil
}

func (s *MemoryStore) CreateQuote(ctx context.Context, author model.Author, in model.QuoteInput) (*model.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := model.NewQuote(s.newID(), author, in, s.clock.Now(), s.newID)
	if err != nil {
		return nil, fmt.Errorf("building quote: %w: %w", domain.ErrInvalidInput, err)
	}
	s.quotes = append(s.quotes, q)
	out := cloneQuote(q)
	return &out, nil
}

func (s *MemoryStore) UpdateQuote(ctx context.Context, id string, patch model.QuotePatch) (*model.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.quoteIndex(id)
	if i < 0 {
		return nil, domain.ErrQuoteNotFound
	}
	q := cloneQuote(s.quotes[i])
	if err := q.Apply(patch, s.newID); err != nil {
		return nil, fmt.Errorf("updating quote: %w: %w", domain.ErrInvalidInput, err)
	}
	q.UpdatedAt = s.clock.Now()
	s.quotes[i] = q
	out := cloneQuote(q)
	return &out, nil
}

func (s *MemoryStore) quoteIndex(id string) int {
	return slices.IndexFunc(s.quotes, func(q model.Quote) bool { return q.ID == id })
}

// API tokens

func (s *MemoryStore) ListAPITokens(ctx context.Context) ([]model.APIToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.APIToken, 0, len(s.tokens))
	for _, t := range s.tokens {
		out = append(out, cloneToken(t))
	}
	return out, nil
}

func (s *MemoryStore) GetAPITokenByValue(ctx context.Context, token string) (*model.APIToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tokens {
		if t.Token == token {
			out := cloneToken(t)
			return &out, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CreateAPIToken(ctx context.Context, name, createdBy string) (*model.APIToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := model.NewAPIToken(s.newID(), name, createdBy, s.clock.Now())
	if err != nil {
		return nil, err
	}
	s.tokens = append(s.tokens, t)
	out := cloneToken(t)
	return &out, nil
}

func (s *MemoryStore) RevokeAPIToken(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.tokenIndex(id)
	if i < 0 {
		return domain.ErrAPITokenNotFound
	}
	s.tokens[i].IsActive = false
	return nil
}

func (s *MemoryStore) TouchAPIToken(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.tokenIndex(id)
	if i < 0 {
		return domain.ErrAPITokenNotFound
	}
	now := s.clock.Now()
	s.tokens[i].LastUsed = &now
	return nil
}

func (s *MemoryStore) tokenIndex(id string) int {
	return slices.IndexFunc(s.tokens, func(t model.APIToken) bool { return t.ID == id })
}

// Email logs

func (s *MemoryStore) CreateEmailLog(ctx context.Context, entry model.EmailLog) (*model.EmailLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.SentAt = s.clock.Now()
	entry.ID = newULID(entry.SentAt)
	s.emails = append(s.emails, entry)
	return &entry, nil
}

func (s *MemoryStore) ListEmailLogs(ctx context.Context) ([]model.EmailLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.EmailLog{}, s.emails...), nil
}

func cloneReport(r model.InspectionReport) model.InspectionReport {
	r.Photos = append([]string{}, r.Photos...)
	return r
}

func cloneQuote(q model.Quote) model.Quote {
	q.LineItems = append([]model.QuoteLineItem{}, q.LineItems...)
	return q
}

func cloneToken(t model.APIToken) model.APIToken {
	if t.LastUsed != nil {
		lu := *t.LastUsed
		t.LastUsed = &lu
	}
	return t
}
