// internal/service/quote.go
package service

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/roofdesk/internal/domain"
	"github.com/dangerclosesec/roofdesk/internal/model"
	"github.com/dangerclosesec/roofdesk/internal/repository"
	"github.com/dangerclosesec/roofdesk/internal/validation"
)

type QuoteService struct {
	store    repository.Store
	validate *validation.Validator
}

func NewQuoteService(store repository.Store, validate *validation.Validator) *QuoteService {
	return &QuoteService{store: store, validate: validate}
}

// List returns the quotes visible to actor, per organization for super admins.
func (s *QuoteService) List(ctx context.Context, actor *model.User) ([]model.Quote, error) {
	if !isSuperAdmin(actor) {
		return s.store.ListQuotes(ctx, WorkScope(actor))
	}

	orgs, err := s.store.ListOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	out := []model.Quote{}
	for _, org := range orgs {
		quotes, err := s.store.ListQuotes(ctx, repository.ScopeFilter{OrgID: org.ID})
		if err != nil {
			return nil, fmt.Errorf("listing quotes of %s: %w", org.ID, err)
		}
		out = append(out, quotes...)
	}
	return out, nil
}

func (s *QuoteService) Get(ctx context.Context, actor *model.User, id string) (*model.Quote, error) {
	q, err := s.store.GetQuote(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding quote: %w", err)
	}
	if q == nil || !CanSeeWork(actor, q.Author()) {
		return nil, domain.ErrQuoteNotFound
	}
	return q, nil
}

// Create prices and stores a draft quote under the caller's identity. A
// referenced report is recorded as given and not checked.
func (s *QuoteService) Create(ctx context.Context, actor *model.User, in model.QuoteInput) (*model.Quote, error) {
	if err := s.validate.Check(&in); err != nil {
		return nil, err
	}
	return s.store.CreateQuote(ctx, actor.Author(), in)
}

func (s *QuoteService) Update(ctx context.Context, actor *model.User, id string, patch model.QuotePatch) (*model.Quote, error) {
	if err := s.validate.Check(&patch); err != nil {
		return nil, err
	}
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}
	return s.store.UpdateQuote(ctx, id, patch)
}
