package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/roofdesk/internal/auth"
	"github.com/dangerclosesec/roofdesk/internal/fixtures"
	"github.com/dangerclosesec/roofdesk/internal/handler"
	"github.com/dangerclosesec/roofdesk/internal/mocks"
	"github.com/dangerclosesec/roofdesk/internal/repository"
	"github.com/dangerclosesec/roofdesk/internal/service"
	"github.com/dangerclosesec/roofdesk/internal/validation"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServer struct {
	handler http.Handler
	store   *repository.MemoryStore
	sender  *mocks.MockSender
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWith(t, handler.RouterOptions{})
}

func newTestServerWith(t *testing.T, opts handler.RouterOptions) *testServer {
	t.Helper()

	ds := fixtures.Dataset()
	store := repository.NewMemoryStoreFrom(nil, ds)
	v := validation.New()
	sender := mocks.NewMockSender(gomock.NewController(t))

	authn := auth.WithAPITokens(
		auth.NewFixtureAuthenticator(ds.Users, auth.NewMemorySessionStore(), time.Hour),
		store, store,
	)

	orgs := service.NewOrganizationService(store, v)
	users := service.NewUserService(store, v)
	reports := service.NewReportService(store, v)
	quotes := service.NewQuoteService(store, v)

	svc := handler.Services{
		Auth:          service.NewAuthService(authn, v),
		Organizations: orgs,
		Departments:   service.NewDepartmentService(store, v),
		Users:         users,
		Reports:       reports,
		Quotes:        quotes,
		Admin:         service.NewAdminService(store, v),
		Dashboard:     service.NewDashboardService(orgs, users, reports, quotes),
		Mail:          service.NewMailService(store, sender, "Taklaget", v),
	}

	return &testServer{
		handler: handler.NewRouter(svc, authn, opts),
		store:   store,
		sender:  sender,
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	if buf.Len() > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(t *testing.T, email string) string {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": "anything"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp handler.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
