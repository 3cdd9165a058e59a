package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"salesops/internal/adapter/http/handlers/mocks"
	"salesops/internal/adapter/http/middleware"
	"salesops/internal/domain/entities"
	"salesops/internal/infrastructure/metrics"
	"salesops/internal/infrastructure/realtime"
	"salesops/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var jwtSecret = []byte("routes-test")

func token(t *testing.T, role entities.Role) string {
	t.Helper()
	claims := middleware.ActorClaims{
		ID:   "u-1",
		Name: "Tester",
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	require.NoError(t, err)
	return s
}

type fixture struct {
	router   *gin.Engine
	sales    *mocks.MockISaleUseCase
	projects *mocks.MockIProjectUseCase
	audit    *mocks.MockIAuditUseCase
	metrics  *metrics.Metrics
}

func newFixture(t *testing.T) fixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	f := fixture{
		sales:    mocks.NewMockISaleUseCase(ctrl),
		projects: mocks.NewMockIProjectUseCase(ctrl),
		audit:    mocks.NewMockIAuditUseCase(ctrl),
		metrics:  metrics.New(),
	}
	f.router = NewRouter(Dependencies{
		Sales:     f.sales,
		Projects:  f.projects,
		Audit:     f.audit,
		Events:    realtime.NewHub(),
		Metrics:   f.metrics,
		JWTSecret: jwtSecret,
	})
	return f
}

func (f fixture) do(method, path, bearer, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestPublicRoutes(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/ping", "/v1/ping"} {
		w := f.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "pong")
	}

	w := f.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "salesops_http_requests_total")
}

func TestRoutes_RequireToken(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/v1/sales", "/v1/projects", "/v1/events", "/v1/audit-logs"} {
		w := f.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRoutes_ShutdownEndsEventStreams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	done := make(chan struct{})
	close(done)
	router := NewRouter(Dependencies{
		Events:    realtime.NewHub(),
		JWTSecret: jwtSecret,
		Shutdown:  done,
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, entities.RoleQC))
	w := httptest.NewRecorder()
	served := make(chan struct{})
	go func() {
		router.ServeHTTP(w, req)
		close(served)
	}()

	select {
	case <-served:
	case <-time.After(2 * time.Second):
		t.Fatal("event stream kept running after shutdown")
	}
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
}

func TestRoutes_RoleGating(t *testing.T) {
	cases := []struct {
		name   string
		role   entities.Role
		method string
		path   string
		body   string
		expect func(f fixture)
		status int
	}{
		{
			name: "account manager cannot list sales", role: entities.RoleAccountManager,
			method: http.MethodGet, path: "/v1/sales", status: http.StatusForbidden,
		},
		{
			name: "admin cannot create prospects", role: entities.RoleAdmin,
			method: http.MethodPost, path: "/v1/sales", body: `{"client_name":"A","client_phone":"1"}`, status: http.StatusForbidden,
		},
		{
			name: "sales executive lists sales", role: entities.RoleSalesExecutive,
			method: http.MethodGet, path: "/v1/sales", status: http.StatusOK,
			expect: func(f fixture) {
				f.sales.EXPECT().ListSales(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
		},
		{
			name: "sales executive cannot see projects", role: entities.RoleSalesExecutive,
			method: http.MethodGet, path: "/v1/projects", status: http.StatusForbidden,
		},
		{
			name: "backend manager lists projects", role: entities.RoleBackendManager,
			method: http.MethodGet, path: "/v1/projects", status: http.StatusOK,
			expect: func(f fixture) {
				f.projects.EXPECT().ListProjects(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
		},
		{
			name: "backend manager cannot edit checklist", role: entities.RoleBackendManager,
			method: http.MethodPut, path: "/v1/projects/p-1/checklist", body: `{"step":"work_started","done":true}`, status: http.StatusForbidden,
		},
		{
			name: "account manager cannot resolve qc", role: entities.RoleAccountManager,
			method: http.MethodPut, path: "/v1/projects/p-1/qc/q-1", body: `{"status":"Approved"}`, status: http.StatusForbidden,
		},
		{
			name: "qc resolves", role: entities.RoleQC,
			method: http.MethodPut, path: "/v1/projects/p-1/qc/q-1", body: `{"status":"Approved"}`, status: http.StatusOK,
			expect: func(f fixture) {
				f.projects.EXPECT().ResolveQCRequest(gomock.Any(), gomock.Any(), "p-1", "q-1", entities.QCStatusApproved, "").
					Return(entities.Project{ID: "p-1"}, nil)
			},
		},
		{
			name: "sales manager cannot read audit logs", role: entities.RoleSalesManager,
			method: http.MethodGet, path: "/v1/audit-logs", status: http.StatusForbidden,
		},
		{
			name: "admin reads audit logs", role: entities.RoleAdmin,
			method: http.MethodGet, path: "/v1/audit-logs?page=1", status: http.StatusOK,
			expect: func(f fixture) {
				f.audit.EXPECT().ListAuditLogs(gomock.Any(), gomock.Any(), 1, 0).Return(usecase.AuditLogPage{Page: 1}, nil)
			},
		},
		{
			name: "super admin reads audit logs", role: entities.RoleSuperAdmin,
			method: http.MethodGet, path: "/v1/audit-logs", status: http.StatusOK,
			expect: func(f fixture) {
				f.audit.EXPECT().ListAuditLogs(gomock.Any(), gomock.Any(), 0, 0).Return(usecase.AuditLogPage{Page: 1}, nil)
			},
		},
		{
			name: "sales manager toggles project status", role: entities.RoleSalesManager,
			method: http.MethodPut, path: "/v1/projects/p-1/status", body: `{"status":"Paused"}`, status: http.StatusOK,
			expect: func(f fixture) {
				f.projects.EXPECT().ToggleStatus(gomock.Any(), gomock.Any(), "p-1", entities.ProjectStatusPaused).
					Return(entities.Project{ID: "p-1"}, nil)
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			if tc.expect != nil {
				tc.expect(f)
			}
			w := f.do(tc.method, tc.path, token(t, tc.role), tc.body)
			assert.Equal(t, tc.status, w.Code, w.Body.String())
		})
	}
}

func TestRoutes_CountsPipelineErrors(t *testing.T) {
	f := newFixture(t)
	f.sales.EXPECT().PushToBackend(gomock.Any(), gomock.Any(), "s-1", gomock.Any()).
		Return(entities.Sale{}, entities.Project{}, usecase.ErrChecklistIncomplete)

	w := f.do(http.MethodPut, "/v1/sales/s-1/push", token(t, entities.RoleSalesManager), `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.PipelineErrors.WithLabelValues("validation")))
}
