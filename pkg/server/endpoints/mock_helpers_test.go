package endpoints

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/facebookgo/clock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tripleswitch/complianceos/pkg/audit"
	"github.com/tripleswitch/complianceos/pkg/config"
	"github.com/tripleswitch/complianceos/pkg/dashboard"
	"github.com/tripleswitch/complianceos/pkg/documents"
	"github.com/tripleswitch/complianceos/pkg/forms"
	"github.com/tripleswitch/complianceos/pkg/identity"
	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/notify"
	"github.com/tripleswitch/complianceos/pkg/rbac"
	"github.com/tripleswitch/complianceos/pkg/server"
	"github.com/tripleswitch/complianceos/pkg/store"
	gormstore "github.com/tripleswitch/complianceos/pkg/store/gorm"
	"github.com/tripleswitch/complianceos/pkg/store/memory"
	"github.com/tripleswitch/complianceos/pkg/team"
)

var (
	sarah = identity.Session{UserID: "u2", Name: "Sarah Jenkins", Email: "sarah.j@tripleswitch.com", Role: model.RoleOwner}
	dave  = identity.Session{UserID: "u3", Name: "Dave Grohl", Email: "dave@tripleswitch.com", Role: model.RoleBreweryManager}
	mike  = identity.Session{UserID: "u4", Name: "Mike Ross", Email: "mike.r@tripleswitch.com", Role: model.RoleBrewer}
)

type recorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recorder) Log(e audit.Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *recorder) ofType(id string) []audit.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []audit.Event
	for _, e := range r.events {
		if e.MessageID() == id {
			out = append(out, e)
		}
	}
	return out
}

// stores lets a test swap any store for a mock before the server is built
type stores struct {
	grants      store.GrantStore
	submissions store.SubmissionStore
	documents   store.DocumentStore
	users       store.UserStore
	auditLog    audit.Reader
}

// testEnv is a server over seeded in-memory stores and a mock clock
type testEnv struct {
	server *server.Server
	clock  *clock.Mock
	audit  *recorder
}

func newTestServer(t *testing.T) *testEnv {
	return newTestServerWith(t, stores{})
}

func newTestServerWith(t *testing.T, s stores) *testEnv {
	t.Helper()

	if s.grants == nil {
		grants := memory.NewGrantStore()
		require.NoError(t, rbac.Seed(grants, rbac.DefaultPolicy()))
		s.grants = grants
	}
	if s.submissions == nil {
		subs := memory.NewSubmissionStore()
		require.NoError(t, forms.Seed(subs))
		s.submissions = subs
	}
	if s.documents == nil {
		docs := memory.NewDocumentStore()
		require.NoError(t, documents.Seed(docs))
		s.documents = docs
	}
	if s.users == nil {
		users := memory.NewUserStore()
		require.NoError(t, team.Seed(users))
		s.users = users
	}

	env := &testEnv{clock: clock.NewMock(), audit: &recorder{}}
	env.clock.Add(time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC).Sub(env.clock.Now()))

	registry := forms.NewRegistry(s.submissions).WithAudit(env.audit)
	notifier := notify.NewMemory(env.clock, notify.DefaultTTL)
	docs := documents.NewRepository(s.documents).WithAudit(env.audit).WithClock(env.clock)
	workflows := forms.NewManager(registry, notifier, forms.Config{Clock: env.clock})
	t.Cleanup(workflows.Close)

	if s.auditLog == nil {
		ring := audit.NewRing(50)
		ring.Add(audit.NewEntry(audit.PageAccessEvent{User: "Mike Ross (u4)", Role: "BREWER", Page: "/audit"}, env.clock.Now()))
		s.auditLog = ring
	}

	env.server = server.NewServer(server.Services{
		Evaluator: rbac.NewEvaluator(s.grants).WithAudit(env.audit),
		Workflows: workflows,
		Documents: docs,
		Users:     team.NewDirectory(s.users).WithAudit(env.audit),
		Policies:  team.NewPolicies().WithAudit(env.audit),
		Dashboard: dashboard.NewService(docs, registry),
		Notifier:  notifier,
		AuditLog:  s.auditLog,
		Audit:     env.audit,
	}, config.Get(), nil, "127.0.0.1", "0")
	RegisterAll(env.server)
	return env
}

// do sends a request through the router as user, encoding body as JSON
func (e *testEnv) do(t *testing.T, method, path, user string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if user != "" {
		req.Header.Set(identity.Header, user)
	}
	w := httptest.NewRecorder()
	e.server.Router.ServeHTTP(w, req)
	return w
}

// requestWithSession builds a request already carrying a resolved session,
// for calling handler factories directly
func requestWithSession(method, url, body string, session identity.Session) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, url, reader)
	return req.WithContext(identity.Set(req.Context(), &session))
}

func withMuxVars(req *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(req, vars)
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody[map[string]ErrorBody](t, w)
	return body["error"].Code
}

// NewMockTestServer creates a server whose user directory is a gorm store
// over sqlmock, so session resolution can be asserted at the SQL level
func NewMockTestServer(t *testing.T) (*testEnv, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	require.NoError(t, err)

	return newTestServerWith(t, stores{users: gormstore.NewUserStore(gormDB)}), mock
}
