package server

import (
	"context"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/tripleswitch/complianceos/pkg/audit"
	"github.com/tripleswitch/complianceos/pkg/config"
	"github.com/tripleswitch/complianceos/pkg/dashboard"
	"github.com/tripleswitch/complianceos/pkg/documents"
	"github.com/tripleswitch/complianceos/pkg/forms"
	"github.com/tripleswitch/complianceos/pkg/notify"
	"github.com/tripleswitch/complianceos/pkg/rbac"
	"github.com/tripleswitch/complianceos/pkg/server/middleware"
	"github.com/tripleswitch/complianceos/pkg/team"
)

// Services are the domain components the HTTP adapter exposes
type Services struct {
	Evaluator *rbac.Evaluator
	Workflows *forms.Manager
	Documents *documents.Repository
	Users     *team.Directory
	Policies  *team.Policies
	Dashboard *dashboard.Service
	Notifier  notify.Notifier
	AuditLog  audit.Reader
	Audit     audit.Recorder
}

type Server struct {
	Services
	Config *config.ComplianceConfig
	Logger *zap.Logger
	Router *mux.Router
	// API routes resolve the acting session before reaching a handler
	API *mux.Router
	srv *http.Server
}

func NewServer(
	svc Services,
	cfg *config.ComplianceConfig,
	logger *zap.Logger,
	host string,
	port string,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if svc.Audit == nil {
		svc.Audit = audit.Default
	}
	if svc.AuditLog == nil {
		svc.AuditLog = audit.DefaultRing
	}

	router := mux.NewRouter().UseEncodedPath()
	router.Use(middleware.RequestID)

	api := router.NewRoute().Subrouter()
	api.Use(middleware.NewSessionResolver(svc.Users).Middleware)

	handler := handlers.RecoveryHandler(
		handlers.RecoveryLogger(zap.NewStdLog(logger)),
		handlers.PrintRecoveryStack(true),
	)(router)

	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, handler),
		Addr:    net.JoinHostPort(host, port),
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Services: svc,
		Config:   cfg,
		Logger:   logger,
		Router:   router,
		API:      api,
		srv:      srv,
	}
}

// Handler returns the full middleware chain, for in-process callers
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Addr() string {
	return s.srv.Addr
}

func (s *Server) Start() error {
	s.Logger.Info("listening", zap.String("address", s.srv.Addr))
	return s.srv.ListenAndServe()
}

// StartWithListener serves on an already bound listener
func (s *Server) StartWithListener(l net.Listener) error {
	s.Logger.Info("listening", zap.String("address", l.Addr().String()))
	return s.srv.Serve(l)
}

// Shutdown stops accepting requests and closes the workflow manager once
// in-flight requests finish
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.srv.Shutdown(ctx)
	if s.Workflows != nil {
		s.Workflows.Close()
	}
	return err
}
