// Package app assembles the stores, domain services and HTTP server from
// configuration. The server command and the feature tests share it.
package app

import (
	"fmt"

	"github.com/facebookgo/clock"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tripleswitch/complianceos/pkg/audit"
	"github.com/tripleswitch/complianceos/pkg/config"
	"github.com/tripleswitch/complianceos/pkg/dashboard"
	"github.com/tripleswitch/complianceos/pkg/documents"
	"github.com/tripleswitch/complianceos/pkg/forms"
	"github.com/tripleswitch/complianceos/pkg/notify"
	"github.com/tripleswitch/complianceos/pkg/rbac"
	"github.com/tripleswitch/complianceos/pkg/server"
	"github.com/tripleswitch/complianceos/pkg/server/endpoints"
	"github.com/tripleswitch/complianceos/pkg/store"
	gormstore "github.com/tripleswitch/complianceos/pkg/store/gorm"
	"github.com/tripleswitch/complianceos/pkg/store/memory"
	"github.com/tripleswitch/complianceos/pkg/team"
)

// Stores is one backend for every persisted entity
type Stores struct {
	Grants      store.GrantStore
	Submissions store.SubmissionStore
	Documents   store.DocumentStore
	Users       store.UserStore
}

// MemoryStores returns empty in-process stores
func MemoryStores() Stores {
	return Stores{
		Grants:      memory.NewGrantStore(),
		Submissions: memory.NewSubmissionStore(),
		Documents:   memory.NewDocumentStore(),
		Users:       memory.NewUserStore(),
	}
}

// GormStores returns stores over a migrated Postgres database
func GormStores(db *gorm.DB) Stores {
	return Stores{
		Grants:      gormstore.NewGrantStore(db),
		Submissions: gormstore.NewSubmissionStore(db),
		Documents:   gormstore.NewDocumentStore(db),
		Users:       gormstore.NewUserStore(db),
	}
}

// Seed writes the policy grants and fills any empty store with the
// initial team, documents and submissions
func Seed(s Stores, policy rbac.Policy) error {
	if err := rbac.Seed(s.Grants, policy); err != nil {
		return err
	}

	users, err := s.Users.ListUsers()
	if err != nil {
		return fmt.Errorf("listing users: %w", err)
	}
	if len(users) == 0 {
		if err := team.Seed(s.Users); err != nil {
			return fmt.Errorf("seeding users: %w", err)
		}
	}

	docs, err := s.Documents.ListDocuments()
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}
	if len(docs) == 0 {
		if err := documents.Seed(s.Documents); err != nil {
			return fmt.Errorf("seeding documents: %w", err)
		}
	}

	subs, err := s.Submissions.ListSubmissions()
	if err != nil {
		return fmt.Errorf("listing submissions: %w", err)
	}
	if len(subs) == 0 {
		if err := forms.Seed(s.Submissions); err != nil {
			return fmt.Errorf("seeding submissions: %w", err)
		}
	}
	return nil
}

// Policy returns the grants named by cfg.PolicyFile, or the built-in ones
func Policy(cfg *config.ComplianceConfig) (rbac.Policy, error) {
	if cfg == nil || cfg.PolicyFile == "" {
		return rbac.DefaultPolicy(), nil
	}
	return rbac.LoadPolicy(cfg.PolicyFile)
}

// Options selects the collaborators of a server. Zero fields take
// in-process defaults.
type Options struct {
	Config   *config.ComplianceConfig
	Logger   *zap.Logger
	Clock    clock.Clock
	Stores   *Stores
	Notifier notify.Notifier
	Audit    audit.Recorder
	AuditLog audit.Reader
}

// New seeds the stores and returns a server with every endpoint registered
func New(opts Options) (*server.Server, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Get()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Audit == nil {
		opts.Audit = audit.Default
	}
	if opts.AuditLog == nil {
		opts.AuditLog = audit.DefaultRing
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.NewMemory(opts.Clock, cfg.NotificationTTL)
	}
	stores := MemoryStores()
	if opts.Stores != nil {
		stores = *opts.Stores
	}

	policy, err := Policy(cfg)
	if err != nil {
		return nil, err
	}
	if err := Seed(stores, policy); err != nil {
		return nil, err
	}

	registry := forms.NewRegistry(stores.Submissions).WithAudit(opts.Audit)
	docs := documents.NewRepository(stores.Documents).WithAudit(opts.Audit).WithClock(opts.Clock)
	workflows := forms.NewManager(registry, opts.Notifier, forms.Config{
		Clock:           opts.Clock,
		TickInterval:    cfg.AnalysisTickInterval,
		CompletionDelay: cfg.AnalysisCompletionDelay,
		Logger:          opts.Logger.Named("forms"),
	})

	srv := server.NewServer(server.Services{
		Evaluator: rbac.NewEvaluator(stores.Grants).WithAudit(opts.Audit),
		Workflows: workflows,
		Documents: docs,
		Users:     team.NewDirectory(stores.Users).WithAudit(opts.Audit),
		Policies:  team.NewPolicies().WithAudit(opts.Audit),
		Dashboard: dashboard.NewService(docs, registry),
		Notifier:  opts.Notifier,
		AuditLog:  opts.AuditLog,
		Audit:     opts.Audit,
	}, cfg, opts.Logger, cfg.BindAddress, fmt.Sprint(cfg.Port))
	endpoints.RegisterAll(srv)
	return srv, nil
}
