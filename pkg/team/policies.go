package team

import (
	"context"
	"fmt"
	"sync"

	"github.com/tripleswitch/complianceos/pkg/audit"
	"github.com/tripleswitch/complianceos/pkg/identity"
)

// SecurityPolicy is an organisation-wide switch shown in settings. Policies
// describe intent; nothing enforces them.
type SecurityPolicy struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Type        string `json:"type" yaml:"type"`
	Enabled     bool   `json:"enabled" yaml:"enabled"`
}

// DefaultPolicies returns the initial policy switches
func DefaultPolicies() []SecurityPolicy {
	return []SecurityPolicy{
		{ID: "p1", Name: "Strict Approval Mode", Description: "Require two levels of approval for all RESTRICTED documents.", Type: "approval", Enabled: true},
		{ID: "p2", Name: "External Sharing Lock", Description: "Prevent sharing of CONFIDENTIAL documents outside the organization.", Type: "security", Enabled: true},
		{ID: "p3", Name: "Audit Logging", Description: "Log every view and download action for sensitive files.", Type: "compliance", Enabled: true},
		{ID: "p4", Name: "Auto-Retention", Description: "Automatically archive documents older than 5 years.", Type: "retention", Enabled: false},
	}
}

// Policies holds the security policy switches
type Policies struct {
	mu       sync.RWMutex
	policies []SecurityPolicy
	audit    audit.Recorder
}

// NewPolicies creates Policies seeded with DefaultPolicies
func NewPolicies() *Policies {
	return &Policies{policies: DefaultPolicies(), audit: audit.Default}
}

// WithAudit sets the recorder toggles are reported to.
func (p *Policies) WithAudit(rec audit.Recorder) *Policies {
	p.audit = rec
	return p
}

// List returns the policies in display order
func (p *Policies) List() []SecurityPolicy {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]SecurityPolicy(nil), p.policies...)
}

// Toggle flips a policy and returns it
func (p *Policies) Toggle(ctx context.Context, id string) (SecurityPolicy, error) {
	p.mu.Lock()
	var (
		toggled SecurityPolicy
		found   bool
	)
	for i := range p.policies {
		if p.policies[i].ID == id {
			p.policies[i].Enabled = !p.policies[i].Enabled
			toggled, found = p.policies[i], true
			break
		}
	}
	p.mu.Unlock()

	if !found {
		return SecurityPolicy{}, fmt.Errorf("%w: %s", ErrPolicyNotFound, id)
	}
	actor, _ := identity.Get(ctx)
	p.audit.Log(audit.PolicyToggleEvent{
		User:     actor.String(),
		PolicyID: id,
		Enabled:  toggled.Enabled,
	})
	return toggled, nil
}
