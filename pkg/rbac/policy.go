package rbac

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
)

// Policy declares the default grant set of every non-owner role
type Policy struct {
	Roles map[model.Role][]model.PermissionID `yaml:"roles"`
}

// DefaultPolicy returns the built-in grants
func DefaultPolicy() Policy {
	return Policy{Roles: map[model.Role][]model.PermissionID{
		model.RoleComplianceOfficer: {
			model.PermissionViewPublic,
			model.PermissionViewInternal,
			model.PermissionViewConfidential,
			model.PermissionViewRestricted,
			model.PermissionUploadDocs,
			model.PermissionSubmitForms,
			model.PermissionApproveForms,
			model.PermissionViewAudit,
		},
		model.RoleBreweryManager: {
			model.PermissionViewPublic,
			model.PermissionViewInternal,
			model.PermissionViewConfidential,
			model.PermissionUploadDocs,
			model.PermissionSubmitForms,
		},
		model.RoleBrewer: {
			model.PermissionViewPublic,
			model.PermissionViewInternal,
			model.PermissionSubmitForms,
		},
	}}
}

// ParsePolicy parses policy YAML from a reader. Unknown roles or permissions
// fail with ErrUnknownEnumValue; an owner entry is rejected.
func ParsePolicy(r io.Reader) (Policy, error) {
	var raw struct {
		Roles map[string][]string `yaml:"roles"`
	}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Policy{}, err
	}

	p := Policy{Roles: map[model.Role][]model.PermissionID{}}
	for name, ids := range raw.Roles {
		role, err := model.RoleString(name)
		if err != nil {
			return Policy{}, fmt.Errorf("%w: role %q", ErrUnknownEnumValue, name)
		}
		if role == model.RoleOwner {
			return Policy{}, fmt.Errorf("%w: owner grants are implicit", ErrUnauthorizedMutation)
		}
		perms := make([]model.PermissionID, 0, len(ids))
		seen := map[model.PermissionID]bool{}
		for _, id := range ids {
			perm, err := model.PermissionIDString(id)
			if err != nil {
				return Policy{}, fmt.Errorf("%w: permission %q for %s", ErrUnknownEnumValue, id, name)
			}
			if !seen[perm] {
				seen[perm] = true
				perms = append(perms, perm)
			}
		}
		p.Roles[role] = perms
	}
	return p, nil
}

// LoadPolicy reads a policy file. An empty path yields DefaultPolicy.
func LoadPolicy(path string) (Policy, error) {
	if path == "" {
		return DefaultPolicy(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Policy{}, err
	}
	defer f.Close()

	p, err := ParsePolicy(f)
	if err != nil {
		return Policy{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Seed writes the policy into grants. Roles missing from the policy get an
// empty grant set.
func Seed(grants store.GrantStore, p Policy) error {
	for _, role := range model.RoleValues() {
		if role == model.RoleOwner {
			continue
		}
		if err := grants.Replace(role, p.Roles[role]); err != nil {
			return fmt.Errorf("seeding %s: %w", role, err)
		}
	}
	return nil
}

// MarshalYAML renders the policy with wire names in role order
func (p Policy) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, role := range model.RoleValues() {
		ids, ok := p.Roles[role]
		if !ok {
			continue
		}
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, id := range ids {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: id.String()})
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: role.String()}, seq)
	}
	return map[string]*yaml.Node{"roles": node}, nil
}
