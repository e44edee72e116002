// Package rbac evaluates role based access for the compliance platform.
//
// Two kinds of capability are checked:
//
//   - Page capability: a static allow-list per protected page. Pages without
//     a list are open to every role.
//   - Permission capability: a role by permission matrix seeded from a policy
//     and mutated only through Evaluator.TogglePermission.
//
// The owner role holds the whole catalog implicitly. Its grants are never
// stored and can not be toggled.
//
// # Basic Usage
//
//	grants := memory.NewGrantStore()
//	if err := rbac.Seed(grants, rbac.DefaultPolicy()); err != nil {
//	    return err
//	}
//	ev := rbac.NewEvaluator(grants)
//
//	ok, err := ev.HasPermission(model.RoleBrewer, model.PermissionApproveForms)
//
// # Policy Files
//
// Default grants can be loaded from YAML:
//
//	roles:
//	  COMPLIANCE_OFFICER: [view_public, view_internal, approve_forms]
//	  BREWER: [view_public, submit_forms]
package rbac
