// Package identity carries the acting user through a request.
//
// A Session names a team member and the role they act under. It is threaded
// explicitly into every operation that needs it, either as a value or inside
// a context:
//
//	sess := identity.FromUser(user)
//	ctx = identity.Set(ctx, sess)
//
//	sess, ok := identity.Get(ctx)
//
// The HTTP adapter resolves the session from the X-Tripleswitch-User header
// against the team directory. That is session threading, not authentication.
package identity
