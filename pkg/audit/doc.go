// Package audit records security and workflow events.
//
// Events are written as RFC5424 syslog lines, kept in a ring buffer that
// backs the audit page, and optionally persisted to Postgres.
//
// # Event Types
//
//   - page-access: protected page denials
//   - permission-toggle: permission matrix changes, including refused owner toggles
//   - form-submit, form-decision: the submission and approval flow
//   - document-upload, document-revert, document-tag: repository changes
//   - user-update, policy-toggle: settings changes
//
// # Usage
//
//	audit.Log(audit.PolicyToggleEvent{User: sess.String(), PolicyID: "p4", Enabled: true})
//
// Services accept a Recorder so tests can capture events; audit.Default
// forwards to Log.
package audit
