// Package forms implements the form submission state machine and the
// submission registry.
//
// A Workflow is owned by one session and moves through
// Idle → Uploading → Analyzing → Reviewing → Idle, or Idle → Approval → Idle
// when a stored submission is opened. Every operation called in the wrong
// stage fails with ErrInvalidTransition and leaves the workflow untouched.
//
// The Registry holds submitted forms and the approval decisions taken on
// them. A rejection is a two step affair: RequestReject records the intent,
// ConfirmReject applies it.
package forms
