// Package store defines the persistence interfaces behind the compliance core.
//
// The evaluator, the form registry, the document repository and the team
// directory only talk to these interfaces, so the same call signatures work
// over the in-memory implementation (the default) and over Postgres.
//
// # Available Stores
//
//   - GrantStore: the mutable role to permission matrix
//   - SubmissionStore: form submissions, newest first
//   - DocumentStore: repository documents, newest first
//   - UserStore: the team directory
//
// # Usage
//
//	docs := memory.NewDocumentStore()
//	doc, err := docs.FetchDocument("doc-003")
//	if err != nil {
//	    if errors.Is(err, store.ErrNotFound) {
//	        // Handle not found
//	    }
//	}
package store
