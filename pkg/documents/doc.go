// Package documents is the compliance document repository: listing with
// tag and type filters, tag editing, version revert and upload of new
// documents. Only metadata is kept; file contents are not stored.
package documents
