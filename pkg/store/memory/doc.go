// Package memory provides in-process implementations of the store interfaces.
//
// State lives for the lifetime of the process. Every store guards its state
// with a mutex and hands out copies, so callers never alias stored slices.
package memory
