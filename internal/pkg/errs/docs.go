// Package errs provides the typed errors shared by the quotation service.
//
// Each error type pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound) with a struct carrying the
// offending parameter and an optional cause. Unwrap returns the sentinel so
// callers classify failures with errors.Is:
//
//	if errors.Is(err, errs.ErrValueIsRequired) {
//	    // precondition failed before any storage call
//	}
//
// Domain constructors, commands and the lifecycle store all report rule
// violations through these types.
package errs
