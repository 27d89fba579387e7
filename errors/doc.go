// Package errors provides standardized error handling patterns for CardKit.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, retryable), Invalid (bad input, non-retryable), and
// Fatal (programming-contract violations, stop processing).
//
// Within CardKit the distinction that matters most is Invalid versus Fatal.
// Malformed card content (unknown type tags, bad version strings, missing
// required fields) is Invalid: it is reported through warning lists and
// validation results, and parsing continues around it. Contract violations,
// such as attaching an element that already has a parent, are Fatal: they
// signal a bug in collaborator code, not bad input, and fail immediately.
//
// The classification system integrates with Go's standard error handling,
// supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	if el.Parent() != nil {
//	    return errors.ErrAlreadyAttached
//	}
//
// Wrap errors with component context:
//
//	return errors.WrapInvalid(err, "Parser", "ParseCard", "version parsing")
//
// Check classification at handling sites:
//
//	if errors.IsFatal(err) {
//	    panic(err) // logic bug, surface loudly
//	}
package errors
