// Package errors provides the classified error primitives used across classpage.
//
// A ClassifiedError carries a category, a severity and structured context. Page
// builds rely on the category to tell per-member render failures (isolated,
// recorded as degraded output) apart from sink and filesystem failures (fatal to
// the page).
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryFileSystem, "finalize page").
//		WithContext("path", path).
//		Build()
package errors
