// Package errors provides the classified error type used across docsite.
//
// A ClassifiedError carries a category (config, validation, links, ...), a
// severity and structured context. Errors are created through the fluent
// ErrorBuilder and presented to users by the CLI adapter, which also maps
// categories to process exit codes.
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryConfig, "failed to read config").
//		WithSeverity(errors.SeverityFatal).
//		WithContext("path", path).
//		Build()
package errors
