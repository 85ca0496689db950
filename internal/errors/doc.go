// Package apperrors defines structured application error types for
// ui512calc, allowing for a clear distinction between error classes
// (configuration, validation, backend mismatch) and mapping each class
// to a process exit code.
//
// Errors wrapped with WrapError use fmt.Errorf with %w and can be
// inspected with errors.Is() and errors.As().
package apperrors
