// Package orchestration coordinates the randomized cross-checking of the
// ui512 engines against independent reference implementations. It decouples
// the check loop from presentation via the ProgressReporter interface.
package orchestration
