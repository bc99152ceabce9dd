// Package capability detects optional runtime dependencies once per process.
//
// The result of a probe is a plain boolean. Absence of a dependency is an
// expected outcome, so probes never return errors; they report false.
package capability
