// Package app wires the command line tool together: it builds the logger,
// probes for the plotting backend, installs the algorithm provider into a
// host and prints the resulting catalogue. It is decoupled from flag parsing
// so tests can drive it directly.
package app
