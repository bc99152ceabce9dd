// Package builtin declares the algorithms compiled into the provider: the
// unconditional catalogue and the plotting algorithms that are only offered
// when a plotting backend is available on the host.
package builtin
