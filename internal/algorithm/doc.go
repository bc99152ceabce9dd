// Package algorithm defines the contract every runnable unit satisfies so the
// registry can hold, order and hand out units without knowing their concrete
// types.
//
// The registry only cares about identity (ID, DisplayName) and editability.
// Everything else a unit carries, such as its group or its declared inputs,
// belongs to the unit and to the host that executes it.
package algorithm
