// Package registry implements the algorithm provider: the component that
// assembles the catalogue a host lists and runs.
//
// A Provider draws algorithms from four channels:
//
//   - the compiled-in catalogue, in its fixed declaration order;
//   - the plotting algorithms, only when a plotting backend was detected;
//   - script definitions discovered in the scripts folder, always read-only;
//   - algorithms registered by other components through RegisterExternal.
//
// LoadAlgorithms rebuilds the first three from scratch every time it is
// called and swaps the result in only once assembly has finished. Externally
// registered algorithms live for as long as the Provider does and always come
// after the catalogue.
package registry
