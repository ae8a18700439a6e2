// Package container opens a single ziggurat file: it mmaps the file,
// validates the header and BOM (spec.md §3.2, §6.1), and offers
// name-indexed access to its components. A Container owns the memory
// mapping for its entire lifetime; every slice handed out by a component
// reader borrows from that mapping and is invalid once the container is
// closed (spec.md §5 "resource lifecycles").
package container
