// Package registry parses the optional registry.yaml name index a
// datastore directory may carry (spec.md §6.2, SPEC_FULL.md §6.2). The
// registry is read-only and advisory: a datastore with no registry file
// still opens, discovering containers by directory scan and linking them
// by UUID; the registry only supplies human-readable names for that
// UUID graph.
package registry
