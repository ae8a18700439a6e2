// Package datastore opens a directory of ziggurat containers as a single
// graph of layers and variables, linked by UUID and, optionally, named by
// a registry.yaml (spec.md §6.2, SPEC_FULL.md §6.2).
//
// Opening proceeds in two phases, per spec.md §9's "cyclic layer graphs"
// redesign note: every *.zigl/*.zigv file under the directory is mapped
// first, then base1/base2 UUID references are resolved by lookup against
// the now-complete set of open containers. Cycles are rejected before any
// typed wrapper is constructed; a base UUID that names no open container
// is reported as zgerr.ErrBaseNotFound while layers and variables are
// wired (with WithPartialOpen, the referring layer or variable is left
// unlinked instead).
package datastore
