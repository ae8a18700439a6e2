// Package variable implements the four attribute-column kinds attached to
// a layer (spec.md §2 item 6, §6.3): IndexedStringVariable,
// PlainStringVariable, IntegerVariable, SetVariable. Each wraps a
// container of the matching type and validates the named components the
// shape requires before exposing its read API.
package variable
