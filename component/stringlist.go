package component

import "strings"

// StringList stores n strings as NUL-separated UTF-8 bytes (spec.md §4.2).
// Unlike StringVector it carries no offset table, so the payload is split
// into its strings once, at construction, and Get indexes the result; it
// exists for small, rarely-indexed string sets
// such as layer comments or metadata labels.
type StringList struct {
	n     int
	parts []string
}

// NewStringList parses a StringList payload. data is the component's full
// byte range as declared by its BOM entry; n is the BOM entry's Param1.
func NewStringList(data []byte, n int) *StringList {
	parts := strings.Split(string(data), "\x00")
	if len(parts) > n {
		parts = parts[:n]
	}

	return &StringList{n: n, parts: parts}
}

// Len returns the number of strings.
func (s *StringList) Len() int { return s.n }

// Get returns the i-th string, or "", false if i is out of range.
func (s *StringList) Get(i int) (string, bool) {
	if i < 0 || i >= len(s.parts) {
		return "", false
	}

	return s.parts[i], true
}

// All returns every string in order. The returned slice must not be mutated.
func (s *StringList) All() []string { return s.parts }
