// Package ziggurat provides a read-optimized, memory-mapped columnar
// storage engine for large linguistic corpora ("datastores").
//
// A corpus is a long sequence of token positions, each annotated with one
// or more typed attributes (strings from a finite lexicon, plain
// strings, integers, sets of lexicon entries) and segmented by
// hierarchical ranges (sentences, paragraphs, documents). The engine
// provides fast random and sequential access to attribute values,
// inverted-index lookup by lexicon entry, regex/prefix/substring scans
// over lexicons, and range-containment queries, all over files that are
// mapped into the address space and never fully decoded into memory.
//
// # Core Features
//
//   - Memory-mapped container files, validated once at open time
//   - Seven block-oriented component encodings shared by every layer and
//     variable: Blob, StringList, StringVector, Vector (plain/delta/
//     compressed), Set, Index (plain/compressed) and InvertedIndex
//   - LRU block caching for vector, index and postings access
//   - UUID-linked layer/variable graphs resolved at datastore open time
//   - Name-based traversal (datastore["layer"]["variable"]) via an
//     optional registry.yaml
//
// # Basic Usage
//
// Opening a datastore directory and reading an attribute:
//
//	ds, err := ziggurat.Open("/corpora/brown")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ds.Close()
//
//	token, _ := ds.Layer("token")
//	word, _ := token.Variable("word")
//	s, _ := word.IndexedString().Get(42)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the
// datastore and container packages, for the most common case of opening
// a datastore directory wholesale. For advanced usage, such as opening a
// single container directly or working with a layer or variable's typed
// reader API, use the container, layer and variable packages directly.
package ziggurat

import (
	"github.com/ling-corp/ziggurat/container"
	"github.com/ling-corp/ziggurat/datastore"
)

// Open maps every container under dir into a single Datastore graph,
// resolving base1/base2 UUID references and, if a registry.yaml is
// present, the human-readable names it assigns to layers and variables.
//
// The returned Datastore must be closed to release its memory mappings
// and file descriptors.
func Open(dir string) (*datastore.Datastore, error) {
	return datastore.Open(dir)
}

// OpenContainer maps a single container file, validating its header and
// BOM without wiring it into a datastore graph.
//
// Use this directly when working with one container in isolation (e.g.
// inspecting a file, or building ad hoc tests); Open is the right entry
// point for a whole corpus directory.
func OpenContainer(path string) (*container.Container, error) {
	return container.Open(path)
}
