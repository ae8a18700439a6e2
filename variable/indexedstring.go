package variable

import (
	"github.com/ling-corp/ziggurat/cache"
	"github.com/ling-corp/ziggurat/component"
	"github.com/ling-corp/ziggurat/container"
	"github.com/ling-corp/ziggurat/format"
	"github.com/ling-corp/ziggurat/zgerr"
)

// IndexedStringVariable attaches a lexicon-backed string attribute to a
// layer: every corpus position holds one type id into a shared lexicon
// (spec.md §6.3).
type IndexedStringVariable struct {
	c *container.Container

	n int
	v int

	lexicon       *Lexicon
	partition     *component.Vector
	lexIDStream   *cache.Vector
	invertedIndex *cache.InvertedIndex
}

// NewIndexedStringVariable wraps an already-open container, validating
// its type and required components ("Lexicon", "LexHash", "Partition",
// "LexIDStream", "LexIDIndex").
func NewIndexedStringVariable(c *container.Container) (*IndexedStringVariable, error) {
	if c.Type() != format.IndexedStringVariable {
		return nil, zgerr.ErrWrongContainerType
	}

	n := int(c.Dim1())
	v := int(c.Dim2())

	lexEntry, ok := c.Entry("Lexicon")
	if !ok {
		return nil, zgerr.ErrMissingComponent
	}
	lexData, _ := c.Payload("Lexicon")
	lex, err := component.NewStringVector(lexData, v)
	if err != nil {
		return nil, err
	}
	if lex.Len() != v {
		return nil, zgerr.ErrInvalidDimensions
	}

	hashEntry, ok := c.Entry("LexHash")
	if !ok {
		return nil, zgerr.ErrMissingComponent
	}
	hashData, _ := c.Payload("LexHash")
	lexHash, err := component.NewIndex(hashData, int(hashEntry.Param1))
	if err != nil {
		return nil, err
	}
	if lexHash.Len() != v {
		return nil, zgerr.ErrInvalidDimensions
	}

	partEntry, ok := c.Entry("Partition")
	if !ok {
		return nil, zgerr.ErrMissingComponent
	}
	partData, _ := c.Payload("Partition")
	partition, err := component.NewUncompressedVector(int(partEntry.Param1), int(partEntry.Param2), partData)
	if err != nil {
		return nil, err
	}

	streamEntry, ok := c.Entry("LexIDStream")
	if !ok {
		return nil, zgerr.ErrMissingComponent
	}
	if streamEntry.Param2 != 1 {
		return nil, zgerr.ErrInvalidDimensions
	}
	streamData, _ := c.Payload("LexIDStream")
	lexIDStream, err := newVectorFor(streamEntry, n, 1, streamData)
	if err != nil {
		return nil, err
	}

	invEntry, ok := c.Entry("LexIDIndex")
	if !ok {
		return nil, zgerr.ErrMissingComponent
	}
	invData, _ := c.Payload("LexIDIndex")
	inv, err := component.NewInvertedIndex(invData, int(invEntry.Param1), int(invEntry.Param2))
	if err != nil {
		return nil, err
	}
	if inv.NTypes() != v {
		return nil, zgerr.ErrInvalidDimensions
	}

	return &IndexedStringVariable{
		c:             c,
		n:             n,
		v:             v,
		lexicon:       NewLexicon(lex, lexHash),
		partition:     partition,
		lexIDStream:   cache.NewVector(lexIDStream),
		invertedIndex: cache.NewInvertedIndex(inv),
	}, nil
}

// newVectorFor builds the component.Vector matching a BOM entry's
// declared mode, shared by every variable kind that stores a Vector
// component whose writer chose any of the three on-disk encodings.
func newVectorFor(e interface {
	ComponentType() format.ComponentType
}, n, d int, data []byte) (*component.Vector, error) {
	switch e.ComponentType().Mode() {
	case format.ModePlain:
		return component.NewUncompressedVector(n, d, data)
	case format.ModeCompressed:
		return component.NewCompressedVector(n, d, data)
	case format.ModeDelta:
		return component.NewDeltaVector(n, d, data)
	default:
		return nil, zgerr.ErrWrongComponentShape
	}
}

// Len returns N, the number of corpus positions this variable covers.
func (v *IndexedStringVariable) Len() int { return v.n }

// NTypes returns V, the lexicon size.
func (v *IndexedStringVariable) NTypes() int { return v.v }

// Lexicon returns the shared lexicon for scans and hash lookup.
func (v *IndexedStringVariable) Lexicon() *Lexicon { return v.lexicon }

// InvertedIndex returns the postings index for lexicon type ids.
func (v *IndexedStringVariable) InvertedIndex() *cache.InvertedIndex { return v.invertedIndex }

// Get returns the string at corpus position cpos.
func (v *IndexedStringVariable) Get(cpos int) (string, bool) {
	row, ok := v.lexIDStream.GetRow(cpos)
	if !ok {
		return "", false
	}

	return v.lexicon.Get(int(row[0]))
}

// GetRange streams the strings at positions [a, b).
func (v *IndexedStringVariable) GetRange(a, b int) *StringRangeReader {
	return &StringRangeReader{v: v, r: v.lexIDStream.IterRange(a, b)}
}

// StringRangeReader streams decoded strings over a position range.
type StringRangeReader struct {
	v *IndexedStringVariable
	r *cache.Reader
}

// Advance moves to the next position.
func (sr *StringRangeReader) Advance() bool { return sr.r.Advance() }

// Get returns the string at the current position.
func (sr *StringRangeReader) Get() (string, bool) {
	row, ok := sr.r.Get()
	if !ok {
		return "", false
	}

	return sr.v.lexicon.Get(int(row[0]))
}
