package variable

import (
	"github.com/ling-corp/ziggurat/cache"
	"github.com/ling-corp/ziggurat/component"
	"github.com/ling-corp/ziggurat/container"
	"github.com/ling-corp/ziggurat/format"
	"github.com/ling-corp/ziggurat/zgerr"
)

// SetVariable attaches a set of lexicon type ids to every corpus
// position (spec.md §6.3): each position holds zero or more ids into a
// shared lexicon, identically structured to IndexedStringVariable but
// backed by a Set component rather than a single-valued Vector.
type SetVariable struct {
	c *container.Container

	n int
	v int

	lexicon       *Lexicon
	partition     *component.Vector
	idSetStream   *component.Set
	invertedIndex *cache.InvertedIndex
}

// NewSetVariable wraps an already-open container, validating its type
// and required components ("Lexicon", "LexHash", "Partition",
// "IDSetStream", "IDSetIndex").
func NewSetVariable(c *container.Container) (*SetVariable, error) {
	if c.Type() != format.SetVariable {
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

	streamEntry, ok := c.Entry("IDSetStream")
	if !ok {
		return nil, zgerr.ErrMissingComponent
	}
	streamData, _ := c.Payload("IDSetStream")
	idSetStream, err := component.NewSet(n, int(streamEntry.Param2), streamData)
	if err != nil {
		return nil, err
	}

	invEntry, ok := c.Entry("IDSetIndex")
	if !ok {
		return nil, zgerr.ErrMissingComponent
	}
	invData, _ := c.Payload("IDSetIndex")
	inv, err := component.NewInvertedIndex(invData, int(invEntry.Param1), int(invEntry.Param2))
	if err != nil {
		return nil, err
	}
	if inv.NTypes() != v {
		return nil, zgerr.ErrInvalidDimensions
	}

	return &SetVariable{
		c:             c,
		n:             n,
		v:             v,
		lexicon:       NewLexicon(lex, lexHash),
		partition:     partition,
		idSetStream:   idSetStream,
		invertedIndex: cache.NewInvertedIndex(inv),
	}, nil
}

// Len returns N, the number of corpus positions.
func (v *SetVariable) Len() int { return v.n }

// NTypes returns V, the lexicon size.
func (v *SetVariable) NTypes() int { return v.v }

// Lexicon returns the shared lexicon for scans and hash lookup.
func (v *SetVariable) Lexicon() *Lexicon { return v.lexicon }

// InvertedIndex returns the postings index for lexicon type ids.
func (v *SetVariable) InvertedIndex() *cache.InvertedIndex { return v.invertedIndex }

// Get returns the ascending type-id set at corpus position cpos.
func (v *SetVariable) Get(cpos int) ([]int64, bool) {
	return v.idSetStream.GetRow(cpos)
}

// GetStrings returns the lexicon strings of the set at corpus position
// cpos.
func (v *SetVariable) GetStrings(cpos int) ([]string, bool) {
	ids, ok := v.Get(cpos)
	if !ok {
		return nil, false
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		s, _ := v.lexicon.Get(int(id))
		out = append(out, s)
	}

	return out, true
}
