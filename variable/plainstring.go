package variable

import (
	"github.com/ling-corp/ziggurat/cache"
	"github.com/ling-corp/ziggurat/component"
	"github.com/ling-corp/ziggurat/container"
	"github.com/ling-corp/ziggurat/format"
	"github.com/ling-corp/ziggurat/zgerr"
)

// PlainStringVariable attaches a free-form (non-lexicon) string to every
// corpus position: the strings themselves live in a StringList, and an
// offset stream maps each position to its string's index within that
// list (spec.md §6.3).
type PlainStringVariable struct {
	c *container.Container

	n            int
	strings      *component.StringList
	offsetStream *cache.Vector
	stringHash   *component.Index
}

// NewPlainStringVariable wraps an already-open container, validating its
// type and required components ("StringData", "OffsetStream",
// "StringHash").
func NewPlainStringVariable(c *container.Container) (*PlainStringVariable, error) {
	if c.Type() != format.PlainStringVariable {
		return nil, zgerr.ErrWrongContainerType
	}

	n := int(c.Dim1())

	dataEntry, ok := c.Entry("StringData")
	if !ok {
		return nil, zgerr.ErrMissingComponent
	}
	data, _ := c.Payload("StringData")
	strs := component.NewStringList(data, int(dataEntry.Param1))

	offEntry, ok := c.Entry("OffsetStream")
	if !ok {
		return nil, zgerr.ErrMissingComponent
	}
	if offEntry.Param2 != 1 {
		return nil, zgerr.ErrInvalidDimensions
	}
	offData, _ := c.Payload("OffsetStream")
	offStream, err := newVectorFor(offEntry, n, 1, offData)
	if err != nil {
		return nil, err
	}

	hashEntry, ok := c.Entry("StringHash")
	if !ok {
		return nil, zgerr.ErrMissingComponent
	}
	hashData, _ := c.Payload("StringHash")
	hash, err := component.NewIndex(hashData, int(hashEntry.Param1))
	if err != nil {
		return nil, err
	}

	return &PlainStringVariable{
		c:            c,
		n:            n,
		strings:      strs,
		offsetStream: cache.NewVector(offStream),
		stringHash:   hash,
	}, nil
}

// Len returns N, the number of corpus positions.
func (v *PlainStringVariable) Len() int { return v.n }

// Get returns the string at corpus position cpos.
func (v *PlainStringVariable) Get(cpos int) (string, bool) {
	row, ok := v.offsetStream.GetRow(cpos)
	if !ok {
		return "", false
	}

	return v.strings.Get(int(row[0]))
}

// FindMatch returns the StringData indices of every stored string equal
// to s, resolving hash collisions by confirming the candidate's actual
// string. Callers mapping back to corpus positions must scan
// OffsetStream themselves; StringHash indexes strings, not positions.
func (v *PlainStringVariable) FindMatch(s string) []int64 {
	key := int64(fnv1aHash(s))

	var matches []int64
	for _, candidateIdx := range v.stringHash.GetAll(key) {
		if str, ok := v.strings.Get(int(candidateIdx)); ok && str == s {
			matches = append(matches, candidateIdx)
		}
	}

	return matches
}

// Iter streams every position's string in order.
func (v *PlainStringVariable) Iter() *StringReader {
	return &StringReader{v: v, r: v.offsetStream.Iter()}
}

// StringReader streams decoded strings over the full variable.
type StringReader struct {
	v *PlainStringVariable
	r *cache.Reader
}

// Advance moves to the next position.
func (sr *StringReader) Advance() bool { return sr.r.Advance() }

// Get returns the string at the current position.
func (sr *StringReader) Get() (string, bool) {
	row, ok := sr.r.Get()
	if !ok {
		return "", false
	}

	return sr.v.strings.Get(int(row[0]))
}
