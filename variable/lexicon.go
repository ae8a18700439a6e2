package variable

import (
	"hash/fnv"
	"regexp"
	"strings"

	"github.com/ling-corp/ziggurat/component"
)

// Lexicon is the ordered set of V distinct strings shared by
// IndexedStringVariable and SetVariable: a StringVector for O(1) access
// by type id, plus an Index mapping FNV-1a hash to type id for string
// lookup by binary search over the sorted hashes (spec.md §3.1, §6.3).
type Lexicon struct {
	strings *component.StringVector
	hash    *component.Index
}

// NewLexicon wraps an already-parsed StringVector and hash Index as a
// Lexicon.
func NewLexicon(strs *component.StringVector, hash *component.Index) *Lexicon {
	return &Lexicon{strings: strs, hash: hash}
}

// Len returns V, the number of distinct lexicon entries.
func (l *Lexicon) Len() int { return l.strings.Len() }

// Get returns the string at type id t.
func (l *Lexicon) Get(t int) (string, bool) { return l.strings.Get(t) }

// fnv1aHash is the 64-bit FNV-1a hash spec.md mandates for LexHash keys.
func fnv1aHash(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))

	return h.Sum64()
}

// FindMatch returns the type id of s, resolving hash collisions by
// confirming the candidate's actual string (spec.md §6.3 "fnv hashing of
// lookup strings to hit LexHash").
func (l *Lexicon) FindMatch(s string) (int, bool) {
	key := int64(fnv1aHash(s))

	for _, id := range l.hash.GetAll(key) {
		if str, ok := l.strings.Get(int(id)); ok && str == s {
			return int(id), true
		}
	}

	return 0, false
}

// Iter calls yield(id, s) for every lexicon entry in type-id order,
// stopping early if yield returns false.
func (l *Lexicon) Iter(yield func(id int, s string) bool) {
	for i := 0; i < l.Len(); i++ {
		s, _ := l.Get(i)
		if !yield(i, s) {
			return
		}
	}
}

// AllStartingWith returns the type ids of every entry with prefix p.
func (l *Lexicon) AllStartingWith(p string) []int {
	return l.scan(func(s string) bool { return strings.HasPrefix(s, p) })
}

// AllContaining returns the type ids of every entry containing sub.
func (l *Lexicon) AllContaining(sub string) []int {
	return l.scan(func(s string) bool { return strings.Contains(s, sub) })
}

// AllEndingWith returns the type ids of every entry with suffix sfx.
func (l *Lexicon) AllEndingWith(sfx string) []int {
	return l.scan(func(s string) bool { return strings.HasSuffix(s, sfx) })
}

// AllMatchingRegex returns the type ids of every entry fully matched by
// pattern, anchored as ^pattern$ (spec.md §4.6 "full-string match").
func (l *Lexicon) AllMatchingRegex(pattern string) ([]int, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, err
	}

	return l.scan(re.MatchString), nil
}

func (l *Lexicon) scan(pred func(string) bool) []int {
	var out []int

	l.Iter(func(id int, s string) bool {
		if pred(s) {
			out = append(out, id)
		}

		return true
	})

	return out
}
