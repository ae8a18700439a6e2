package component

// Blob is an opaque, uninterpreted byte range: the simplest of the seven
// component shapes (spec.md §4.2, "Blob"). Layers use it for metadata
// payloads that have no row structure of their own.
type Blob struct {
	data []byte
}

// NewBlob wraps a component payload as a Blob. data is borrowed directly
// from the container's mmap and must not be retained past the container's
// lifetime.
func NewBlob(data []byte) *Blob {
	return &Blob{data: data}
}

// Bytes returns the full payload.
func (b *Blob) Bytes() []byte { return b.data }

// Len returns the payload length in bytes.
func (b *Blob) Len() int { return len(b.data) }
