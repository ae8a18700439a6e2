package section

// Fixed byte sizes and offsets of the header and BOM entry structures
// (spec.md §6.1). These never vary across container types.
const (
	HeaderSize        = 160 // fixed header size in bytes, shared by every container type
	BOMOffset         = HeaderSize
	BOMEntrySize      = 56 // fixed size of one BOM entry in bytes
	CommentSize       = 72
	MagicString       = "Ziggurat"
	VersionString     = "1.0"
	componentAlign    = 8 // component payloads are 8-byte aligned (spec.md invariant 4)
)
