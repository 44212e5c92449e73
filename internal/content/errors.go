package content

import "errors"

var (
	// ErrNotFound indicates the backing store holds no document yet.
	ErrNotFound = errors.New("document not found")
	// ErrStoreUnavailable indicates the backing medium is unreachable or
	// holds bytes that cannot be decoded as a document.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrPersistFailure indicates a save failed at the I/O layer.
	ErrPersistFailure = errors.New("persist failure")
	// ErrInvalidDocument indicates a document missing required top-level
	// fields was offered for saving.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrIndexOutOfRange indicates an entry index outside the target
	// collection. No partial mutation occurs.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrPathTooDeep indicates a field path nested beyond the three levels
	// the patcher supports.
	ErrPathTooDeep = errors.New("field path too deep")
	// ErrUnknownSection indicates a section name outside the six known.
	ErrUnknownSection = errors.New("unknown section")
	// ErrUnknownField indicates a field path addressing a field the schema
	// does not define.
	ErrUnknownField = errors.New("unknown field")
	// ErrInvalidValue indicates a value whose type does not match the
	// addressed field.
	ErrInvalidValue = errors.New("invalid value for field")
	// ErrConflict indicates a save with a stale expected revision.
	ErrConflict = errors.New("document revision conflict")
)
