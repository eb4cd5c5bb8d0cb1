package valueptr

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindClone  ErrKind = iota // clone policy could not produce a copy
	ErrKindEmpty                 // operation requires a non-empty reference
	ErrKindPolicy                // policy value is unusable (e.g., nil function)
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindClone:
		return "clone"
	case ErrKindEmpty:
		return "empty"
	case ErrKindPolicy:
		return "policy"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a sentinel of the same kind and message, so a
// wrapped clone failure still matches ErrCloneFailed.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

// Sentinels returned or raised by Ref operations.
var (
	// ErrEmpty is raised by Must when the reference holds nothing.
	ErrEmpty = &Error{Kind: ErrKindEmpty, Msg: "valueptr: dereference of empty reference"}
	// ErrCloneFailed wraps any error returned by a clone policy.
	ErrCloneFailed = &Error{Kind: ErrKindClone, Msg: "valueptr: clone failed"}
	// ErrNilClone indicates a clone policy returned nothing for a non-empty pointee.
	ErrNilClone = &Error{Kind: ErrKindClone, Msg: "valueptr: clone policy returned an empty pointee"}
	// ErrAliasedClone indicates a clone policy handed back the source pointee itself.
	ErrAliasedClone = &Error{Kind: ErrKindClone, Msg: "valueptr: clone policy returned the source pointee"}
	// ErrNilPolicy is raised when a policy adapter is built from a nil function.
	ErrNilPolicy = &Error{Kind: ErrKindPolicy, Msg: "valueptr: nil policy function"}
)

func cloneFailed(err error) error {
	return &Error{Kind: ErrKindClone, Msg: ErrCloneFailed.Msg, Err: err}
}
