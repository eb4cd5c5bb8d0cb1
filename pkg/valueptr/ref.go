package valueptr

import "fmt"

// Ref exclusively owns one pointee handle of type P together with the clone
// policy C and destroy policy D that travel with it.
//
// A Ref is either empty (its handle is the zero value of P) or owns exactly one
// pointee. Copying goes through Copy or CopyFrom and always deep-copies via C;
// moving goes through Move or MoveFrom and never duplicates. The zero value is
// an empty reference whose policies are the zero values of C and D.
//
// A Ref must not be copied by value after first use: the copy would own the
// same pointee. go vet reports such copies.
//
// P must compare by identity: use a pointer type, or an interface whose
// dynamic values are pointers. An interface handle holding a non-comparable
// value (a struct with a slice field, say) makes Clone, Copy, CopyFrom and
// Reset panic with a runtime comparison error.
//
// A Ref is not safe for concurrent mutation.
type Ref[P comparable, C Cloner[P], D Destroyer[P]] struct {
	_ noCopy

	ptr       P
	cloner    C
	destroyer D
}

// Box is a Ref using the pointee's own Clone method and garbage collection.
type Box[P interface {
	comparable
	Clonable[P]
}] = Ref[P, MethodCloner[P], Collect[P]]

// New takes ownership of p with explicit policies. A zero p yields an empty
// reference that still carries c and d.
func New[P comparable, C Cloner[P], D Destroyer[P]](p P, c C, d D) *Ref[P, C, D] {
	return &Ref[P, C, D]{ptr: p, cloner: c, destroyer: d}
}

// NewBox takes ownership of p using the default policies.
func NewBox[P interface {
	comparable
	Clonable[P]
}](p P) *Box[P] {
	return &Box[P]{ptr: p}
}

// NewWithCloner takes ownership of p with a custom clone policy and the
// default destroy policy.
func NewWithCloner[P comparable, C Cloner[P]](p P, c C) *Ref[P, C, Collect[P]] {
	return &Ref[P, C, Collect[P]]{ptr: p, cloner: c}
}

// NewWithDestroyer takes ownership of p with a custom destroy policy and the
// default clone policy.
func NewWithDestroyer[P interface {
	comparable
	Clonable[P]
}, D Destroyer[P]](p P, d D) *Ref[P, MethodCloner[P], D] {
	return &Ref[P, MethodCloner[P], D]{ptr: p, destroyer: d}
}

// Get returns the held handle, or the zero value if empty. Ownership is
// unaffected.
func (r *Ref[P, C, D]) Get() P {
	if r == nil {
		var zero P
		return zero
	}
	return r.ptr
}

// Valid reports whether a pointee is held. It never touches the pointee.
func (r *Ref[P, C, D]) Valid() bool {
	var zero P
	return r != nil && r.ptr != zero
}

// Must returns the held handle and panics with ErrEmpty if there is none.
func (r *Ref[P, C, D]) Must() P {
	if !r.Valid() {
		panic(ErrEmpty)
	}
	return r.ptr
}

// Cloner returns a copy of the carried clone policy.
func (r *Ref[P, C, D]) Cloner() C { return r.cloner }

// Destroyer returns a copy of the carried destroy policy.
func (r *Ref[P, C, D]) Destroyer() D { return r.destroyer }

// SetCloner replaces the carried clone policy.
func (r *Ref[P, C, D]) SetCloner(c C) { r.cloner = c }

// SetDestroyer replaces the carried destroy policy. The new policy will be
// the one that destroys the currently held pointee.
func (r *Ref[P, C, D]) SetDestroyer(d D) { r.destroyer = d }

// Clone returns a fresh deep copy of the pointee without adopting it. The
// caller owns the result. An empty reference yields the zero value.
func (r *Ref[P, C, D]) Clone() (P, error) {
	var zero P
	if !r.Valid() {
		return zero, nil
	}
	p, err := r.cloner.Clone(r.ptr)
	if err != nil {
		return zero, cloneFailed(err)
	}
	switch p {
	case zero:
		return zero, ErrNilClone
	case r.ptr:
		return zero, ErrAliasedClone
	}
	return p, nil
}

// Copy returns a new reference owning a deep copy of the pointee and copies
// of both policies. Copying an empty reference yields an empty one.
func (r *Ref[P, C, D]) Copy() (*Ref[P, C, D], error) {
	p, err := r.Clone()
	if err != nil {
		return nil, err
	}
	if r == nil {
		return &Ref[P, C, D]{}, nil
	}
	return &Ref[P, C, D]{ptr: p, cloner: r.cloner, destroyer: r.destroyer}, nil
}

// CopyFrom replaces the pointee of r with a deep copy of src's pointee and
// adopts copies of src's policies.
//
// The copy is made before r is touched: if cloning fails r keeps its pointee
// and policies. On success the old pointee is destroyed by r's own destroy
// policy. Copying from r itself does nothing.
func (r *Ref[P, C, D]) CopyFrom(src *Ref[P, C, D]) error {
	if r == src {
		return nil
	}
	p, err := src.Clone()
	if err != nil {
		return err
	}
	r.Reset(p)
	if src != nil {
		r.cloner, r.destroyer = src.cloner, src.destroyer
	}
	return nil
}

// Move hands the pointee and copies of both policies to a new reference and
// leaves r empty. r keeps its policies so it can be reused.
func (r *Ref[P, C, D]) Move() *Ref[P, C, D] {
	if r == nil {
		return &Ref[P, C, D]{}
	}
	return &Ref[P, C, D]{ptr: r.Release(), cloner: r.cloner, destroyer: r.destroyer}
}

// MoveFrom takes over src's pointee and policies, leaving src empty. The
// pointee previously held by r is destroyed with r's destroy policy. Moving
// from r itself does nothing.
func (r *Ref[P, C, D]) MoveFrom(src *Ref[P, C, D]) {
	if r == src {
		return
	}
	if src == nil {
		r.Drop()
		return
	}
	r.Reset(src.Release())
	r.cloner, r.destroyer = src.cloner, src.destroyer
}

// Reset destroys the held pointee and adopts p. If p is the handle already
// held, Reset does nothing, so r.Reset(r.Get()) is safe.
func (r *Ref[P, C, D]) Reset(p P) {
	if p == r.ptr {
		return
	}
	var zero P
	if old := r.ptr; old != zero {
		r.destroyer.Destroy(old)
	}
	r.ptr = p
}

// Drop destroys the held pointee, if any, and leaves r empty. It is the
// end-of-life call for a reference and is safe to repeat.
func (r *Ref[P, C, D]) Drop() {
	if r == nil {
		return
	}
	var zero P
	r.Reset(zero)
}

// Release returns the held handle and empties r without destroying anything.
// The caller becomes responsible for the pointee.
func (r *Ref[P, C, D]) Release() P {
	var zero P
	p := r.ptr
	r.ptr = zero
	return p
}

// Swap exchanges pointees and policies with other.
func (r *Ref[P, C, D]) Swap(other *Ref[P, C, D]) {
	if r == other {
		return
	}
	r.ptr, other.ptr = other.ptr, r.ptr
	r.cloner, other.cloner = other.cloner, r.cloner
	r.destroyer, other.destroyer = other.destroyer, r.destroyer
}

func (r *Ref[P, C, D]) String() string {
	if !r.Valid() {
		return "valueptr.Ref(empty)"
	}
	return fmt.Sprintf("valueptr.Ref(%v)", r.ptr)
}

// AssignConverted replaces dst's pointee with a deep copy of src's pointee
// converted by conv, for example from *Circle to a Shape interface. dst keeps
// its own policies. On clone failure dst is unchanged.
func AssignConverted[Q comparable, CQ Cloner[Q], DQ Destroyer[Q], P comparable, C Cloner[P], D Destroyer[P]](
	dst *Ref[P, C, D], src *Ref[Q, CQ, DQ], conv func(Q) P,
) error {
	q, err := src.Clone()
	if err != nil {
		return err
	}
	var zq Q
	if q == zq {
		dst.Drop()
		return nil
	}
	dst.Reset(conv(q))
	return nil
}

// MoveConverted moves src's pointee into dst through conv. src is left empty
// and dst keeps its own policies.
func MoveConverted[Q comparable, CQ Cloner[Q], DQ Destroyer[Q], P comparable, C Cloner[P], D Destroyer[P]](
	dst *Ref[P, C, D], src *Ref[Q, CQ, DQ], conv func(Q) P,
) {
	var zq Q
	q := src.Release()
	if q == zq {
		dst.Drop()
		return
	}
	dst.Reset(conv(q))
}

// noCopy lets go vet's copylocks check flag by-value copies of Ref.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
