package valueptr

// Cloner produces a new, independently owned deep copy of a pointee.
//
// The owning reference never calls Clone with an empty handle. The returned
// handle must not share mutable state with p and, for interface handles, must
// carry the same dynamic type as p.
type Cloner[P any] interface {
	Clone(p P) (P, error)
}

// Destroyer releases a pointee. It is called exactly once per owned pointee
// and must not fail.
type Destroyer[P any] interface {
	Destroy(p P)
}

// Clonable is implemented by pointees that know how to copy themselves.
//
//	func (c *Circle) Clone() (Shape, error) { cp := *c; return &cp, nil }
type Clonable[P any] interface {
	Clone() (P, error)
}

// MethodCloner is the default clone policy. It forwards to the pointee's own
// Clone method.
type MethodCloner[P Clonable[P]] struct{}

// Clone implements Cloner.
func (MethodCloner[P]) Clone(p P) (P, error) { return p.Clone() }

// Collect is the default destroy policy. It drops the handle and leaves the
// pointee to the garbage collector.
type Collect[P any] struct{}

// Destroy implements Destroyer.
func (Collect[P]) Destroy(P) {}

// FuncCloner adapts a function to Cloner. Build it with ClonerFunc.
type FuncCloner[P any] struct {
	fn func(P) (P, error)
}

// ClonerFunc wraps fn as a clone policy. It panics with ErrNilPolicy if fn is
// nil, so a missing policy surfaces where the reference is configured rather
// than at the first copy.
func ClonerFunc[P any](fn func(P) (P, error)) FuncCloner[P] {
	if fn == nil {
		panic(ErrNilPolicy)
	}
	return FuncCloner[P]{fn: fn}
}

// Clone implements Cloner.
func (c FuncCloner[P]) Clone(p P) (P, error) {
	if c.fn == nil {
		var zero P
		return zero, ErrNilPolicy
	}
	return c.fn(p)
}

// FuncDestroyer adapts a function to Destroyer. Build it with DestroyerFunc.
type FuncDestroyer[P any] struct {
	fn func(P)
}

// DestroyerFunc wraps fn as a destroy policy. It panics with ErrNilPolicy if
// fn is nil.
func DestroyerFunc[P any](fn func(P)) FuncDestroyer[P] {
	if fn == nil {
		panic(ErrNilPolicy)
	}
	return FuncDestroyer[P]{fn: fn}
}

// Destroy implements Destroyer. A zero FuncDestroyer behaves like Collect.
func (d FuncDestroyer[P]) Destroy(p P) {
	if d.fn != nil {
		d.fn(p)
	}
}

// Compile-time interface checks
var (
	_ Cloner[*checkPointee]    = MethodCloner[*checkPointee]{}
	_ Cloner[*checkPointee]    = FuncCloner[*checkPointee]{}
	_ Destroyer[*checkPointee] = Collect[*checkPointee]{}
	_ Destroyer[*checkPointee] = FuncDestroyer[*checkPointee]{}
)

type checkPointee struct{}

func (*checkPointee) Clone() (*checkPointee, error) { return &checkPointee{}, nil }
