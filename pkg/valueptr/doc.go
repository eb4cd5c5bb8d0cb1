// Package valueptr provides Ref, an owning reference with value semantics.
//
// A Ref exclusively owns a heap pointee, addressed through a handle type P
// (usually *T, or an interface whose dynamic values are pointers). Copying a
// Ref deep-copies the pointee through a clone policy; moving it hands the
// pointee over without duplication; dropping it releases the pointee through a
// destroy policy. This gives polymorphic or large objects the behavior of
// plain values without shared ownership.
//
// # Policies
//
// Cloner and Destroyer are ordinary values carried by every Ref and
// propagated on copy, move, and swap:
//
//   - MethodCloner forwards to the pointee's own Clone method (the default).
//   - Collect leaves the pointee to the garbage collector (the default).
//   - ClonerFunc and DestroyerFunc adapt functions; a nil function is
//     rejected when the adapter is built.
//
// Policy type parameters are constrained by method sets, so untyped nil or a
// bare function value does not compile as a policy.
//
// # Copy, move, and exception safety
//
// CopyFrom produces the new pointee before it touches the receiver. If the
// clone policy fails the receiver keeps its pointee and policies unchanged:
//
//	a := valueptr.NewBox[Shape](&Circle{R: 1})
//	b := valueptr.NewBox[Shape](&Square{S: 2})
//	if err := a.CopyFrom(b); err != nil {
//		// a still owns the circle
//	}
//
// Move and MoveFrom never clone and never fail. Reset(r.Get()) is a no-op,
// Release gives the pointee back to the caller without destroying it, and
// Drop is the end-of-life call.
//
// A Ref is a single-owner value: it must not be copied with plain Go
// assignment and is not safe for concurrent mutation.
//
// This package has no dependencies beyond the standard library.
package valueptr
