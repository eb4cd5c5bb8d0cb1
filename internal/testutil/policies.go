package testutil

import (
	"errors"
	"fmt"
)

// ErrInjected is returned by FailingCloner on its configured call.
var ErrInjected = errors.New("testutil: injected clone failure")

// CloneScript drives a FailingCloner. It is shared by pointer because the
// owning reference copies its policies by value.
type CloneScript struct {
	// FailOn is the 1-based call number that fails. Zero never fails.
	FailOn int
	// Calls counts every Clone invocation, including the failing one.
	Calls int
}

// FailingCloner clones through the pointee's own Clone method and fails on
// the scripted call.
type FailingCloner[P interface{ Clone() (P, error) }] struct {
	Script *CloneScript
}

// Clone implements the clone policy contract.
func (c FailingCloner[P]) Clone(p P) (P, error) {
	c.Script.Calls++
	if c.Script.FailOn != 0 && c.Script.Calls == c.Script.FailOn {
		var zero P
		return zero, fmt.Errorf("call %d: %w", c.Script.Calls, ErrInjected)
	}
	return p.Clone()
}

// Recorder collects every pointee passed to a RecordingDestroyer.
type Recorder struct {
	Destroyed []any
}

// Count returns how many times p was destroyed.
func (r *Recorder) Count(p any) int {
	n := 0
	for _, d := range r.Destroyed {
		if d == p {
			n++
		}
	}
	return n
}

// Len is the total number of destroy calls.
func (r *Recorder) Len() int { return len(r.Destroyed) }

// RecordingDestroyer appends every destroyed pointee to R.
type RecordingDestroyer[P any] struct {
	R *Recorder
}

// Destroy implements the destroy policy contract.
func (d RecordingDestroyer[P]) Destroy(p P) {
	d.R.Destroyed = append(d.R.Destroyed, p)
}
