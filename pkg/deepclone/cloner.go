package deepclone

import (
	"fmt"

	clone "github.com/huandu/go-clone/generic"

	"github.com/5cript/simple-util/pkg/valueptr"
)

// Cloner deep-copies a pointee by reflection. The zero value is ready to use.
type Cloner[P any] struct {
	// Slowly enables cycle detection for pointee graphs that refer back to
	// themselves.
	Slowly bool
}

// Clone implements valueptr.Cloner. A panic raised while walking the value
// is returned as an error.
func (c Cloner[P]) Clone(p P) (cp P, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero P
			cp = zero
			err = fmt.Errorf("deepclone: %T: %v", p, r)
		}
	}()
	if c.Slowly {
		return clone.Slowly(p), nil
	}
	return clone.Clone(p), nil
}

// Ref is a valueptr.Ref using reflection to clone and the garbage collector
// to destroy.
type Ref[P comparable] = valueptr.Ref[P, Cloner[P], valueptr.Collect[P]]

// New takes ownership of p with a reflection clone policy.
func New[P comparable](p P) *Ref[P] {
	return valueptr.NewWithCloner(p, Cloner[P]{})
}

// NewCyclic is like New but tolerates pointer cycles inside the pointee.
func NewCyclic[P comparable](p P) *Ref[P] {
	return valueptr.NewWithCloner(p, Cloner[P]{Slowly: true})
}

var _ valueptr.Cloner[*struct{}] = Cloner[*struct{}]{}
