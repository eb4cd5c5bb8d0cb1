package valueptr

import "fmt"

// CopyAll deep-copies every reference in refs. A nil element copies to nil.
//
// Either every element is copied or none is: when a clone fails, the copies
// already made are dropped and the error names the failing index. refs is
// never modified.
func CopyAll[P comparable, C Cloner[P], D Destroyer[P]](refs []*Ref[P, C, D]) ([]*Ref[P, C, D], error) {
	out := make([]*Ref[P, C, D], len(refs))
	for i, r := range refs {
		if r == nil {
			continue
		}
		cp, err := r.Copy()
		if err != nil {
			DropAll(out[:i])
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = cp
	}
	return out, nil
}

// DropAll drops every reference in refs, skipping nil elements.
func DropAll[P comparable, C Cloner[P], D Destroyer[P]](refs []*Ref[P, C, D]) {
	for _, r := range refs {
		r.Drop()
	}
}
