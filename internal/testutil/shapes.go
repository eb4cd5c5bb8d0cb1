package testutil

import (
	"fmt"
	"math"
)

// Shape is a polymorphic pointee used across tests. Implementations are
// pointer types so that interface handles compare by address.
type Shape interface {
	Area() float64
	Name() string
	Clone() (Shape, error)
}

// Circle is a Shape with a radius.
type Circle struct {
	R float64
}

func (c *Circle) Area() float64 { return math.Pi * c.R * c.R }
func (c *Circle) Name() string  { return fmt.Sprintf("circle(%g)", c.R) }

// Clone returns an independent copy with the same dynamic type.
func (c *Circle) Clone() (Shape, error) {
	cp := *c
	return &cp, nil
}

// Square is a Shape holding a slice so a shallow copy would alias.
type Square struct {
	S    float64
	Tags []string
}

func (s *Square) Area() float64 { return s.S * s.S }
func (s *Square) Name() string  { return fmt.Sprintf("square(%g)", s.S) }

// Clone deep-copies the square including its tags.
func (s *Square) Clone() (Shape, error) {
	cp := &Square{S: s.S}
	if s.Tags != nil {
		cp.Tags = append([]string(nil), s.Tags...)
	}
	return cp, nil
}

// Text is a concrete, non-polymorphic pointee.
type Text struct {
	S string
}

// Clone returns a copy of t.
func (t *Text) Clone() (*Text, error) {
	return &Text{S: t.S}, nil
}
