// Package container holds small dependency-free containers shared across the
// toolkit.
package container

import (
	"errors"
	"slices"
)

var (
	// ErrFull is returned by Push when the array is at capacity.
	ErrFull = errors.New("container: capped array is full")
	// ErrEmpty is returned by Pop and Back on an empty array.
	ErrEmpty = errors.New("container: capped array is empty")
)

// Capped is an array with a fixed capacity and a variable length. Storage is
// allocated once; Push never grows it.
type Capped[T comparable] struct {
	data []T
	n    int
}

func NewCapped[T comparable](capacity int) *Capped[T] {
	return &Capped[T]{data: make([]T, capacity)}
}

func (c *Capped[T]) Push(item T) error {
	if c.n == len(c.data) {
		return ErrFull
	}
	c.data[c.n] = item
	c.n++
	return nil
}

func (c *Capped[T]) Pop() (T, error) {
	var zero T
	if c.n == 0 {
		return zero, ErrEmpty
	}
	c.n--
	return c.data[c.n], nil
}

func (c *Capped[T]) Back() (T, error) {
	var zero T
	if c.n == 0 {
		return zero, ErrEmpty
	}
	return c.data[c.n-1], nil
}

func (c *Capped[T]) At(i int) T {
	return c.data[:c.n][i]
}

func (c *Capped[T]) Set(i int, item T) {
	c.data[:c.n][i] = item
}

// Find returns the index of the first element equal to item, or -1.
func (c *Capped[T]) Find(item T) int {
	return slices.Index(c.data[:c.n], item)
}

func (c *Capped[T]) Clear() {
	c.n = 0
}

func (c *Capped[T]) Len() int {
	return c.n
}

func (c *Capped[T]) Cap() int {
	return len(c.data)
}

// Slice returns the live elements. The slice aliases the array's storage.
func (c *Capped[T]) Slice() []T {
	return c.data[:c.n]
}
