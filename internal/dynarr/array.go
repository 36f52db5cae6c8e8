package dynarr

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// MinCap is the default and the smallest allowed capacity of an [Array].
const MinCap = 2

var (
	ErrOutOfRange = errors.New("out of bounds")
	ErrNilValue   = errors.New("nil values not accepted")
	ErrCapacity   = fmt.Errorf("capacity must be at least %d", MinCap)
)

func indexError(index int) error {
	return fmt.Errorf("index %d: %w", index, ErrOutOfRange)
}

/*
Array is a growable sequence backed by a single slice whose length is the
capacity. Appending to a full array doubles the capacity; removing an element
halves it once the remaining elements fit into a third of it, but never below
[MinCap].
*/
type Array[T any] struct {
	storage []T
	size    int
}

func New[T any]() *Array[T] {
	return &Array[T]{storage: make([]T, MinCap)}
}

func NewWithCapacity[T any](capacity int) (*Array[T], error) {
	if capacity < MinCap {
		return nil, ErrCapacity
	}
	return &Array[T]{storage: make([]T, capacity)}, nil
}

// From builds an array holding values in order.
func From[T any](values ...T) (*Array[T], error) {
	a := New[T]()
	for _, v := range values {
		if err := a.Append(v); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *Array[T]) Len() int {
	return a.size
}

func (a *Array[T]) Cap() int {
	return len(a.storage)
}

func (a *Array[T]) Get(index int) (v T, err error) {
	if index < 0 || index >= a.size {
		return v, indexError(index)
	}
	return a.storage[index], nil
}

// Set replaces the element at index and returns the previous one. It never
// changes the length.
func (a *Array[T]) Set(index int, value T) (old T, err error) {
	if index < 0 || index >= a.size {
		return old, indexError(index)
	}
	if isNil(value) {
		return old, ErrNilValue
	}
	old = a.storage[index]
	a.storage[index] = value
	return old, nil
}

func (a *Array[T]) Append(value T) error {
	if isNil(value) {
		return ErrNilValue
	}
	if a.size == len(a.storage) {
		grown := make([]T, len(a.storage)*2)
		copy(grown, a.storage)
		a.storage = grown
	}
	a.storage[a.size] = value
	a.size++
	return nil
}

// Insert places value at index, shifting the tail right. An index equal to
// the length appends.
func (a *Array[T]) Insert(index int, value T) error {
	if isNil(value) {
		return ErrNilValue
	}
	if index < 0 || index > a.size {
		return indexError(index)
	}

	if index == a.size {
		return a.Append(value)
	}

	if a.size < len(a.storage) {
		copy(a.storage[index+1:a.size+1], a.storage[index:a.size])
		a.storage[index] = value
		a.size++
		return nil
	}

	/*
	 * Full: allocate twice the room and splice the new value in while
	 * copying.
	 */
	grown := make([]T, len(a.storage)*2)
	for i, j := 0, 0; i < a.size; j++ {
		if j == index {
			grown[j] = value
			continue
		}
		grown[j] = a.storage[i]
		i++
	}
	a.storage = grown
	a.size++
	return nil
}

// Remove deletes and returns the element at index, closing the gap.
func (a *Array[T]) Remove(index int) (removed T, err error) {
	if index < 0 || index >= a.size {
		return removed, indexError(index)
	}

	capacity := len(a.storage)
	// post-removal size against pre-removal capacity
	if a.size-1 <= capacity/3 {
		capacity = max(capacity/2, MinCap)
	}

	shrunk := make([]T, capacity)
	for i, j := 0, 0; i < a.size; i++ {
		if i == index {
			removed = a.storage[i]
			continue
		}
		shrunk[j] = a.storage[i]
		j++
	}
	a.storage = shrunk
	a.size--
	return removed, nil
}

// Clone returns a copy with the same capacity and elements. Elements
// themselves are copied by value.
func (a *Array[T]) Clone() *Array[T] {
	storage := make([]T, len(a.storage))
	copy(storage, a.storage[:a.size])
	return &Array[T]{storage: storage, size: a.size}
}

// Values returns the live elements as a fresh slice.
func (a *Array[T]) Values() []T {
	values := make([]T, a.size)
	copy(values, a.storage[:a.size])
	return values
}

// Array implements [fmt.Stringer]
func (a *Array[T]) String() string {
	parts := make([]string, a.size)
	for i, v := range a.storage[:a.size] {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// isNil reports whether v is a nil pointer, map, slice, channel, func or
// interface.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
