package padgui

import "fmt"

const (
	// DefaultBufferCapacity is the capacity of a freshly created buffer.
	DefaultBufferCapacity = 32
	growthFloor           = 32
)

// Allocator provides backing storage for a buffer of n elements.
// Returning an error leaves the buffer at its current capacity.
type Allocator[T any] func(n int) ([]T, error)

// HeapAllocator returns an allocator backed by make. A positive limit caps
// the number of elements it will hand out.
func HeapAllocator[T any](limit int) Allocator[T] {
	return func(n int) ([]T, error) {
		if limit > 0 && n > limit {
			return nil, fmt.Errorf("%d elements exceeds limit of %d", n, limit)
		}
		return make([]T, 0, n), nil
	}
}

// Buffer is an append-only array reused across frames.
// Clear resets the length without releasing storage, so once a frame's
// steady-state element count is reached no further allocation happens.
//
// Slices returned by Slice are invalidated by the next growth.
type Buffer[T any] struct {
	name  string
	data  []T
	alloc Allocator[T]
}

// NewBuffer creates a buffer with DefaultBufferCapacity slots.
// A nil alloc uses HeapAllocator without a limit.
func NewBuffer[T any](name string, alloc Allocator[T]) (*Buffer[T], error) {
	if alloc == nil {
		alloc = HeapAllocator[T](0)
	}
	b := &Buffer[T]{name: name, alloc: alloc}
	if err := b.growTo(DefaultBufferCapacity); err != nil {
		return nil, err
	}
	return b, nil
}

// Len returns the number of elements pushed since the last Clear.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Cap returns the number of allocated slots.
func (b *Buffer[T]) Cap() int { return cap(b.data) }

// Slice returns the pushed elements.
func (b *Buffer[T]) Slice() []T { return b.data }

// Clear resets the length to zero and keeps the capacity.
func (b *Buffer[T]) Clear() { b.data = b.data[:0] }

// Push appends v, growing the storage when full. On error nothing is
// appended and the buffer is unchanged.
func (b *Buffer[T]) Push(v T) error {
	if err := b.Reserve(1); err != nil {
		return err
	}
	b.data = append(b.data, v)
	return nil
}

// Reserve makes room for n more elements without changing the length.
func (b *Buffer[T]) Reserve(n int) error {
	need := len(b.data) + n
	if need <= cap(b.data) {
		return nil
	}
	newCap := cap(b.data)
	for newCap < need {
		newCap = nextCapacity(newCap)
	}
	return b.growTo(newCap)
}

func (b *Buffer[T]) growTo(newCap int) error {
	oldCap := cap(b.data)
	storage, err := b.alloc(newCap)
	if err == nil && cap(storage) < newCap {
		err = fmt.Errorf("allocator returned %d slots", cap(storage))
	}
	if err != nil {
		return &BufferError{Buffer: b.name, Capacity: oldCap, Requested: newCap, Err: err}
	}
	b.data = append(storage[:0], b.data...)
	if oldCap > 0 {
		logger.Debug("buffer grown", "buffer", b.name, "from", oldCap, "to", newCap)
	}
	return nil
}

// nextCapacity multiplies by 1.5 with a floor increment of growthFloor.
func nextCapacity(c int) int {
	return max(c+c/2, c+growthFloor)
}
