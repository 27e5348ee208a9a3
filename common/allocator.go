// Identifier allocator

package common

import (
	"github.com/boljen/go-bitmap"
)

// Allocator hands out identifiers from a single monotonic counter starting at
// 1. Identifiers are never freed or reused. Every issued identifier is marked
// in IssuedBitmap, which grows as needed.
type Allocator struct {
	IssuedBitmap bitmap.Bitmap
	nextID       uint64
}

// NewAllocator creates an allocator whose first identifier will be 1.
func NewAllocator() Allocator {
	return Allocator{
		IssuedBitmap: bitmap.New(64),
		nextID:       1,
	}
}

// Next returns the current counter value and increments the counter.
func (alloc *Allocator) Next() uint64 {
	if alloc.nextID == 0 {
		// Zero value; behave as if created with NewAllocator.
		alloc.nextID = 1
	}

	id := alloc.nextID
	alloc.nextID++

	alloc.grow(id)
	alloc.IssuedBitmap.Set(int(id), true)
	return id
}

// Peek returns the identifier the next call to Next will return, without
// allocating it.
func (alloc *Allocator) Peek() uint64 {
	if alloc.nextID == 0 {
		return 1
	}
	return alloc.nextID
}

// IsIssued returns true if `id` has been handed out by this allocator.
func (alloc *Allocator) IsIssued(id uint64) bool {
	if id == 0 || id >= uint64(len(alloc.IssuedBitmap))*8 {
		return false
	}
	return alloc.IssuedBitmap.Get(int(id))
}

// TotalIssued gives the number of identifiers handed out so far.
func (alloc *Allocator) TotalIssued() uint64 {
	return alloc.Peek() - 1
}

// grow extends the bitmap, doubling it, until bit `id` is addressable.
func (alloc *Allocator) grow(id uint64) {
	if len(alloc.IssuedBitmap) == 0 {
		alloc.IssuedBitmap = bitmap.New(64)
	}
	for id >= uint64(len(alloc.IssuedBitmap))*8 {
		extension := make([]byte, len(alloc.IssuedBitmap))
		alloc.IssuedBitmap = append(alloc.IssuedBitmap, extension...)
	}
}
