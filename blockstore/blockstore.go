// Package blockstore maps block identifiers to fixed-capacity byte buffers. It
// is pure storage: it neither allocates identifiers nor knows which inode, if
// any, refers to a block.
package blockstore

import (
	"fmt"
	"sort"

	"github.com/dargueta/inodefs"
	"github.com/noxer/bytewriter"
)

type Store struct {
	blocks        map[inodefs.BlockID][]byte
	bytesPerBlock uint
}

// New creates an empty store whose blocks hold at most [inodefs.BlockSize]
// bytes.
func New() *Store {
	return NewWithBlockSize(inodefs.BlockSize)
}

// NewWithBlockSize creates an empty store with a custom block capacity.
func NewWithBlockSize(bytesPerBlock uint) *Store {
	if bytesPerBlock == 0 {
		panic("block size must be positive")
	}
	return &Store{
		blocks:        make(map[inodefs.BlockID][]byte),
		bytesPerBlock: bytesPerBlock,
	}
}

// BytesPerBlock returns the capacity of a single block, in bytes.
func (store *Store) BytesPerBlock() uint {
	return store.bytesPerBlock
}

// Put stores a copy of `data` under `id`, replacing anything already there.
// Anything past the block capacity is dropped. It returns the number of bytes
// stored.
func (store *Store) Put(id inodefs.BlockID, data []byte) int {
	payload := data
	if uint(len(payload)) > store.bytesPerBlock {
		payload = payload[:store.bytesPerBlock]
	}

	buffer := make([]byte, len(payload))
	if len(payload) == 0 {
		store.blocks[id] = buffer
		return 0
	}

	writer := bytewriter.New(buffer)
	nWritten, err := writer.Write(payload)
	if err != nil || nWritten != len(payload) {
		// Can't happen, the buffer is exactly the size of the payload.
		panic(
			fmt.Sprintf(
				"short copy into block %d: wrote %d of %d bytes: %v",
				id,
				nWritten,
				len(payload),
				err,
			),
		)
	}

	store.blocks[id] = buffer
	return nWritten
}

// Get returns the buffer stored under `id`. The second return value is false if
// there is no such block. Callers must not modify the returned slice.
func (store *Store) Get(id inodefs.BlockID) ([]byte, bool) {
	buffer, ok := store.blocks[id]
	return buffer, ok
}

// Has returns true if a block is stored under `id`.
func (store *Store) Has(id inodefs.BlockID) bool {
	_, ok := store.blocks[id]
	return ok
}

// Remove discards the block stored under `id`, returning false if there was
// none. Nothing in the file system frees blocks; this exists to simulate a
// lost block.
func (store *Store) Remove(id inodefs.BlockID) bool {
	if _, ok := store.blocks[id]; !ok {
		return false
	}
	delete(store.blocks, id)
	return true
}

// Len gives the number of blocks in the store, reachable or not.
func (store *Store) Len() int {
	return len(store.blocks)
}

// BytesStored gives the total number of bytes held by all blocks.
func (store *Store) BytesStored() int64 {
	total := int64(0)
	for _, buffer := range store.blocks {
		total += int64(len(buffer))
	}
	return total
}

// IDs returns the identifiers of every stored block in ascending order.
func (store *Store) IDs() []inodefs.BlockID {
	ids := make([]inodefs.BlockID, 0, len(store.blocks))
	for id := range store.blocks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
