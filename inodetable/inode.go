package inodetable

import (
	"github.com/dargueta/inodefs"
)

// Inode is the metadata record for a file or a directory.
type Inode struct {
	ID   inodefs.InodeID
	Name string
	// Size is the length of the most recent write, in bytes. It's the requested
	// length, not the number of bytes actually stored, so it can exceed what a
	// read returns. Always 0 for directories.
	Size int64
	Type inodefs.FileType
	// DirectPointers holds the block IDs of a regular file's data in order.
	// [inodefs.InvalidID] marks an empty slot. Populated slots are always
	// contiguous from index 0.
	DirectPointers [inodefs.NumDirectPointers]inodefs.BlockID
	// Entries lists the IDs of a directory's children in insertion order. It's
	// non-nil (possibly empty) for directories and nil for regular files.
	Entries []inodefs.InodeID
}

func NewDirectory(id inodefs.InodeID, name string) Inode {
	return Inode{
		ID:      id,
		Name:    name,
		Type:    inodefs.Directory,
		Entries: []inodefs.InodeID{},
	}
}

func NewRegularFile(id inodefs.InodeID, name string) Inode {
	return Inode{
		ID:   id,
		Name: name,
		Type: inodefs.RegularFile,
	}
}

func (inode *Inode) IsDir() bool {
	return inode.Type == inodefs.Directory
}

func (inode *Inode) IsFile() bool {
	return inode.Type == inodefs.RegularFile
}

// Mode returns the Unix mode flags for the inode.
func (inode *Inode) Mode() uint32 {
	return inode.Type.Mode()
}

// HasEntries returns true if the inode carries a child list, i.e. it was
// created as a directory.
func (inode *Inode) HasEntries() bool {
	return inode.Entries != nil
}

// AddEntry appends a child to the directory's entry list. It does no checking
// of any kind; duplicates are kept.
func (inode *Inode) AddEntry(child inodefs.InodeID) {
	inode.Entries = append(inode.Entries, child)
}

// Blocks returns the populated direct pointers in slot order.
func (inode *Inode) Blocks() []inodefs.BlockID {
	blocks := make([]inodefs.BlockID, 0, inodefs.NumDirectPointers)
	for _, block := range inode.DirectPointers {
		if block != inodefs.InvalidID {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// NumBlocks gives the number of populated direct pointers.
func (inode *Inode) NumBlocks() int {
	count := 0
	for _, block := range inode.DirectPointers {
		if block != inodefs.InvalidID {
			count++
		}
	}
	return count
}

// PointersAreContiguous returns true if no empty slot precedes a populated one.
func (inode *Inode) PointersAreContiguous() bool {
	seenEmpty := false
	for _, block := range inode.DirectPointers {
		if block == inodefs.InvalidID {
			seenEmpty = true
		} else if seenEmpty {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the inode.
func (inode *Inode) Clone() Inode {
	clone := *inode
	if inode.Entries != nil {
		clone.Entries = make([]inodefs.InodeID, len(inode.Entries))
		copy(clone.Entries, inode.Entries)
	}
	return clone
}
