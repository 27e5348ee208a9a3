// Package inodefs contains the types shared by every layer of the in-memory
// inode file system: identifiers, file types, size limits, and error values.
package inodefs

import "fmt"

// BlockSize is the capacity of a single data block, in bytes.
const BlockSize = 4096

// NumDirectPointers is the number of direct block pointers in an inode. There
// are no indirect pointers, so this also bounds the number of blocks a file can
// occupy.
const NumDirectPointers = 10

// MaxFileDataSize is the largest number of bytes a file can actually store.
// Writes longer than this are silently cut short.
const MaxFileDataSize = BlockSize * NumDirectPointers

// InodeID identifies an inode. IDs start at 1 and are never reused.
type InodeID uint64

// BlockID identifies a data block. Block IDs are drawn from the same counter as
// inode IDs.
type BlockID uint64

// InvalidID is never issued by the allocator.
const InvalidID = 0

type FileType int

const (
	RegularFile FileType = iota
	Directory
)

func (t FileType) String() string {
	switch t {
	case RegularFile:
		return "file"
	case Directory:
		return "directory"
	default:
		return fmt.Sprintf("FileType(%d)", int(t))
	}
}

// Mode returns the Unix mode bits for the file type with the default
// permissions. There is no permission model, so every object gets the same
// permission bits.
func (t FileType) Mode() uint32 {
	switch t {
	case Directory:
		return S_IFDIR | DefaultDirectoryPermissions
	case RegularFile:
		return S_IFREG | DefaultFilePermissions
	default:
		return 0
	}
}

// BlocksNeeded gives the minimum number of blocks required to hold `size`
// bytes, ignoring the direct pointer limit.
func BlocksNeeded(size int) int {
	return (size + BlockSize - 1) / BlockSize
}
