package filesystem

import (
	"github.com/boljen/go-bitmap"
	"github.com/dargueta/inodefs"
	"github.com/dargueta/inodefs/inodetable"
)

// Stat summarizes the state of the file system. Unlike a statfs result there are
// no free-space figures; storage is unbounded.
type Stat struct {
	BlockSize   int
	Inodes      int
	Files       int
	Directories int
	// Blocks is the number of blocks in the store, whether or not any inode
	// refers to them.
	Blocks int
	// ReachableBlocks is the number of stored blocks referenced by at least one
	// inode.
	ReachableBlocks int
	// OrphanedBlocks is the number of stored blocks no inode refers to. Every
	// rewrite of a non-empty file leaves its old blocks orphaned.
	OrphanedBlocks int
	// MissingBlocks is the number of inode pointers whose block isn't stored.
	MissingBlocks int
	BytesStored   int64
	NextID        uint64
}

// Stat computes a [Stat] for the file system.
func (fs *FileSystem) Stat() Stat {
	stat := Stat{
		BlockSize:   int(fs.blocks.BytesPerBlock()),
		Inodes:      fs.inodes.Len(),
		Blocks:      fs.blocks.Len(),
		BytesStored: fs.blocks.BytesStored(),
		NextID:      fs.ids.Peek(),
	}

	reachable := fs.reachableBlocks()
	fs.inodes.Each(func(inode *inodetable.Inode) {
		if inode.IsDir() {
			stat.Directories++
		} else {
			stat.Files++
		}
		for _, blockID := range inode.Blocks() {
			if !fs.blocks.Has(blockID) {
				stat.MissingBlocks++
			}
		}
	})

	for _, blockID := range fs.blocks.IDs() {
		if isMarked(reachable, blockID) {
			stat.ReachableBlocks++
		} else {
			stat.OrphanedBlocks++
		}
	}
	return stat
}

// reachableBlocks marks every block ID referenced by some inode. Bit N
// corresponds to block ID N.
func (fs *FileSystem) reachableBlocks() bitmap.Bitmap {
	marks := bitmap.New(int(fs.ids.Peek()))
	fs.inodes.Each(func(inode *inodetable.Inode) {
		for _, blockID := range inode.Blocks() {
			if int(blockID) < len(marks)*8 {
				marks.Set(int(blockID), true)
			}
		}
	})
	return marks
}

func isMarked(marks bitmap.Bitmap, blockID inodefs.BlockID) bool {
	if int(blockID) >= len(marks)*8 {
		return false
	}
	return marks.Get(int(blockID))
}
