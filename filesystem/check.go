package filesystem

import (
	"fmt"

	"github.com/dargueta/inodefs"
	"github.com/dargueta/inodefs/inodetable"
	"github.com/hashicorp/go-multierror"
)

// Check walks every inode and reports structural problems:
//
//   - directory entries naming inodes that don't exist ([inodefs.ErrDanglingEntry])
//   - pointers to blocks that aren't stored ([inodefs.ErrMissingBlock])
//   - entries or pointers whose ID the allocator never handed out
//     ([inodefs.ErrUnallocatedID]) instead of the two above
//   - an empty pointer slot before a populated one ([inodefs.ErrSparsePointers])
//   - a recorded size larger than the bytes actually stored
//     ([inodefs.ErrSizeMismatch]), which every truncated write produces
//
// It returns nil if nothing was found, or a [*multierror.Error] listing each
// finding otherwise.
func (fs *FileSystem) Check() error {
	var result *multierror.Error

	fs.inodes.Each(func(inode *inodetable.Inode) {
		for _, childID := range inode.Entries {
			if fs.inodes.Contains(childID) {
				continue
			}
			cause := inodefs.ErrDanglingEntry
			if !fs.ids.IsIssued(uint64(childID)) {
				cause = inodefs.ErrUnallocatedID
			}
			result = multierror.Append(
				result,
				cause.WithMessage(
					fmt.Sprintf(
						"directory %d (%q) lists inode %d", inode.ID, inode.Name, childID),
				),
			)
		}

		if !inode.PointersAreContiguous() {
			result = multierror.Append(
				result,
				inodefs.ErrSparsePointers.WithMessage(
					fmt.Sprintf("inode %d (%q)", inode.ID, inode.Name)),
			)
		}

		storedBytes := int64(0)
		missing := false
		for slot, blockID := range inode.DirectPointers {
			if blockID == inodefs.InvalidID {
				continue
			}
			data, ok := fs.blocks.Get(blockID)
			if !ok {
				missing = true
				cause := inodefs.ErrMissingBlock
				if !fs.ids.IsIssued(uint64(blockID)) {
					cause = inodefs.ErrUnallocatedID
				}
				result = multierror.Append(
					result,
					cause.WithMessage(
						fmt.Sprintf(
							"inode %d (%q) slot %d refers to block %d",
							inode.ID,
							inode.Name,
							slot,
							blockID,
						),
					),
				)
				continue
			}
			storedBytes += int64(len(data))
		}

		// A lost block already explains a shortfall, so don't report it twice.
		if !missing && inode.Size > storedBytes {
			result = multierror.Append(
				result,
				inodefs.ErrSizeMismatch.WithMessage(
					fmt.Sprintf(
						"inode %d (%q) records %d bytes but stores %d",
						inode.ID,
						inode.Name,
						inode.Size,
						storedBytes,
					),
				),
			)
		}
	})

	return result.ErrorOrNil()
}
