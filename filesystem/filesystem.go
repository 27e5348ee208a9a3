// Package filesystem implements the in-memory inode file system: it owns the
// identifier counter, the inode table, the block store and the journal, and
// exposes the operations that keep them consistent with each other.
package filesystem

import (
	"fmt"
	"log/slog"

	"github.com/dargueta/inodefs"
	"github.com/dargueta/inodefs/blockstore"
	"github.com/dargueta/inodefs/common"
	"github.com/dargueta/inodefs/inodetable"
	"github.com/dargueta/inodefs/journal"
	"github.com/dargueta/inodefs/pkg/logging"
)

// FileSystem is a single-threaded, in-memory file system. The zero value is not
// usable; create one with [New].
type FileSystem struct {
	ids     common.Allocator
	inodes  *inodetable.Table
	blocks  *blockstore.Store
	journal *journal.Journal
	logger  *slog.Logger
}

type Option func(fs *FileSystem)

// WithLogger sets the logger that receives the file system's diagnostics,
// including the warning emitted when a read hits a missing block.
func WithLogger(logger *slog.Logger) Option {
	return func(fs *FileSystem) {
		if logger != nil {
			fs.logger = logger
		}
	}
}

// New creates an empty file system. The first identifier handed out, for an
// inode or a block, is 1.
func New(options ...Option) *FileSystem {
	fs := &FileSystem{
		ids:     common.NewAllocator(),
		inodes:  inodetable.New(),
		blocks:  blockstore.New(),
		journal: journal.New(),
		logger:  logging.Default(),
	}
	for _, option := range options {
		option(fs)
	}
	return fs
}

// Journal gives access to the file system's operation log.
func (fs *FileSystem) Journal() *journal.Journal {
	return fs.journal
}

// BlockStore gives direct access to the underlying block storage.
func (fs *FileSystem) BlockStore() *blockstore.Store {
	return fs.blocks
}

func (fs *FileSystem) nextID() uint64 {
	return fs.ids.Next()
}

// CreateDirectory makes a new, empty directory inode and returns its ID. The
// directory is not placed inside any other directory.
func (fs *FileSystem) CreateDirectory(name string) inodefs.InodeID {
	id := inodefs.InodeID(fs.nextID())
	fs.inodes.Insert(inodetable.NewDirectory(id, name))
	fs.journal.AddEntry(fmt.Sprintf("CREATE DIRECTORY: %s", name))

	fs.logger.Debug("created directory", slog.Uint64("inode", uint64(id)), slog.String("name", name))
	return id
}

// CreateFile makes a new, empty regular file inode and returns its ID.
func (fs *FileSystem) CreateFile(name string) inodefs.InodeID {
	id := inodefs.InodeID(fs.nextID())
	fs.inodes.Insert(inodetable.NewRegularFile(id, name))
	fs.journal.AddEntry(fmt.Sprintf("CREATE FILE: %s", name))

	fs.logger.Debug("created file", slog.Uint64("inode", uint64(id)), slog.String("name", name))
	return id
}

// AddFileToDirectory appends `fileID` to the entries of directory `dirID`.
//
// Nothing happens if `dirID` doesn't exist or isn't a directory. `fileID` isn't
// checked at all: it may name a missing inode, a directory, or a child that's
// already present.
func (fs *FileSystem) AddFileToDirectory(fileID, dirID inodefs.InodeID) {
	dir, ok := fs.inodes.Get(dirID)
	if !ok || !dir.IsDir() {
		return
	}

	dir.AddEntry(fileID)
	fs.journal.AddEntry(fmt.Sprintf("ADD FILE: %d TO DIRECTORY: %d", fileID, dirID))

	fs.logger.Debug(
		"added directory entry",
		slog.Uint64("inode", uint64(fileID)),
		slog.Uint64("directory", uint64(dirID)),
	)
}

// WriteToFile replaces the contents of inode `fileID` with `data`.
//
// Every write takes fresh blocks; the blocks of the previous contents stay in
// the store, unreferenced, and pointer slots past the new last block are
// cleared. At most [inodefs.MaxFileDataSize] bytes are stored
// and the rest is dropped, but the inode's size is always set to len(data).
// Writing to an inode that doesn't exist does nothing. Writes aren't journaled.
func (fs *FileSystem) WriteToFile(fileID inodefs.InodeID, data []byte) {
	inode, ok := fs.inodes.Get(fileID)
	if !ok {
		return
	}

	blocksNeeded := inodefs.BlocksNeeded(len(data))
	offset := 0
	for slot := range inode.DirectPointers {
		if blocksNeeded == 0 {
			inode.DirectPointers[slot] = inodefs.InvalidID
			continue
		}

		end := min(offset+inodefs.BlockSize, len(data))
		blockID := inodefs.BlockID(fs.nextID())
		fs.blocks.Put(blockID, data[offset:end])
		inode.DirectPointers[slot] = blockID

		offset = end
		blocksNeeded--
	}

	inode.Size = int64(len(data))
	fs.logger.Debug(
		"wrote file",
		slog.Uint64("inode", uint64(fileID)),
		slog.Int("size", len(data)),
		slog.Int("blocks", inode.NumBlocks()),
	)
}

// ReadFile returns the contents of inode `fileID` by concatenating its blocks
// in pointer order. An unknown ID yields an empty slice.
//
// A pointer to a block that isn't in the store is logged as a warning and
// skipped; the result is shorter, with no filler in the gap.
func (fs *FileSystem) ReadFile(fileID inodefs.InodeID) []byte {
	inode, ok := fs.inodes.Get(fileID)
	if !ok {
		return []byte{}
	}

	output := make([]byte, 0, min(inode.Size, inodefs.MaxFileDataSize))
	for slot, blockID := range inode.DirectPointers {
		if blockID == inodefs.InvalidID {
			continue
		}

		data, found := fs.blocks.Get(blockID)
		if !found {
			fs.logger.Warn(
				"block missing from block store",
				slog.Uint64("inode", uint64(fileID)),
				slog.Int("slot", slot),
				slog.Uint64("block", uint64(blockID)),
			)
			continue
		}
		output = append(output, data...)
	}
	return output
}
