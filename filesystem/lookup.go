package filesystem

import (
	"fmt"
	"io"

	"github.com/dargueta/inodefs"
	"github.com/dargueta/inodefs/inodetable"
	"github.com/xaionaro-go/bytesextra"
)

// Inode returns a copy of the inode with the given ID. Changing the copy has no
// effect on the file system.
func (fs *FileSystem) Inode(id inodefs.InodeID) (inodetable.Inode, bool) {
	inode, ok := fs.inodes.Get(id)
	if !ok {
		return inodetable.Inode{}, false
	}
	return inode.Clone(), true
}

// Lookup finds the first resolvable child of directory `dirID` named `name`.
func (fs *FileSystem) Lookup(dirID inodefs.InodeID, name string) (inodefs.InodeID, error) {
	dir, ok := fs.inodes.Get(dirID)
	if !ok {
		return inodefs.InvalidID, inodefs.ErrNotFound.WithMessage(
			fmt.Sprintf("no directory with ID %d", dirID))
	}
	if !dir.IsDir() {
		return inodefs.InvalidID, inodefs.ErrNotADirectory.WithMessage(
			fmt.Sprintf("inode %d (%q)", dirID, dir.Name))
	}

	for _, childID := range dir.Entries {
		child, ok := fs.inodes.Get(childID)
		if ok && child.Name == name {
			return childID, nil
		}
	}
	return inodefs.InvalidID, inodefs.ErrNotFound.WithMessage(
		fmt.Sprintf("%q in directory %d", name, dirID))
}

// Open returns a seekable stream over a snapshot of a regular file's contents.
// Writes to the stream change only the snapshot; use [FileSystem.WriteToFile]
// to change the file.
func (fs *FileSystem) Open(fileID inodefs.InodeID) (io.ReadWriteSeeker, error) {
	inode, ok := fs.inodes.Get(fileID)
	if !ok {
		return nil, inodefs.ErrNotFound.WithMessage(fmt.Sprintf("no inode with ID %d", fileID))
	}
	if inode.IsDir() {
		return nil, inodefs.ErrIsADirectory.WithMessage(
			fmt.Sprintf("inode %d (%q)", fileID, inode.Name))
	}
	return bytesextra.NewReadWriteSeeker(fs.ReadFile(fileID)), nil
}
