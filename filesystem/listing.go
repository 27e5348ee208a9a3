package filesystem

import (
	"fmt"
	"io"

	"github.com/dargueta/inodefs"
	"github.com/dargueta/inodefs/inodetable"
	"github.com/gocarina/gocsv"
)

// ListingEntry describes one child of a directory.
type ListingEntry struct {
	ID   inodefs.InodeID
	Name string
	Type inodefs.FileType
	Size int64
	// Mode holds the Unix type and permission bits, e.g. for use with
	// [inodefs.ModeString].
	Mode uint32
}

// DirectoryListing describes a directory and the children it can resolve.
type DirectoryListing struct {
	ID      inodefs.InodeID
	Name    string
	Entries []ListingEntry
}

// Listing returns every directory in ascending ID order, each with its
// resolvable children in entry order. Entries naming a missing inode are left
// out; duplicate entries appear as many times as they were added.
func (fs *FileSystem) Listing() []DirectoryListing {
	dirs := fs.inodes.Directories()
	listings := make([]DirectoryListing, 0, len(dirs))

	for _, dir := range dirs {
		listing := DirectoryListing{
			ID:      dir.ID,
			Name:    dir.Name,
			Entries: make([]ListingEntry, 0, len(dir.Entries)),
		}
		for _, childID := range dir.Entries {
			child, ok := fs.inodes.Get(childID)
			if !ok {
				continue
			}
			listing.Entries = append(listing.Entries, listingEntryFor(child))
		}
		listings = append(listings, listing)
	}
	return listings
}

func listingEntryFor(inode *inodetable.Inode) ListingEntry {
	return ListingEntry{
		ID:   inode.ID,
		Name: inode.Name,
		Type: inode.Type,
		Size: inode.Size,
		Mode: inode.Mode(),
	}
}

// ListDirectoriesAndFiles writes a human-readable listing of every directory
// and its children to `w`.
func (fs *FileSystem) ListDirectoriesAndFiles(w io.Writer) error {
	for _, dir := range fs.Listing() {
		_, err := fmt.Fprintf(w, "Directory: %s (ID: %d)\n", dir.Name, dir.ID)
		if err != nil {
			return inodefs.ErrIOFailed.Wrap(err)
		}

		for _, child := range dir.Entries {
			label := "File"
			if child.Type == inodefs.Directory {
				label = "Directory"
			}
			_, err = fmt.Fprintf(
				w,
				"  %s: %s (ID: %d, Size: %d bytes)\n",
				label,
				child.Name,
				child.ID,
				child.Size,
			)
			if err != nil {
				return inodefs.ErrIOFailed.Wrap(err)
			}
		}
	}
	return nil
}

type listingRecord struct {
	DirectoryID   uint64 `csv:"directory_id"`
	DirectoryName string `csv:"directory_name"`
	ChildID       uint64 `csv:"child_id"`
	ChildName     string `csv:"child_name"`
	ChildType     string `csv:"child_type"`
	ChildSize     int64  `csv:"child_size"`
	ChildMode     string `csv:"child_mode"`
}

// WriteListingCSV writes the listing to `w` as CSV, one row per resolvable
// directory entry. Directories without resolvable children produce no rows.
func (fs *FileSystem) WriteListingCSV(w io.Writer) error {
	records := []listingRecord{}
	for _, dir := range fs.Listing() {
		for _, child := range dir.Entries {
			records = append(
				records,
				listingRecord{
					DirectoryID:   uint64(dir.ID),
					DirectoryName: dir.Name,
					ChildID:       uint64(child.ID),
					ChildName:     child.Name,
					ChildType:     child.Type.String(),
					ChildSize:     child.Size,
					ChildMode:     inodefs.ModeString(child.Mode),
				},
			)
		}
	}

	err := gocsv.Marshal(&records, w)
	if err != nil {
		return inodefs.ErrIOFailed.Wrap(err)
	}
	return nil
}
