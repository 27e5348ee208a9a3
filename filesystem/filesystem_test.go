package filesystem_test

import (
	"bytes"
	"testing"

	"github.com/dargueta/inodefs"
	fstest "github.com/dargueta/inodefs/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario__DocumentsHelloWorld(t *testing.T) {
	fs, _ := fstest.NewFileSystem(t)

	dirID := fs.CreateDirectory("Documents")
	fileID := fs.CreateFile("doc1.txt")
	fs.AddFileToDirectory(fileID, dirID)
	fs.WriteToFile(fileID, []byte("Hello, World!"))

	assert.EqualValues(t, 1, dirID)
	assert.EqualValues(t, 2, fileID)
	assert.Equal(t, []byte("Hello, World!"), fs.ReadFile(fileID))

	listing := fs.Listing()
	require.Len(t, listing, 1)
	require.Len(t, listing[0].Entries, 1)
	assert.Equal(t, "doc1.txt", listing[0].Entries[0].Name)
	assert.EqualValues(t, 13, listing[0].Entries[0].Size)

	require.Equal(t, 3, fs.Journal().Len())
	description, ok := fs.Journal().Undo()
	require.True(t, ok)
	assert.Equal(t, "ADD FILE: 2 TO DIRECTORY: 1", description)
	assert.Equal(t, 2, fs.Journal().Len())

	// Undo doesn't roll anything back.
	dir, ok := fs.Inode(dirID)
	require.True(t, ok)
	assert.Equal(t, []inodefs.InodeID{fileID}, dir.Entries)
	assert.Equal(t, []byte("Hello, World!"), fs.ReadFile(fileID))
}

func TestCreate__IDsAreSequentialAndJournaledOnce(t *testing.T) {
	fs, _ := fstest.NewFileSystem(t)

	ids := []inodefs.InodeID{
		fs.CreateFile("a"),
		fs.CreateDirectory("b"),
		fs.CreateFile("c"),
	}
	assert.Equal(t, []inodefs.InodeID{1, 2, 3}, ids)

	entries := fs.Journal().Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "CREATE FILE: a", entries[0].Description)
	assert.Equal(t, "CREATE DIRECTORY: b", entries[1].Description)
	assert.Equal(t, "CREATE FILE: c", entries[2].Description)
	for _, entry := range entries {
		assert.True(t, entry.Committed)
	}
}

func TestCreate__NewInodesAreEmpty(t *testing.T) {
	fs, _ := fstest.NewFileSystem(t)

	dir, ok := fs.Inode(fs.CreateDirectory("d"))
	require.True(t, ok)
	assert.True(t, dir.IsDir())
	assert.NotNil(t, dir.Entries)
	assert.Empty(t, dir.Entries)
	assert.Zero(t, dir.Size)
	assert.Zero(t, dir.NumBlocks())

	file, ok := fs.Inode(fs.CreateFile("f"))
	require.True(t, ok)
	assert.True(t, file.IsFile())
	assert.Nil(t, file.Entries)
	assert.Zero(t, file.Size)
	assert.Zero(t, file.NumBlocks())
}

func TestCreate__DuplicateNamesAllowed(t *testing.T) {
	fs, _ := fstest.NewFileSystem(t)

	first := fs.CreateFile("same")
	second := fs.CreateFile("same")
	assert.NotEqual(t, first, second)
}

func TestAddFileToDirectory__MissingDirectoryIsNoOp(t *testing.T) {
	fs, _ := fstest.NewFileSystem(t)
	fileID := fs.CreateFile("f")

	fs.AddFileToDirectory(fileID, 999)
	assert.Equal(t, 1, fs.Journal().Len())
}

func TestAddFileToDirectory__TargetIsFileIsNoOp(t *testing.T) {
	fs, _ := fstest.NewFileSystem(t)
	target := fs.CreateFile("target")
	fileID := fs.CreateFile("f")

	fs.AddFileToDirectory(fileID, target)

	assert.Equal(t, 2, fs.Journal().Len())
	inode, ok := fs.Inode(target)
	require.True(t, ok)
	assert.Nil(t, inode.Entries)
}

func TestAddFileToDirectory__DuplicatesAndUnknownChildrenKept(t *testing.T) {
	fs, _ := fstest.NewFileSystem(t)
	dirID := fs.CreateDirectory("d")
	fileID := fs.CreateFile("f")

	fs.AddFileToDirectory(fileID, dirID)
	fs.AddFileToDirectory(fileID, dirID)
	fs.AddFileToDirectory(12345, dirID)

	dir, _ := fs.Inode(dirID)
	assert.Equal(t, []inodefs.InodeID{fileID, fileID, 12345}, dir.Entries)
	assert.Equal(t, 5, fs.Journal().Len())
	assert.Equal(
		t,
		"ADD FILE: 12345 TO DIRECTORY: 1",
		fs.Journal().Entries()[4].Description,
	)

	// The dangling entry is skipped, the duplicate is listed twice.
	listing := fs.Listing()
	require.Len(t, listing, 1)
	require.Len(t, listing[0].Entries, 2)
	assert.Equal(t, fileID, listing[0].Entries[0].ID)
	assert.Equal(t, fileID, listing[0].Entries[1].ID)
}

func TestAddFileToDirectory__NestedDirectory(t *testing.T) {
	fs, _ := fstest.NewFileSystem(t)
	parent := fs.CreateDirectory("parent")
	child := fs.CreateDirectory("child")

	fs.AddFileToDirectory(child, parent)

	listing := fs.Listing()
	require.Len(t, listing, 2)
	require.Len(t, listing[0].Entries, 1)
	assert.Equal(t, inodefs.Directory, listing[0].Entries[0].Type)
	assert.Equal(t, "drwxr-xr-x", inodefs.ModeString(listing[0].Entries[0].Mode))
	assert.Empty(t, listing[1].Entries)
}

func TestWriteRead__RoundTrip(t *testing.T) {
	sizes := []int{
		0,
		1,
		inodefs.BlockSize - 1,
		inodefs.BlockSize,
		inodefs.BlockSize + 1,
		3*inodefs.BlockSize + 17,
		inodefs.MaxFileDataSize,
	}

	for _, size := range sizes {
		fs, _ := fstest.NewFileSystem(t)
		fileID := fs.CreateFile("f")
		data := fstest.RandomData(t, size)

		fs.WriteToFile(fileID, data)

		assert.Equalf(t, data, fs.ReadFile(fileID), "round trip failed for %d bytes", size)
		inode, _ := fs.Inode(fileID)
		assert.EqualValues(t, size, inode.Size)
		assert.Equal(t, inodefs.BlocksNeeded(size), inode.NumBlocks())
		assert.True(t, inode.PointersAreContiguous())
		assert.Equal(t, 1, fs.Journal().Len(), "writes must not be journaled")
	}
}

func TestWriteToFile__BlockIDsShareCounter(t *testing.T) {
	fs, _ := fstest.NewFileSystem(t)
	fileID := fs.CreateFile("f")

	fs.WriteToFile(fileID, fstest.RandomData(t, 2*inodefs.BlockSize+1))
	inode, _ := fs.Inode(fileID)
	assert.Equal(t, []inodefs.BlockID{2, 3, 4}, inode.Blocks())

	assert.EqualValues(t, 5, fs.CreateFile("g"))
}

func TestWriteToFile__TruncatesPastDirectPointers(t *testing.T) {
	fs, _ := fstest.NewFileSystem(t)
	fileID := fs.CreateFile("big")
	data := fstest.RandomData(t, inodefs.MaxFileDataSize+inodefs.BlockSize+5)

	fs.WriteToFile(fileID, data)

	inode, _ := fs.Inode(fileID)
	assert.EqualValues(t, len(data), inode.Size)
	assert.Equal(t, inodefs.NumDirectPointers, inode.NumBlocks())

	readBack := fs.ReadFile(fileID)
	assert.Len(t, readBack, inodefs.MaxFileDataSize)
	assert.Equal(t, data[:inodefs.MaxFileDataSize], readBack)
	assert.Equal(t, inodefs.NumDirectPointers, fs.BlockStore().Len())

	err := fs.Check()
	require.Error(t, err)
	assert.ErrorIs(t, err, inodefs.ErrSizeMismatch)
}

func TestWriteToFile__UnknownIDIsNoOp(t *testing.T) {
	fs, _ := fstest.NewFileSystem(t)

	fs.WriteToFile(42, []byte("data"))

	assert.Zero(t, fs.BlockStore().Len())
	assert.EqualValues(t, 1, fs.Stat().NextID)
}

func TestWriteToFile__RewriteOrphansOldBlocks(t *testing.T) {
	fs, _ := fstest.NewFileSystem(t)
	fileID := fs.CreateFile("f")

	fs.WriteToFile(fileID, fstest.RandomData(t, 2*inodefs.BlockSize))
	second := []byte("short")
	fs.WriteToFile(fileID, second)

	assert.Equal(t, second, fs.ReadFile(fileID))
	inode, _ := fs.Inode(fileID)
	assert.Equal(t, []inodefs.BlockID{4}, inode.Blocks())
	assert.EqualValues(t, len(second), inode.Size)

	stat := fs.Stat()
	assert.Equal(t, 3, stat.Blocks)
	assert.Equal(t, 1, stat.ReachableBlocks)
	assert.Equal(t, 2, stat.OrphanedBlocks)
	assert.NoError(t, fs.Check())
}

func TestWriteToFile__EmptyWriteClearsContents(t *testing.T) {
	fs, _ := fstest.NewFileSystem(t)
	fileID := fs.CreateFile("f")

	fs.WriteToFile(fileID, []byte("something"))
	fs.WriteToFile(fileID, nil)

	assert.Empty(t, fs.ReadFile(fileID))
	inode, _ := fs.Inode(fileID)
	assert.Zero(t, inode.Size)
	assert.Zero(t, inode.NumBlocks())
}

func TestReadFile__UnknownIDIsEmpty(t *testing.T) {
	fs, _ := fstest.NewFileSystem(t)

	data := fs.ReadFile(7)
	assert.NotNil(t, data)
	assert.Empty(t, data)
}

func TestReadFile__MissingBlockWarnsAndSkips(t *testing.T) {
	fs, logOutput := fstest.NewFileSystem(t)
	fileID := fs.CreateFile("f")
	data := fstest.RandomData(t, 3*inodefs.BlockSize)
	fs.WriteToFile(fileID, data)

	inode, _ := fs.Inode(fileID)
	lost := inode.DirectPointers[1]
	require.True(t, fs.BlockStore().Remove(lost))
	logOutput.Reset()

	readBack := fs.ReadFile(fileID)

	expected := append(
		append([]byte{}, data[:inodefs.BlockSize]...),
		data[2*inodefs.BlockSize:]...,
	)
	assert.Equal(t, expected, readBack)
	assert.Contains(t, logOutput.String(), "level=WARN")
	assert.Contains(t, logOutput.String(), "block missing from block store")
	assert.Contains(t, logOutput.String(), "block=3")

	err := fs.Check()
	require.Error(t, err)
	assert.ErrorIs(t, err, inodefs.ErrMissingBlock)
	assert.NotErrorIs(t, err, inodefs.ErrUnallocatedID)
	assert.Equal(t, 1, fs.Stat().MissingBlocks)
}

func TestUndo__LeavesStateAlone(t *testing.T) {
	fs, ids, _ := fstest.NewDemoFileSystem(t)
	before := fs.Listing()

	for fs.Journal().Len() > 0 {
		_, ok := fs.Journal().Undo()
		require.True(t, ok)
	}
	_, ok := fs.Journal().Undo()
	assert.False(t, ok)

	assert.Equal(t, before, fs.Listing())
	assert.Equal(t, []byte(fstest.DemoFileContents), fs.ReadFile(ids.Doc1))
}

func TestListDirectoriesAndFiles__Demo(t *testing.T) {
	fs, _, _ := fstest.NewDemoFileSystem(t)
	output := &bytes.Buffer{}

	require.NoError(t, fs.ListDirectoriesAndFiles(output))

	expected := "Directory: Documents (ID: 1)\n" +
		"  File: doc1.txt (ID: 3, Size: 13 bytes)\n" +
		"  File: doc2.txt (ID: 4, Size: 0 bytes)\n" +
		"Directory: Pictures (ID: 2)\n" +
		"  File: pic1.jpg (ID: 5, Size: 0 bytes)\n"
	assert.Equal(t, expected, output.String())
}

func TestWriteListingCSV__Demo(t *testing.T) {
	fs, _, _ := fstest.NewDemoFileSystem(t)
	output := &bytes.Buffer{}

	require.NoError(t, fs.WriteListingCSV(output))

	expected := "directory_id,directory_name,child_id,child_name,child_type,child_size,child_mode\n" +
		"1,Documents,3,doc1.txt,file,13,-rw-r--r--\n" +
		"1,Documents,4,doc2.txt,file,0,-rw-r--r--\n" +
		"2,Pictures,5,pic1.jpg,file,0,-rw-r--r--\n"
	assert.Equal(t, expected, output.String())
}

func TestWriteListingCSV__NestedDirectoryMode(t *testing.T) {
	fs, _ := fstest.NewFileSystem(t)
	parent := fs.CreateDirectory("parent")
	fs.AddFileToDirectory(fs.CreateDirectory("child"), parent)
	fs.AddFileToDirectory(fs.CreateFile("notes.txt"), parent)
	output := &bytes.Buffer{}

	require.NoError(t, fs.WriteListingCSV(output))

	assert.Contains(t, output.String(), "1,parent,2,child,directory,0,drwxr-xr-x\n")
	assert.Contains(t, output.String(), "1,parent,3,notes.txt,file,0,-rw-r--r--\n")
}
