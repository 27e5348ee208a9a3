package testing

import (
	"bytes"
	"crypto/rand"
	"log/slog"
	"testing"

	"github.com/dargueta/inodefs/filesystem"
	"github.com/stretchr/testify/require"
)

// RandomData returns `size` random bytes. It is guaranteed to either return a
// valid slice or fail the test and abort.
func RandomData(t *testing.T, size int) []byte {
	data := make([]byte, size)
	_, err := rand.Read(data)
	require.NoErrorf(t, err, "failed to generate %d random bytes", size)
	return data
}

// NewFileSystem creates an empty file system whose log records go to the
// returned buffer instead of standard error, so tests can inspect warnings.
func NewFileSystem(t *testing.T) (*filesystem.FileSystem, *bytes.Buffer) {
	logOutput := &bytes.Buffer{}
	logger := slog.New(
		slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	fs := filesystem.New(filesystem.WithLogger(logger))
	require.NotNil(t, fs)
	return fs, logOutput
}

// DemoIDs holds the identifiers assigned by [NewDemoFileSystem].
type DemoIDs = filesystem.SampleTree

// DemoFileContents is what [NewDemoFileSystem] writes to doc1.txt.
const DemoFileContents = filesystem.SampleContents

// NewDemoFileSystem creates a file system holding the sample tree built by
// [filesystem.PopulateSample].
func NewDemoFileSystem(t *testing.T) (*filesystem.FileSystem, DemoIDs, *bytes.Buffer) {
	fs, logOutput := NewFileSystem(t)
	ids := filesystem.PopulateSample(fs)

	require.EqualValues(t, 1, ids.Documents)
	require.EqualValues(t, 5, ids.Pic1)
	require.Equal(t, 8, fs.Journal().Len(), "demo should journal 5 creates and 3 adds")
	return fs, ids, logOutput
}
