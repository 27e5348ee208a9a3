package filesystem

import "github.com/dargueta/inodefs"

// SampleContents is what [PopulateSample] writes to doc1.txt.
const SampleContents = "Hello, World!"

// SampleTree holds the identifiers assigned by [PopulateSample].
type SampleTree struct {
	Documents inodefs.InodeID
	Pictures  inodefs.InodeID
	Doc1      inodefs.InodeID
	Doc2      inodefs.InodeID
	Pic1      inodefs.InodeID
}

// PopulateSample builds the sample tree in `fs`: directories "Documents" and
// "Pictures", files "doc1.txt" and "doc2.txt" in Documents, "pic1.jpg" in
// Pictures, and [SampleContents] written to doc1.txt. On an empty file system
// this journals eight entries and assigns IDs 1 through 5 in that order.
func PopulateSample(fs *FileSystem) SampleTree {
	tree := SampleTree{
		Documents: fs.CreateDirectory("Documents"),
		Pictures:  fs.CreateDirectory("Pictures"),
		Doc1:      fs.CreateFile("doc1.txt"),
		Doc2:      fs.CreateFile("doc2.txt"),
		Pic1:      fs.CreateFile("pic1.jpg"),
	}

	fs.AddFileToDirectory(tree.Doc1, tree.Documents)
	fs.AddFileToDirectory(tree.Doc2, tree.Documents)
	fs.AddFileToDirectory(tree.Pic1, tree.Pictures)
	fs.WriteToFile(tree.Doc1, []byte(SampleContents))
	return tree
}
