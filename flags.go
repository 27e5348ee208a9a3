package inodefs

const (
	S_IXOTH = 1 << iota // 00001
	S_IWOTH = 1 << iota // 00002
	S_IROTH = 1 << iota
	S_IXGRP = 1 << iota
	S_IWGRP = 1 << iota // 00010
	S_IRGRP = 1 << iota
	S_IXUSR = 1 << iota
	S_IWUSR = 1 << iota
	S_IRUSR = 1 << iota // 00100
)

const S_IFDIR = 0x4000
const S_IFREG = 0x8000
const S_IFMT = 0xf000

const S_IRWXU = S_IXUSR | S_IWUSR | S_IRUSR

// DefaultDirectoryPermissions is rwxr-xr-x. Directories must be marked
// executable to be traversable on *NIX systems.
const DefaultDirectoryPermissions = S_IRWXU | S_IRGRP | S_IXGRP | S_IROTH | S_IXOTH

// DefaultFilePermissions is rw-r--r--.
const DefaultFilePermissions = S_IRUSR | S_IWUSR | S_IRGRP | S_IROTH

// ModeString renders mode bits the way `ls -l` does, e.g. "drwxr-xr-x".
func ModeString(mode uint32) string {
	out := []byte("----------")
	switch mode & S_IFMT {
	case S_IFDIR:
		out[0] = 'd'
	}

	const rwx = "rwxrwxrwx"
	for i := 0; i < 9; i++ {
		if mode&(1<<uint(8-i)) != 0 {
			out[i+1] = rwx[i]
		}
	}
	return string(out)
}
