package filesystem

import "os"

// OSFileSystem implements Provider against the real OS filesystem.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat returns file information for the given path.
func (f *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the file at the given path.
func (f *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
