package filesystem

import "io/fs"

// FileInfo is an alias for fs.FileInfo from the standard library, keeping a
// stable local name for the abstraction layer.
type FileInfo = fs.FileInfo

// Provider resolves file metadata and content by path.
type Provider interface {
	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)

	// ReadFile reads the file at the given path.
	ReadFile(path string) ([]byte, error)
}
