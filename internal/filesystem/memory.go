package filesystem

import (
	"io/fs"
	"path"
	"time"
)

// MemoryFileSystem implements Provider over an in-memory file map. It exists
// for tests that need exact, host-independent modification times.
type MemoryFileSystem struct {
	files map[string]*memFile
}

type memFile struct {
	name    string
	content []byte
	modTime time.Time
}

// NewMemoryFileSystem creates an empty in-memory provider.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{files: make(map[string]*memFile)}
}

// AddFile registers a file under the given path with the given content and
// modification time, replacing any previous registration.
func (m *MemoryFileSystem) AddFile(filePath string, content []byte, modTime time.Time) {
	m.files[filePath] = &memFile{
		name:    path.Base(filePath),
		content: content,
		modTime: modTime,
	}
}

// Stat returns file information for the given path.
func (m *MemoryFileSystem) Stat(filePath string) (FileInfo, error) {
	f, ok := m.files[filePath]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
	}
	return &memFileInfo{file: f}, nil
}

// ReadFile reads the file at the given path.
func (m *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	f, ok := m.files[filePath]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	content := make([]byte, len(f.content))
	copy(content, f.content)
	return content, nil
}

// memFileInfo adapts a memFile to fs.FileInfo.
type memFileInfo struct {
	file *memFile
}

func (i *memFileInfo) Name() string       { return i.file.name }
func (i *memFileInfo) Size() int64        { return int64(len(i.file.content)) }
func (i *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (i *memFileInfo) ModTime() time.Time { return i.file.modTime }
func (i *memFileInfo) IsDir() bool        { return false }
func (i *memFileInfo) Sys() any           { return nil }
