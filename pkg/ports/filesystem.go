package ports

// FileSystem abstracts the file operations codesnap performs.
// Paths are passed through unchanged; expansion happens before they get here.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)

	// WriteFile creates or truncates path and writes data to it.
	WriteFile(path string, data []byte) error

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error

	// Exists reports whether path exists. A non-nil error means the answer
	// is unknown.
	Exists(path string) (bool, error)

	Remove(path string) error

	// Rename moves oldpath to newpath, replacing a file at newpath.
	Rename(oldpath, newpath string) error
}
