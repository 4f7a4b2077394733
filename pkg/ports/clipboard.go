package ports

// Clipboard abstracts the system clipboard.
type Clipboard interface {
	// WritePNG places PNG-encoded image data on the clipboard.
	WritePNG(data []byte) error
}
