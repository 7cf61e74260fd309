package engine

// MimeTextPlain is the only clipboard type the shell exchanges with the
// system.
const MimeTextPlain = "text/plain"

// ClipboardEntry is one typed clipboard payload.
type ClipboardEntry struct {
	Data     []byte
	MimeType string
}

// Clipboard is the system clipboard as seen by a View.
type Clipboard interface {
	// ReadText returns the clipboard text. It reports false when the
	// clipboard is empty or cannot be read.
	ReadText() (string, bool)

	// ReadEntries returns the clipboard as typed entries.
	ReadEntries() []ClipboardEntry

	// WriteEntry stores e. Unsupported types are ignored.
	WriteEntry(e ClipboardEntry)
}
