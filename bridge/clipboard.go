package bridge

import (
	"github.com/gogpu/quartz"
	"github.com/gogpu/quartz/engine"
	"github.com/gogpu/quartz/platform"
)

// Clipboard exposes the system clipboard to an engine. Only plain text
// is exchanged. Failures are logged and otherwise ignored.
type Clipboard struct {
	native platform.Clipboard
}

var _ engine.Clipboard = (*Clipboard)(nil)

// NewClipboard creates a clipboard bridge over native.
func NewClipboard(native platform.Clipboard) *Clipboard {
	return &Clipboard{native: native}
}

// ReadText returns the clipboard text, reporting false when it is empty
// or unreadable.
func (c *Clipboard) ReadText() (string, bool) {
	if c.native == nil {
		return "", false
	}
	text, err := c.native.ClipboardRead()
	if err != nil {
		quartz.Logger().Debug("bridge: clipboard read failed", "err", err)
		return "", false
	}
	if text == "" {
		return "", false
	}
	return text, true
}

// ReadEntries returns one text/plain entry, or nothing.
func (c *Clipboard) ReadEntries() []engine.ClipboardEntry {
	text, ok := c.ReadText()
	if !ok {
		return nil
	}
	return []engine.ClipboardEntry{{Data: []byte(text), MimeType: engine.MimeTextPlain}}
}

// WriteEntry writes text/plain entries to the clipboard.
func (c *Clipboard) WriteEntry(e engine.ClipboardEntry) {
	if e.MimeType != engine.MimeTextPlain {
		quartz.Logger().Debug("bridge: clipboard type not supported", "mime", e.MimeType)
		return
	}
	if c.native == nil {
		return
	}
	if err := c.native.ClipboardWrite(string(e.Data)); err != nil {
		quartz.Logger().Debug("bridge: clipboard write failed", "err", err)
	}
}
