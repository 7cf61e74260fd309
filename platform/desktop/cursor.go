// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktop

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/quartz/platform"
)

// systemCursor is a shape handle. gogpu cursors are shapes, not objects,
// so releasing one frees nothing.
type systemCursor struct {
	shape gpucontext.CursorShape
}

func (c systemCursor) Shape() gpucontext.CursorShape { return c.shape }
func (c systemCursor) Release()                      {}

type cursorFactory struct {
	provider gpucontext.PlatformProvider
}

func (f *cursorFactory) CreateSystemCursor(shape gpucontext.CursorShape) (platform.Cursor, error) {
	if f.provider == nil {
		return nil, platform.ErrUnsupported
	}
	return systemCursor{shape: shape}, nil
}

func (f *cursorFactory) SetCursor(c platform.Cursor) {
	if f.provider == nil || c == nil {
		return
	}
	f.provider.SetCursor(c.Shape())
}
