package input

import (
	"strings"

	"github.com/gogpu/gpucontext"
)

// KeyModifier is a set of engine modifier flags.
type KeyModifier uint8

// Engine modifier flags.
const (
	ModNone  KeyModifier = 0
	ModAlt   KeyModifier = 1 << 0
	ModCtrl  KeyModifier = 1 << 1
	ModShift KeyModifier = 1 << 2
)

// ModifiersFromNative maps native modifiers. Only shift, control and alt
// are recognised.
func ModifiersFromNative(m gpucontext.Modifiers) KeyModifier {
	mods := ModNone
	if m&gpucontext.ModShift != 0 {
		mods |= ModShift
	}
	if m&gpucontext.ModControl != 0 {
		mods |= ModCtrl
	}
	if m&gpucontext.ModAlt != 0 {
		mods |= ModAlt
	}
	return mods
}

// Has reports whether every flag in f is set.
func (m KeyModifier) Has(f KeyModifier) bool {
	return m&f == f
}

func (m KeyModifier) String() string {
	if m == ModNone {
		return "None"
	}
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}
