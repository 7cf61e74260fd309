// Package quartz is a single-view browser shell.
//
// # Overview
//
// quartz opens one native window, hosts one web view produced by an
// external engine, forwards native input to that view and presents the
// bitmaps it paints. The engine itself is opaque: quartz only talks to it
// through [github.com/gogpu/quartz/engine.View].
//
// # Architecture
//
// The module is organized into:
//   - platform: native window, event encoding, draw context (gogpu or headless)
//   - engine: the capability interface of the hosted engine, plus a placeholder
//   - input: translation of native events into engine input events
//   - compositor: display surface lifetime, upload and stretch-present
//   - bridge: cursor and clipboard plumbing between engine and platform
//   - shell: the view controller, the paint throttle and the two timers
//
// Everything runs on one cooperative loop (internal/eventloop) pumped by
// the platform driver. Engine notifications are posted back onto that loop.
//
// # Logging
//
// quartz is silent by default. Call [SetLogger] to route diagnostics to a
// [log/slog] logger; the same logger is handed to gg.
package quartz

// Version is the quartz release.
const Version = "0.3.0"
