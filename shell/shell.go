// Package shell runs one engine view in one native window.
//
// A Shell owns the window, its draw context and a [View]. Two repeating
// tasks on a cooperative loop drive everything: the input tick drains
// native events and forwards them, the paint tick composites the engine's
// bitmap when something changed. The platform decides when the loop
// turns; the Shell never blocks.
package shell

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/quartz"
	"github.com/gogpu/quartz/engine"
	"github.com/gogpu/quartz/internal/config"
	"github.com/gogpu/quartz/internal/eventloop"
	"github.com/gogpu/quartz/internal/theme"
	"github.com/gogpu/quartz/platform"
)

// Initialisation errors.
var (
	ErrWindow      = errors.New("shell: cannot open window")
	ErrDrawContext = errors.New("shell: cannot create draw context")
	ErrEngine      = errors.New("shell: cannot create engine view")
	ErrNoPlatform  = errors.New("shell: no platform")
)

// Shell is a single-view browser shell.
type Shell struct {
	platform platform.Platform
	factory  engine.Factory
	cfg      config.Config

	loop    *eventloop.Loop
	window  platform.Window
	draw    platform.DrawContext
	view    *View
	watcher *theme.Watcher

	inputTimer *eventloop.Timer
	paintTimer *eventloop.Timer
	events     []platform.Event
}

// New creates a shell. Nothing is opened until Run.
func New(p platform.Platform, factory engine.Factory, cfg config.Config) *Shell {
	return &Shell{
		platform: p,
		factory:  factory,
		cfg:      cfg,
		loop:     eventloop.New(),
	}
}

// View returns the view, or nil outside Run.
func (s *Shell) View() *View { return s.view }

// Quit asks a running shell to stop with exit code 0. Safe from any
// goroutine.
func (s *Shell) Quit() {
	s.loop.Post(func() { s.stop(0) })
}

// Run opens the window, runs until quit and tears everything down.
// The exit code is 0 after a quit event or escape, 1 when
// initialisation or the platform fails.
func (s *Shell) Run() (int, error) {
	if err := s.open(); err != nil {
		return 1, errors.Join(err, s.close())
	}

	s.inputTimer = s.loop.Every(s.cfg.InputInterval, s.inputTick)
	s.paintTimer = s.loop.Every(s.cfg.PaintInterval, s.paintTick)
	quartz.Logger().Info("shell: running", "platform", s.platform.Name(), "url", s.cfg.StartURL)

	runErr := s.window.Run(s.loop.RunOnce)
	if s.loop.Running() {
		s.stop(0)
	}
	closeErr := s.close()
	if runErr != nil {
		return 1, errors.Join(fmt.Errorf("shell: %w", runErr), closeErr)
	}
	quartz.Logger().Info("shell: stopped", "code", s.loop.ExitCode())
	return s.loop.ExitCode(), closeErr
}

func (s *Shell) open() error {
	if s.platform == nil {
		return ErrNoPlatform
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	w, err := s.platform.OpenWindow(platform.WindowOptions{
		Title:  s.cfg.Title,
		Width:  s.cfg.Width,
		Height: s.cfg.Height,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWindow, err)
	}
	s.window = w

	draw, err := w.NewDrawContext()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDrawContext, err)
	}
	s.draw = draw

	view, err := newView(w, draw, s.factory, viewConfig{
		title:      s.cfg.Title,
		background: s.cfg.BackgroundColor(),
		post:       s.loop.Post,
	})
	if err != nil {
		return err
	}
	s.view = view

	view.SetActive(true)
	view.UpdateTheme(s.loadTheme())
	view.Load(s.cfg.StartURL)
	view.MarkDirty()

	if s.cfg.ThemeFile != "" && s.cfg.WatchTheme {
		s.watcher, err = theme.Watch(s.cfg.ThemeFile, s.loop.Post, s.themeChanged)
		if err != nil {
			quartz.Logger().Warn("shell: theme file not watched", "path", s.cfg.ThemeFile, "err", err)
		}
	}
	return nil
}

func (s *Shell) loadTheme() theme.Theme {
	if s.cfg.ThemeFile == "" {
		return theme.Default(s.window.DarkMode())
	}
	t, err := theme.Load(s.cfg.ThemeFile)
	if err != nil {
		quartz.Logger().Warn("shell: using default theme", "err", err)
		return theme.Default(s.window.DarkMode())
	}
	return t
}

func (s *Shell) themeChanged(t theme.Theme) {
	if s.view == nil {
		return
	}
	quartz.Logger().Debug("shell: theme reloaded", "name", t.Name)
	s.view.UpdateTheme(t)
}

// close releases resources in reverse acquisition order.
func (s *Shell) close() error {
	var errs []error
	if s.watcher != nil {
		errs = append(errs, s.watcher.Close())
		s.watcher = nil
	}
	if s.view != nil {
		errs = append(errs, s.view.Close())
		s.view = nil
	}
	if s.draw != nil {
		errs = append(errs, s.draw.Close())
		s.draw = nil
	}
	if s.window != nil {
		errs = append(errs, s.window.Close())
		s.window = nil
	}
	return errors.Join(errs...)
}

func (s *Shell) stop(code int) {
	if s.inputTimer != nil {
		s.inputTimer.Stop()
	}
	if s.paintTimer != nil {
		s.paintTimer.Stop()
	}
	s.loop.Quit(code)
}

func (s *Shell) inputTick() {
	s.events = s.window.PollEvents(s.events[:0])
	for _, ev := range s.events {
		if ev.IsQuit() {
			quartz.Logger().Debug("shell: quit", "event", ev.Kind)
			s.stop(0)
			return
		}
		s.handle(ev)
	}
}

func (s *Shell) handle(ev platform.Event) {
	v := s.view
	switch ev.Kind {
	case platform.EventResize:
		size := s.window.Size()
		if ev.Width > 0 && ev.Height > 0 {
			size.X, size.Y = ev.Width, ev.Height
		}
		v.Resize(size.X, size.Y)
	case platform.EventFocusGained, platform.EventFocusLost:
		v.SetFocus(ev.Kind == platform.EventFocusGained)
		v.MarkDirty()
	case platform.EventExposed, platform.EventRestored, platform.EventShown:
		v.MarkDirty()
	case platform.EventScaleChanged:
		v.SetDevicePixelRatio(s.window.ScaleFactor())
		v.SyncScreenGeometry()
	case platform.EventKeyDown, platform.EventKeyUp:
		if z, ok := zoomChord(ev); ok {
			if ev.Kind == platform.EventKeyDown {
				s.zoom(z)
			}
			return
		}
		v.Enqueue(ev)
	default:
		v.Enqueue(ev)
	}
}

type zoomAction uint8

const (
	zoomIn zoomAction = iota
	zoomOut
	zoomReset
)

func zoomChord(ev platform.Event) (zoomAction, bool) {
	if ev.Mods&gpucontext.ModControl == 0 {
		return 0, false
	}
	switch ev.Key {
	case gpucontext.KeyEqual, gpucontext.KeyNumpadAdd:
		return zoomIn, true
	case gpucontext.KeyMinus, gpucontext.KeyNumpadSubtract:
		return zoomOut, true
	case gpucontext.Key0, gpucontext.KeyNumpad0:
		return zoomReset, true
	}
	return 0, false
}

func (s *Shell) zoom(z zoomAction) {
	v := s.view
	switch z {
	case zoomIn:
		v.SetZoom(v.Zoom() * ZoomStep)
	case zoomOut:
		v.SetZoom(v.Zoom() / ZoomStep)
	case zoomReset:
		v.SetZoom(1)
	}
	quartz.Logger().Debug("shell: zoom", "zoom", v.Zoom(), "viewport", v.Viewport())
}

func (s *Shell) paintTick() {
	if !s.view.ConsumeDirty() {
		return
	}
	if err := s.view.Paint(); err != nil {
		quartz.Logger().Warn("shell: frame skipped", "err", err)
	}
}
