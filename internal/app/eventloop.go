package app

import (
	"errors"

	"github.com/dshills/todolist/internal/renderer/backend"
	"github.com/dshills/todolist/internal/view"
)

// Interrupt payloads posted from other goroutines.
type (
	quitRequest   struct{}
	reloadRequest struct{}
)

// eventLoop polls the backend until a handler returns ErrQuit or the
// backend shuts down.
func (a *Application) eventLoop() error {
	for {
		ev := a.backend.PollEvent()
		if ev.Type == backend.EventNone {
			return nil
		}
		if err := a.HandleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				a.logger.Info("quit")
				return nil
			}
			return err
		}
	}
}

// HandleEvent processes one backend event and redraws if anything changed.
// Returns ErrQuit if the application should exit.
func (a *Application) HandleEvent(ev backend.Event) error {
	var err error
	switch ev.Type {
	case backend.EventResize:
		a.dirty = true
	case backend.EventKey:
		err = a.handleKeyEvent(ev)
	case backend.EventMouse:
		a.handleMouseEvent(ev)
	case backend.EventPaste:
		a.pasting = ev.PasteStart
	case backend.EventInterrupt:
		err = a.handleInterrupt(ev)
	}
	a.flush()
	return err
}

func (a *Application) handleInterrupt(ev backend.Event) error {
	switch ev.Data.(type) {
	case quitRequest:
		return ErrQuit
	case reloadRequest:
		a.reloadConfig()
	}
	return nil
}

// handleKeyEvent routes a key by paste state and focus.
func (a *Application) handleKeyEvent(ev backend.Event) error {
	if a.pasting {
		a.handlePasteKey(ev)
		return nil
	}

	switch ev.Key {
	case backend.KeyCtrlC, backend.KeyCtrlQ:
		return ErrQuit
	case backend.KeyCtrlL:
		a.backend.Sync()
		return nil
	case backend.KeyTab, backend.KeyBacktab:
		a.toggleFocus()
		return nil
	}

	if a.focus == view.FocusList {
		a.handleListKey(ev)
	} else {
		a.handleInputKey(ev)
	}
	return nil
}

// handlePasteKey inserts bracketed paste content. Line breaks and tabs
// become spaces so a paste never submits.
func (a *Application) handlePasteKey(ev backend.Event) {
	switch ev.Key {
	case backend.KeyRune:
		a.buffer.InsertRune(ev.Rune)
	case backend.KeyEnter, backend.KeyTab:
		a.buffer.InsertRune(' ')
	default:
		return
	}
	a.focus = view.FocusInput
	a.dirty = true
}

func (a *Application) handleInputKey(ev backend.Event) {
	changed := true
	switch ev.Key {
	case backend.KeyRune:
		if ev.Mod.Has(backend.ModAlt) || ev.Mod.Has(backend.ModMeta) {
			return
		}
		a.buffer.InsertRune(ev.Rune)
	case backend.KeyBackspace:
		changed = a.buffer.Backspace()
	case backend.KeyDelete:
		changed = a.buffer.DeleteForward()
	case backend.KeyLeft:
		changed = a.buffer.MoveLeft()
	case backend.KeyRight:
		changed = a.buffer.MoveRight()
	case backend.KeyHome, backend.KeyCtrlA:
		a.buffer.Home()
	case backend.KeyEnd, backend.KeyCtrlE:
		a.buffer.End()
	case backend.KeyCtrlU:
		changed = a.buffer.DeleteToStart()
	case backend.KeyCtrlV:
		a.pasteClipboard()
	case backend.KeyEnter:
		a.AddPending()
		return
	case backend.KeyDown:
		a.setFocus(view.FocusList)
		return
	default:
		return
	}
	if changed {
		a.dirty = true
	}
}

func (a *Application) pasteClipboard() {
	text, err := a.clipboard.ReadText()
	if err != nil {
		a.logger.Warn("clipboard: %v", err)
		a.backend.Beep()
		return
	}
	a.buffer.Insert(text)
}

func (a *Application) handleListKey(ev backend.Event) {
	switch ev.Key {
	case backend.KeyUp:
		a.moveSelection(-1)
	case backend.KeyDown:
		a.moveSelection(1)
	case backend.KeyPageUp:
		a.moveSelection(-a.list.PageSize())
	case backend.KeyPageDown:
		a.moveSelection(a.list.PageSize())
	case backend.KeyHome:
		a.selectIndex(0)
	case backend.KeyEnd:
		a.selectIndex(a.store.Len() - 1)
	case backend.KeyEnter:
		a.ToggleStar(a.selected)
	case backend.KeyDelete:
		a.Delete(a.selected)
	case backend.KeyEscape:
		a.setFocus(view.FocusInput)
	case backend.KeyRune:
		a.handleListRune(ev.Rune)
	}
}

func (a *Application) handleListRune(r rune) {
	switch r {
	case 'k':
		a.moveSelection(-1)
	case 'j':
		a.moveSelection(1)
	case ' ', 's', '*':
		a.ToggleStar(a.selected)
	case 'd', 'x':
		a.Delete(a.selected)
	case 'i':
		a.setFocus(view.FocusInput)
	}
}

// handleMouseEvent acts on left presses and wheel scrolls.
func (a *Application) handleMouseEvent(ev backend.Event) {
	switch ev.MouseButton {
	case backend.MouseWheelUp:
		a.list.ScrollBy(-1)
		a.dirty = true
		return
	case backend.MouseWheelDown:
		a.list.ScrollBy(1)
		a.dirty = true
		return
	case backend.MouseLeft:
	default:
		return
	}

	target, ok := a.frame.HitTest(ev.MouseX, ev.MouseY)
	if !ok {
		return
	}
	a.logger.Debug("click %s %d", target.Kind, target.Index)

	switch target.Kind {
	case view.TargetInput:
		a.setFocus(view.FocusInput)
	case view.TargetAdd:
		a.setFocus(view.FocusInput)
		a.AddPending()
	case view.TargetStar:
		a.selected = target.Index
		a.ToggleStar(target.Index)
	case view.TargetDelete:
		a.selected = target.Index
		a.Delete(target.Index)
	case view.TargetRow:
		a.selected = target.Index
		a.setFocus(view.FocusList)
	}
}

// toggleFocus switches between input and list. The list only takes focus
// when it has tasks.
func (a *Application) toggleFocus() {
	if a.focus == view.FocusList {
		a.setFocus(view.FocusInput)
	} else {
		a.setFocus(view.FocusList)
	}
}

func (a *Application) setFocus(f view.Focus) {
	if f == view.FocusList && a.store.Len() == 0 {
		return
	}
	if a.focus == f {
		return
	}
	a.focus = f
	if f == view.FocusList {
		a.selectIndex(a.selected)
	}
	a.dirty = true
}

func (a *Application) moveSelection(delta int) {
	a.selectIndex(a.selected + delta)
}

func (a *Application) selectIndex(i int) {
	n := a.store.Len()
	if n == 0 {
		return
	}
	a.selected = max(0, min(i, n-1))
	a.list.Count = n
	a.list.Reveal(a.selected)
	a.dirty = true
}

// requestReload runs on the watcher goroutine and hands the reload to the
// event loop.
func (a *Application) requestReload() {
	if !a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: reloadRequest{}}) {
		a.logger.Warn("event queue full, config reload dropped")
	}
}

// reloadConfig re-reads the config file. On failure the current
// configuration stays in effect.
func (a *Application) reloadConfig() {
	cfg, err := a.opts.Loader.Load(a.opts.ConfigPath)
	if err != nil {
		a.logger.Error("config reload failed: %v", err)
		return
	}
	for _, w := range cfg.Warnings {
		a.logger.Warn("%s", w)
	}
	// The hook script and log settings are fixed at startup.
	cfg.Plugins = a.cfg.Plugins
	cfg.Logging = a.cfg.Logging

	if err := a.applyConfig(cfg); err != nil {
		a.logger.Error("config reload failed: %v", err)
		return
	}
	a.logger.Info("config reloaded from %s", a.opts.ConfigPath)
}
