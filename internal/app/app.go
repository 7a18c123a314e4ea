// Package app provides the application structure for the to-do list. It
// owns the task store, the pending input and the focus state, wires them to
// a terminal backend, and runs the event loop.
//
// All state lives on the goroutine that calls Run. Other goroutines reach
// the loop only through Shutdown and the config watcher, both of which post
// interrupt events to the backend.
package app

import (
	"sync/atomic"

	"github.com/dshills/todolist/internal/config"
	"github.com/dshills/todolist/internal/input"
	"github.com/dshills/todolist/internal/logging"
	"github.com/dshills/todolist/internal/plugin"
	"github.com/dshills/todolist/internal/renderer/backend"
	"github.com/dshills/todolist/internal/task"
	"github.com/dshills/todolist/internal/view"
)

// Options configures the application.
type Options struct {
	// Config is the resolved configuration. Nil means config.Default().
	Config *config.Config

	// ConfigPath is watched for live reload when ui.liveReload is on.
	ConfigPath string

	// Loader reloads ConfigPath. Nil means config.NewLoader().
	Loader *config.Loader

	// Logger receives application logs. Nil discards them.
	Logger *logging.Logger

	// Clipboard backs Ctrl+V. Nil means the system clipboard.
	Clipboard input.Clipboard

	// NoMouse disables mouse reporting regardless of configuration.
	NoMouse bool
}

// Application is the to-do list screen.
type Application struct {
	opts   Options
	cfg    *config.Config
	theme  view.Theme
	labels view.Labels
	logger *logging.Logger

	store     *task.Store
	sub       *task.Subscription
	buffer    *input.Buffer
	clipboard input.Clipboard
	hooks     *plugin.Hooks
	watcher   *config.Watcher

	backend backend.Backend
	ready   bool
	frame   view.Frame

	focus       view.Focus
	selected    int
	list        view.Viewport
	inputOffset int
	pasting     bool
	dirty       bool

	running atomic.Bool
}

// New creates an Application. The configuration must be valid.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if opts.Loader == nil {
		opts.Loader = config.NewLoader()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = input.SystemClipboard{}
	}

	a := &Application{
		opts:      opts,
		logger:    opts.Logger.WithComponent("app"),
		store:     task.NewStore(),
		buffer:    input.NewBuffer(""),
		clipboard: opts.Clipboard,
	}
	if err := a.applyConfig(cfg); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	a.sub = a.store.Subscribe(a.onChange)

	if cfg.Plugins.Script != "" {
		a.loadHooks(cfg.Plugins.Script)
	}

	return a, nil
}

// loadHooks starts the hook script. Failures disable hooks and are logged.
func (a *Application) loadHooks(path string) {
	hooks := plugin.NewHooks(a.store, a.opts.Logger)
	if err := hooks.LoadFile(path); err != nil {
		hooks.Close()
		a.logger.Warn("hook script disabled: %v", err)
		return
	}
	a.hooks = hooks
}

// applyConfig installs a validated configuration.
func (a *Application) applyConfig(cfg *config.Config) error {
	theme, err := view.ThemeFromConfig(cfg.Theme)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.theme = theme
	a.labels = view.LabelsFromConfig(cfg.Labels)

	if a.ready {
		a.applyMouse()
	}
	a.dirty = true
	return nil
}

func (a *Application) mouseEnabled() bool {
	return a.cfg.UI.Mouse && !a.opts.NoMouse
}

func (a *Application) applyMouse() {
	if a.mouseEnabled() {
		a.backend.EnableMouse()
	} else {
		a.backend.DisableMouse()
	}
}

// SetBackend sets the terminal backend.
// Must be called before Init or Run.
func (a *Application) SetBackend(b backend.Backend) error {
	if a.running.Load() || a.ready {
		return ErrAlreadyRunning
	}
	a.backend = b
	return nil
}

// Init prepares the backend, starts the config watcher and draws the first
// frame. Run calls it when needed.
func (a *Application) Init() error {
	if a.ready {
		return nil
	}
	if a.backend == nil {
		return ErrNoBackend
	}
	if err := a.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	a.ready = true
	a.applyMouse()

	if a.cfg.UI.LiveReload && a.opts.ConfigPath != "" {
		a.startWatcher()
	}

	w, h := a.backend.Size()
	a.logger.Info("started %dx%d", w, h)
	a.render()
	return nil
}

func (a *Application) startWatcher() {
	w, err := config.NewWatcher(a.opts.ConfigPath, a.requestReload,
		config.WithErrorHandler(func(err error) {
			a.logger.Warn("config watcher: %v", err)
		}))
	if err != nil {
		a.logger.Warn("live reload disabled: %v", err)
		return
	}
	a.watcher = w
	a.logger.Debug("watching %s", w.Path())
}

// Run draws the screen and processes events until quit.
// Blocks until Ctrl+C, Ctrl+Q or Shutdown.
func (a *Application) Run() error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if err := a.Init(); err != nil {
		return err
	}
	defer a.Close()

	return a.eventLoop()
}

// Shutdown asks a running event loop to exit. Safe from any goroutine.
func (a *Application) Shutdown() {
	if !a.running.Load() || a.backend == nil {
		return
	}
	a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: quitRequest{}})
}

// IsRunning returns true if the event loop is running.
func (a *Application) IsRunning() bool {
	return a.running.Load()
}

// Close stops the watcher and hook script and restores the terminal.
func (a *Application) Close() {
	if a.watcher != nil {
		_ = a.watcher.Close()
		a.watcher = nil
	}
	if a.hooks != nil {
		a.hooks.Close()
		a.hooks = nil
	}
	if a.ready {
		a.backend.Shutdown()
		a.ready = false
	}
}

// onChange is the store observer: it adjusts selection, forwards the change
// to the hook script and redraws.
func (a *Application) onChange(c task.Change) {
	a.logger.Debug("task %s at %d, %d tasks", c.Kind, c.Index+1, c.Len)

	a.list.Count = c.Len
	switch c.Kind {
	case task.ChangeAdded:
		a.list.Reveal(c.Index)
	case task.ChangeDeleted:
		if a.selected >= c.Len {
			a.selected = max(0, c.Len-1)
		}
		if c.Len == 0 {
			a.focus = view.FocusInput
		}
		a.list.Clamp()
	}

	if a.hooks != nil {
		if err := a.hooks.HandleChange(c); err != nil {
			a.logger.Warn("%v", err)
		}
	}

	a.dirty = true
	a.render()
}

// render draws the current state if the backend is ready.
func (a *Application) render() {
	if !a.ready {
		return
	}
	a.frame = view.Render(a.backend, a.model())
	a.inputOffset = a.frame.InputOffset
	a.list = a.frame.List
	a.dirty = false
}

func (a *Application) flush() {
	if a.dirty {
		a.render()
	}
}

func (a *Application) model() view.Model {
	return view.Model{
		Title:       a.cfg.UI.Title,
		Placeholder: a.cfg.UI.Placeholder,
		Labels:      a.labels,
		Theme:       a.theme,
		ShowHelp:    a.cfg.UI.ShowHelp,
		Input:       a.buffer,
		InputOffset: a.inputOffset,
		Focus:       a.focus,
		Tasks:       a.store.Tasks(),
		Selected:    a.selected,
		Scroll:      a.list.Top,
	}
}

// AddPending adds the pending input as a new task and clears the input.
// Blank input is ignored and left as typed. Returns true if a task was added.
func (a *Application) AddPending() bool {
	text := a.buffer.Text()
	if task.IsBlank(text) {
		return false
	}
	a.buffer.Clear()
	a.inputOffset = 0
	a.dirty = true
	a.store.Add(text)
	return true
}

// ToggleStar flips the starred flag of the task at index.
// Panics with *task.IndexError if index is out of range.
func (a *Application) ToggleStar(index int) {
	a.store.ToggleStar(index)
}

// Delete removes the task at index.
// Panics with *task.IndexError if index is out of range.
// The selection stays on the same task when another row is removed.
func (a *Application) Delete(index int) {
	var selected task.Task
	hasSelection := a.selected != index && a.selected < a.store.Len()
	if hasSelection {
		selected = a.store.At(a.selected)
	}

	a.store.Delete(index)

	if hasSelection {
		if i := a.store.Index(selected.ID); i >= 0 && i != a.selected {
			a.selectIndex(i)
			a.flush()
		}
	}
}

// SetPending replaces the pending input.
func (a *Application) SetPending(s string) {
	a.buffer.Set(s)
	a.dirty = true
	a.flush()
}

// Pending returns the pending input.
func (a *Application) Pending() string {
	return a.buffer.Text()
}

// Tasks returns a copy of the task list.
func (a *Application) Tasks() []task.Task {
	return a.store.Tasks()
}

// Focus returns which control receives keys.
func (a *Application) Focus() view.Focus {
	return a.focus
}

// Selected returns the selected task index.
func (a *Application) Selected() int {
	return a.selected
}

// Frame returns the last rendered frame.
func (a *Application) Frame() view.Frame {
	return a.frame
}

// Config returns the active configuration.
func (a *Application) Config() *config.Config {
	return a.cfg
}
