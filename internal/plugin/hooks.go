package plugin

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/todolist/internal/logging"
	"github.com/dshills/todolist/internal/task"
)

// Hook function names looked up in the script's globals.
const (
	HookAdd    = "on_add"
	HookStar   = "on_star"
	HookDelete = "on_delete"
)

// TaskSource is the read-only view of the list exposed to scripts.
type TaskSource interface {
	Len() int
	At(index int) task.Task
}

// Hooks binds a hook script to a task list.
type Hooks struct {
	state  *State
	source TaskSource
	logger *logging.Logger
}

// NewHooks creates a hook runner with the todo module installed. The logger
// receives todo.log and print output and may be nil.
func NewHooks(source TaskSource, logger *logging.Logger, opts ...StateOption) *Hooks {
	if logger == nil {
		logger = logging.Nop()
	}
	h := &Hooks{
		state:  NewState(opts...),
		source: source,
		logger: logger.WithComponent("plugin"),
	}
	h.state.RegisterModule("todo", map[string]lua.LGFunction{
		"log":   h.luaLog,
		"count": h.luaCount,
		"get":   h.luaGet,
	})
	h.state.SetFunction("print", h.luaPrint)
	return h
}

// LoadFile runs a script file, defining its hooks.
func (h *Hooks) LoadFile(path string) error {
	if err := h.state.DoFile(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	h.logger.WithField("path", path).Info("hook script loaded, hooks %v", h.defined())
	return nil
}

// LoadString runs script source, defining its hooks.
func (h *Hooks) LoadString(code string) error {
	return h.state.DoString(code)
}

// HandleChange dispatches a store change to the matching hook. It has the
// shape of a task.Observer.
func (h *Hooks) HandleChange(c task.Change) error {
	switch c.Kind {
	case task.ChangeAdded:
		return h.call(HookAdd, c.Index, c.Task)
	case task.ChangeStarred:
		return h.call(HookStar, c.Index, c.Task)
	case task.ChangeDeleted:
		return h.call(HookDelete, c.Index, c.Task)
	}
	return nil
}

// Close releases the interpreter.
func (h *Hooks) Close() {
	h.state.Close()
}

func (h *Hooks) call(hook string, index int, t task.Task) error {
	if !h.state.HasFunction(hook) {
		return nil
	}
	if err := h.state.Call(hook, h.taskTable(index, t)); err != nil {
		return &HookError{Hook: hook, Err: err}
	}
	return nil
}

func (h *Hooks) defined() []string {
	var names []string
	for _, name := range []string{HookAdd, HookStar, HookDelete} {
		if h.state.HasFunction(name) {
			names = append(names, name)
		}
	}
	return names
}

// taskTable builds {id, position, text, starred}. Called either before a
// Call, or from inside Lua with the state already locked, so it touches
// L directly.
func (h *Hooks) taskTable(index int, t task.Task) *lua.LTable {
	L := h.state.L
	tbl := L.NewTable()
	tbl.RawSetString("id", lua.LString(t.ID.String()))
	tbl.RawSetString("position", lua.LNumber(index+1))
	tbl.RawSetString("text", lua.LString(t.Text))
	tbl.RawSetString("starred", lua.LBool(t.Starred))
	return tbl
}

func (h *Hooks) luaLog(L *lua.LState) int {
	h.logger.Info("%s", L.CheckString(1))
	return 0
}

// luaPrint sends print output to the log, tab separated like Lua's print.
func (h *Hooks) luaPrint(L *lua.LState) int {
	parts := make([]string, L.GetTop())
	for i := range parts {
		parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	h.logger.Info("%s", strings.Join(parts, "\t"))
	return 0
}

func (h *Hooks) luaCount(L *lua.LState) int {
	L.Push(lua.LNumber(h.source.Len()))
	return 1
}

func (h *Hooks) luaGet(L *lua.LState) int {
	pos := L.CheckInt(1)
	if pos < 1 || pos > h.source.Len() {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(h.taskTable(pos-1, h.source.At(pos-1)))
	return 1
}
