package plugin

import (
	lua "github.com/yuin/gopher-lua"
)

// openSafeLibraries opens only the side-effect free standard libraries.
// io, os, debug and package stay closed.
func openSafeLibraries(L *lua.LState) {
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
}

// installSandbox removes base functions that load code from disk or strings
// and silences print, which would otherwise write to the terminal the UI owns.
func installSandbox(L *lua.LState) {
	L.SetGlobal("print", L.NewFunction(func(*lua.LState) int { return 0 }))

	for _, name := range []string{
		"dofile",
		"loadfile",
		"load",
		"loadstring",
		"require",
		"module",
	} {
		L.SetGlobal(name, lua.LNil)
	}
}
