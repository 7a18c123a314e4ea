// Package plugin runs an optional Lua hook script alongside the task list.
//
// The script may define any of three global functions:
//
//	function on_add(task) end
//	function on_star(task) end
//	function on_delete(task) end
//
// Each receives a table {id, position, text, starred}. A preloaded module
// "todo" is available as a global:
//
//	todo.log(msg)        -- write to the application log
//	todo.count()         -- number of tasks
//	todo.get(position)   -- task table at a 1-based position, or nil
//
// Hooks observe the list; nothing in the API mutates it. The interpreter
// opens only the base, table, string and math libraries, and every call runs
// under a deadline.
package plugin
