// Package config provides the configuration system for todolist.
//
// Configuration is resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by main)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← TODOLIST_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/todolist/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Configuration File
//
//	# ~/.config/todolist/config.toml
//	[ui]
//	title = "Lista zadań"
//	placeholder = "Wprowadź zadanie"
//
//	[labels]
//	star = "Ważne"
//	unstar = "Odważnik"
//
//	[theme]
//	starred = "#FFD700"
//
// # Environment Variables
//
// Well-known variables map to fixed settings (TODOLIST_LOG_LEVEL →
// logging.level). Any other TODOLIST_<SECTION>_<NAME> variable maps to
// section.name in camelCase, so TODOLIST_THEME_INPUT_BACKGROUND sets
// theme.inputBackground.
//
// # Live Reload
//
// Watcher reports changes to the config file; callers reload with Load and
// apply the result on their own goroutine.
package config
