package view

import (
	"fmt"

	"github.com/dshills/todolist/internal/config"
	"github.com/dshills/todolist/internal/renderer/core"
)

// selectionBlend is how far the selection color moves from background
// toward text when no selection color is configured.
const selectionBlend = 0.2

// Theme holds the resolved colors of the screen.
type Theme struct {
	Background      core.Color
	Header          core.Color
	Text            core.Color
	Starred         core.Color
	Placeholder     core.Color
	InputBackground core.Color
	Button          core.Color
	ButtonText      core.Color
	Selection       core.Color
}

// ThemeFromConfig parses the configured hex colors.
func ThemeFromConfig(tc config.ThemeConfig) (Theme, error) {
	var t Theme
	fields := []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"background", tc.Background, &t.Background},
		{"header", tc.Header, &t.Header},
		{"text", tc.Text, &t.Text},
		{"starred", tc.Starred, &t.Starred},
		{"placeholder", tc.Placeholder, &t.Placeholder},
		{"inputBackground", tc.InputBackground, &t.InputBackground},
		{"button", tc.Button, &t.Button},
		{"buttonText", tc.ButtonText, &t.ButtonText},
	}
	for _, f := range fields {
		c, err := core.ColorFromHex(f.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme.%s: %w", f.name, err)
		}
		*f.dst = c
	}

	if tc.Selection == "" {
		t.Selection = t.Background.Blend(t.Text, selectionBlend)
		return t, nil
	}
	c, err := core.ColorFromHex(tc.Selection)
	if err != nil {
		return Theme{}, fmt.Errorf("theme.selection: %w", err)
	}
	t.Selection = c
	return t, nil
}

// DefaultTheme returns the built-in colors.
func DefaultTheme() Theme {
	t, err := ThemeFromConfig(config.Default().Theme)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Theme) base() core.Style {
	return core.NewStyle(t.Text, t.Background)
}

func (t Theme) header() core.Style {
	return core.NewStyle(t.Header, t.Background).Bold()
}

func (t Theme) field() core.Style {
	return core.NewStyle(t.Text, t.InputBackground)
}

func (t Theme) placeholder() core.Style {
	return core.NewStyle(t.Placeholder, t.InputBackground).Italic()
}

func (t Theme) button() core.Style {
	return core.NewStyle(t.ButtonText, t.Button)
}

func (t Theme) help() core.Style {
	return core.NewStyle(t.Header, t.Background).Dim()
}
