package view

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/dshills/todolist/internal/config"
	"github.com/dshills/todolist/internal/input"
	"github.com/dshills/todolist/internal/renderer/backend"
	"github.com/dshills/todolist/internal/renderer/core"
	"github.com/dshills/todolist/internal/task"
)

// Fixed rows of the layout.
const (
	RowHeader    = 0
	RowInput     = 2
	FirstTaskRow = 4
)

const ellipsis = "…"

// Focus says which part of the screen receives keys.
type Focus int

const (
	FocusInput Focus = iota
	FocusList
)

func (f Focus) String() string {
	if f == FocusList {
		return "list"
	}
	return "input"
}

// Labels are the button captions.
type Labels struct {
	Add    string
	Star   string
	Unstar string
	Delete string
}

// LabelsFromConfig copies the configured captions.
func LabelsFromConfig(lc config.LabelConfig) Labels {
	return Labels{Add: lc.Add, Star: lc.Star, Unstar: lc.Unstar, Delete: lc.Delete}
}

// StarLabel returns the caption of the star button for a task.
func (l Labels) StarLabel(starred bool) string {
	if starred {
		return l.Unstar
	}
	return l.Star
}

// Model is everything Render needs to draw one frame.
type Model struct {
	Title       string
	Placeholder string
	Labels      Labels
	Theme       Theme
	ShowHelp    bool

	Input       *input.Buffer
	InputOffset int
	Focus       Focus

	Tasks    []task.Task
	Selected int
	Scroll   int
}

// Render draws m onto b and shows it.
func Render(b backend.Backend, m Model) Frame {
	w, h := b.Size()
	f := Frame{Width: w, Height: h}

	b.Fill(core.RectFromSize(0, 0, h, w), core.BlankCell(m.Theme.base()))
	b.HideCursor()

	if w > 0 && h > 0 {
		r := &painter{b: b, m: m, f: &f, w: w, h: h}
		r.header()
		if h > RowInput {
			r.inputRow()
		}
		r.list()
		if m.ShowHelp && h > FirstTaskRow {
			r.help()
		}
	}

	b.Show()
	return f
}

type painter struct {
	b    backend.Backend
	m    Model
	f    *Frame
	w, h int
}

func (p *painter) header() {
	title := ansi.Truncate(p.m.Title, p.w, ellipsis)
	x := max(0, (p.w-core.StringWidth(title))/2)
	drawText(p.b, x, RowHeader, p.w, title, p.m.Theme.header())
}

func (p *painter) inputRow() {
	add := bracket(p.m.Labels.Add)
	addW := core.StringWidth(add)

	fieldRight := p.w - addW - 1
	if fieldRight < 3 {
		fieldRight = p.w
		addW = 0
	}

	fieldRect := core.ScreenRect{Top: RowInput, Left: 0, Bottom: RowInput + 1, Right: fieldRight}
	p.b.Fill(fieldRect, core.BlankCell(p.m.Theme.field()))
	p.f.Targets = append(p.f.Targets, Target{Kind: TargetInput, Index: -1, Rect: fieldRect})

	if addW > 0 {
		addRect := core.RectFromSize(RowInput, fieldRight+1, 1, addW)
		drawText(p.b, addRect.Left, RowInput, p.w, add, p.m.Theme.button())
		p.f.Targets = append(p.f.Targets, Target{Kind: TargetAdd, Index: -1, Rect: addRect})
	}

	textLeft, textW := 1, fieldRight-2
	if textW <= 0 {
		return
	}

	col := 0
	if p.m.Input == nil || p.m.Input.IsEmpty() {
		ph := ansi.Truncate(p.m.Placeholder, textW, ellipsis)
		drawText(p.b, textLeft, RowInput, textLeft+textW, ph, p.m.Theme.placeholder())
	} else {
		var visible string
		visible, col, p.f.InputOffset = p.m.Input.Window(textW, p.m.InputOffset)
		drawText(p.b, textLeft, RowInput, textLeft+textW, visible, p.m.Theme.field())
	}

	if p.m.Focus == FocusInput {
		p.b.ShowCursor(textLeft+col, RowInput)
	}
}

func (p *painter) list() {
	bottom := p.h
	if p.m.ShowHelp {
		bottom--
	}

	vp := Viewport{Top: p.m.Scroll, Height: max(0, bottom-FirstTaskRow), Count: len(p.m.Tasks)}
	vp.Clamp()
	p.f.List = vp

	starW := max(core.StringWidth(bracket(p.m.Labels.Star)), core.StringWidth(bracket(p.m.Labels.Unstar)))
	delW := core.StringWidth(bracket(p.m.Labels.Delete))

	delX := p.w - 1 - delW
	starX := delX - 1 - starW
	textRight := starX - 1
	buttons := textRight > 4
	if !buttons {
		textRight = p.w - 1
	}

	last := min(vp.Count, vp.Top+vp.Height)
	for i := vp.Top; i < last; i++ {
		y := FirstTaskRow + i - vp.Top
		t := p.m.Tasks[i]

		rowStyle := p.m.Theme.base()
		if p.m.Focus == FocusList && i == p.m.Selected {
			rowStyle = rowStyle.WithBackground(p.m.Theme.Selection)
		}
		p.b.Fill(core.RectFromSize(y, 0, 1, p.w), core.BlankCell(rowStyle))

		fg := p.m.Theme.Text
		if t.Starred {
			fg = p.m.Theme.Starred
		}
		label := ansi.Truncate(t.Label(i+1), textRight-1, ellipsis)
		drawText(p.b, 1, y, textRight, label, rowStyle.WithForeground(fg))

		if buttons {
			star := core.RectFromSize(y, starX, 1, starW)
			del := core.RectFromSize(y, delX, 1, delW)
			drawButton(p.b, star, bracket(p.m.Labels.StarLabel(t.Starred)), p.m.Theme.button())
			drawButton(p.b, del, bracket(p.m.Labels.Delete), p.m.Theme.button())
			p.f.Targets = append(p.f.Targets,
				Target{Kind: TargetStar, Index: i, Rect: star},
				Target{Kind: TargetDelete, Index: i, Rect: del},
			)
		}
		p.f.Targets = append(p.f.Targets, Target{Kind: TargetRow, Index: i, Rect: core.RectFromSize(y, 0, 1, p.w)})
	}
}

func (p *painter) help() {
	text := HelpText(p.m.Focus)
	drawText(p.b, 1, p.h-1, p.w, ansi.Truncate(text, p.w-1, ellipsis), p.m.Theme.help())
}

// HelpText returns the key summary shown for a focus.
func HelpText(f Focus) string {
	if f == FocusList {
		return "↑↓ select · space star · d delete · esc input · ctrl+q quit"
	}
	return "enter add · tab list · ctrl+v paste · ctrl+q quit"
}

func bracket(label string) string {
	return "[ " + label + " ]"
}

// drawButton fills rect with style and centers text in it.
func drawButton(b backend.Backend, rect core.ScreenRect, text string, style core.Style) {
	b.Fill(rect, core.BlankCell(style))
	pad := max(0, (rect.Width()-core.StringWidth(text))/2)
	drawText(b, rect.Left+pad, rect.Top, rect.Right, text, style)
}

// drawText writes s starting at x, stopping before limit. It returns the
// column after the last cell written.
func drawText(b backend.Backend, x, y, limit int, s string, style core.Style) int {
	s = strings.ReplaceAll(s, "\t", " ")
	for _, c := range core.CellsFromString(s, style) {
		if !c.IsContinuation() && x+c.Width > limit {
			break
		}
		b.SetCell(x, y, c)
		x++
	}
	return x
}
