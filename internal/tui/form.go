package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputForm is a set of text inputs followed by selectors, non-text fields
// changed with the arrow keys. focus runs over both.
type inputForm struct {
	inputs     []textinput.Model
	selectors  int
	focus      int
	submitting bool
}

func newInputForm(inputs, selectors int) inputForm {
	f := inputForm{inputs: make([]textinput.Model, inputs), selectors: selectors}
	for i := range f.inputs {
		f.inputs[i] = textinput.New()
		f.inputs[i].Width = 40
		f.inputs[i].Prompt = ""
	}
	if inputs > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f inputForm) size() int {
	return len(f.inputs) + f.selectors
}

func (f inputForm) next() inputForm {
	return f.moveFocus(1)
}

func (f inputForm) prev() inputForm {
	return f.moveFocus(-1)
}

func (f inputForm) moveFocus(delta int) inputForm {
	if f.size() == 0 {
		return f
	}
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Blur()
	}
	f.focus = (f.focus + delta + f.size()) % f.size()
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Focus()
	}
	return f
}

// selector returns the index of the focused selector.
func (f inputForm) selector() (int, bool) {
	if f.focus < len(f.inputs) {
		return 0, false
	}
	return f.focus - len(f.inputs), true
}

func (f inputForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f inputForm) update(msg tea.Msg) (inputForm, tea.Cmd) {
	if f.focus >= len(f.inputs) {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f inputForm) field(label string, i int) string {
	return label + " [" + f.inputs[i].View() + "]"
}

// choice renders a selector with the selected option highlighted.
func (f inputForm) choice(label string, selector int, options []string, selected int) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(" ")
	for i, option := range options {
		if i == selected {
			option = selectedStyle.Render(" " + option + " ")
		} else {
			option = " " + option + " "
		}
		b.WriteString(option)
	}
	if s, ok := f.selector(); ok && s == selector {
		b.WriteString("  ←/→")
	}
	return b.String()
}

func cycle(idx, delta, n int) int {
	if n == 0 {
		return 0
	}
	return (idx + delta + n) % n
}
