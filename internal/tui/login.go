package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	form inputForm
}

func newLoginModel() loginModel {
	form := newInputForm(2, 0)
	form.inputs[1].EchoMode = textinput.EchoPassword
	form.inputs[1].EchoCharacter = '*'
	return loginModel{form: form}
}

func (m loginModel) View() string {
	out := m.form.field("Usuario:    ", 0) + "\n"
	out += m.form.field("Contraseña: ", 1)
	if m.form.submitting {
		out += "\n\nIngresando..."
	}
	return renderPage("GoKeyKeeper · Ingreso", out, "tab siguiente campo  enter ingresar  f1 versión  esc salir")
}
