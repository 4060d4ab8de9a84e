package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-key-keeper/models"
)

var accountRoles = []models.Role{models.RoleUser, models.RoleAdmin}

type accountFormModel struct {
	form    inputForm
	roleIdx int
}

func newAccountFormModel() accountFormModel {
	form := newInputForm(3, 1)
	form.inputs[1].EchoMode = textinput.EchoPassword
	form.inputs[1].EchoCharacter = '*'
	return accountFormModel{form: form}
}

func (m accountFormModel) request() models.AddAccountRequest {
	return models.AddAccountRequest{
		Username: m.form.value(0),
		Password: m.form.inputs[1].Value(),
		Phone:    m.form.value(2),
		Role:     accountRoles[m.roleIdx],
	}
}

func (m accountFormModel) View() string {
	out := m.form.field("Usuario:    ", 0) + "\n"
	out += m.form.field("Contraseña: ", 1) + "\n"
	out += m.form.field("Teléfono:   ", 2) + "\n"
	out += m.form.choice("Rol:       ", 0, []string{"Usuario", "Administrador"}, m.roleIdx)
	if m.form.submitting {
		out += "\n\nGuardando..."
	}
	return renderPage("Nuevo usuario", out, "tab siguiente campo  enter guardar  esc cancelar")
}

type accountsModel struct {
	items   []models.User
	loading bool
}

func (m accountsModel) View() string {
	out := ""
	switch {
	case m.loading:
		out = "Cargando..."
	case len(m.items) == 0:
		out = "No hay usuarios"
	default:
		for _, account := range m.items {
			out += account.Username + "  " + string(account.Role) + "  " + valueOrDash(account.Phone) + "\n"
		}
	}
	return renderPage("Usuarios", out, "n nuevo  esc volver")
}
