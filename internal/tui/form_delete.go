package tui

import (
	"github.com/MKhiriev/go-key-keeper/models"
)

type deleteFormModel struct {
	key  models.Key
	form inputForm
}

func newDeleteFormModel(key models.Key) deleteFormModel {
	return deleteFormModel{key: key, form: newInputForm(1, 0)}
}

func (m deleteFormModel) View() string {
	out := "Dirección: " + m.key.Address + "\n\n"
	out += m.form.field("Motivo:    ", 0)
	if m.form.submitting {
		out += "\n\nEliminando..."
	}
	return renderPage("Eliminar llave "+m.key.VisibleCode, out, "enter eliminar  esc cancelar")
}
