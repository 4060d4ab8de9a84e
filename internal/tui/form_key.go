package tui

import (
	"github.com/MKhiriev/go-key-keeper/models"
)

var keyColors = []models.KeyColor{models.KeyColorGreen, models.KeyColorBlue, models.KeyColorYellow, models.KeyColorRed}

// keyFormModel creates a key or, with renaming set, changes the code of an
// existing one. Address and color are fixed once the key exists.
type keyFormModel struct {
	renaming bool
	keyID    string
	form     inputForm
	colorIdx int
}

func newCreateKeyFormModel() keyFormModel {
	return keyFormModel{form: newInputForm(2, 1)}
}

func newRenameKeyFormModel(key models.Key) keyFormModel {
	m := keyFormModel{renaming: true, keyID: key.ID, form: newInputForm(1, 0)}
	m.form.inputs[0].SetValue(key.VisibleCode)
	return m
}

func (m keyFormModel) color() models.KeyColor {
	return keyColors[m.colorIdx]
}

func (m keyFormModel) View() string {
	title := "Nueva llave"
	if m.renaming {
		title = "Renombrar llave"
	}

	out := m.form.field("Código:    ", 0) + "\n"
	if !m.renaming {
		out += m.form.field("Dirección: ", 1) + "\n"
		names := make([]string, len(keyColors))
		for i, c := range keyColors {
			names[i] = colorNames[c]
		}
		out += m.form.choice("Color:    ", 0, names, m.colorIdx) + "\n"
	}
	if m.form.submitting {
		out += "\nGuardando..."
	}
	return renderPage(title, out, "tab siguiente campo  enter guardar  esc cancelar")
}
