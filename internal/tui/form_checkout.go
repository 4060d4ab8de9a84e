package tui

import (
	"github.com/MKhiriev/go-key-keeper/models"
)

var checkoutModes = []models.CheckoutMode{models.CheckoutSelf, models.CheckoutOther}

// checkoutFormModel takes the key for the logged-in account or for a third
// party that leaves name and phone.
type checkoutFormModel struct {
	key     models.Key
	form    inputForm
	modeIdx int
}

func newCheckoutFormModel(key models.Key) checkoutFormModel {
	form := newInputForm(2, 1)
	// start on the mode selector
	form.inputs[0].Blur()
	form.focus = 2
	return checkoutFormModel{key: key, form: form}
}

func (m checkoutFormModel) mode() models.CheckoutMode {
	return checkoutModes[m.modeIdx]
}

func (m checkoutFormModel) View(username string) string {
	out := m.form.choice("Retira:    ", 0, []string{"Yo (" + username + ")", "Otra persona"}, m.modeIdx) + "\n"
	if m.mode() == models.CheckoutOther {
		out += "\n" + m.form.field("Nombre:    ", 0) + "\n"
		out += m.form.field("Teléfono:  ", 1)
	}
	if m.form.submitting {
		out += "\n\nGuardando..."
	}
	return renderPage("Retirar llave "+m.key.VisibleCode, out, "tab siguiente campo  enter confirmar  esc cancelar")
}
