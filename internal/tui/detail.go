package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-key-keeper/models"
)

type detailModel struct {
	key     models.Key
	history []models.CheckoutRecord
	loading bool
}

func (m detailModel) View(now time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Código:    %s %s\n", colorDot(m.key.Color), m.key.VisibleCode))
	b.WriteString(fmt.Sprintf("Dirección: %s\n", m.key.Address))
	b.WriteString(fmt.Sprintf("Color:     %s\n", colorNames[m.key.Color]))
	b.WriteString(fmt.Sprintf("Estado:    %s\n", keyStatusText(m.key, now)))
	if m.key.CheckoutLog != nil {
		b.WriteString(fmt.Sprintf("Teléfono:  %s\n", valueOrDash(m.key.CheckoutLog.PersonPhone)))
	}

	b.WriteString("\nHistorial de retiros\n\n")
	switch {
	case m.loading:
		b.WriteString("Cargando...\n")
	case len(m.history) == 0:
		b.WriteString("Sin retiros\n")
	default:
		for i := len(m.history) - 1; i >= 0; i-- {
			record := m.history[i]
			b.WriteString(fmt.Sprintf("%s  %-20s %s\n", formatDate(record.Date), fitText(record.PersonName, 20), valueOrDash(record.PersonPhone)))
		}
	}

	return renderPage("Llave "+m.key.VisibleCode, b.String(), "r retirar  d devolver  esc volver")
}
