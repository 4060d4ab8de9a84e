package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-key-keeper/models"
)

// auditModel lists the newest-first audit log. Overdue checkouts are
// highlighted and their reminder link can be copied.
type auditModel struct {
	entries []models.AuditLogView
	overdue map[string]models.OverdueCheckout
	idx     int
	loading bool
	status  string
}

func (m *auditModel) set(entries []models.AuditLogView, overdue []models.OverdueCheckout) {
	m.entries = entries
	m.overdue = make(map[string]models.OverdueCheckout, len(overdue))
	for _, o := range overdue {
		m.overdue[o.Entry.ID] = o
	}
	if m.idx >= len(m.entries) {
		m.idx = max(len(m.entries)-1, 0)
	}
}

func (m auditModel) current() (models.AuditLogView, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.AuditLogView{}, false
	}
	return m.entries[m.idx], true
}

func (m auditModel) View() string {
	var b strings.Builder

	switch {
	case m.loading && len(m.entries) == 0:
		b.WriteString("Cargando...\n")
	case len(m.entries) == 0:
		b.WriteString("El registro está vacío\n")
	default:
		b.WriteString(fmt.Sprintf("Retiros vencidos: %d\n\n", len(m.overdue)))
		for i, entry := range m.entries {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			row := auditRow(entry)
			if o, flagged := m.overdue[entry.ID]; flagged {
				row = overdueStyle.Render(row + "  " + formatElapsed(o.Elapsed))
			}
			b.WriteString(cursor + row + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("Registro de movimientos", b.String(), "c copiar recordatorio  s exportar  f5 actualizar  esc volver")
}

func auditRow(entry models.AuditLogView) string {
	row := fmt.Sprintf("%s  %-18s %-3s %-20s", formatDate(entry.Date), entry.Type.Label(), entry.KeyVisibleCode, fitText(entry.Details.Actor, 20))
	switch entry.Type {
	case models.EventKeyCheckedOut:
		row += " " + valueOrDash(entry.Details.Phone)
	case models.EventKeyDeleted:
		row += " " + entry.Details.Reason
	case models.EventKeyCreated:
		row += " " + entry.Details.KeyAddress
	}
	return row
}
