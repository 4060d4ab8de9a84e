package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/go-key-keeper/models"
)

type listModel struct {
	items   []models.Key
	idx     int
	showAll bool
	loading bool
	spinner spinner.Model
	status  string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.Key, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Key{}, false
	}
	return m.items[m.idx], true
}

// setItems replaces the keys keeping the cursor on the same key when it is
// still listed.
func (m *listModel) setItems(items []models.Key) {
	selected, _ := m.current()
	m.items = items
	m.idx = 0
	for i, item := range items {
		if item.ID == selected.ID {
			m.idx = i
			break
		}
	}
}

func (m listModel) View(session models.Session, now time.Time, threshold time.Duration) string {
	title := "GoKeyKeeper · Llaves"
	if m.showAll {
		title += " (todas)"
	}
	if m.loading {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Sesión: %s (%s)\n\n", session.User.Username, session.User.Role))

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString("Cargando...\n")
	case len(m.items) == 0:
		b.WriteString("No hay llaves\n")
	default:
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor + keyRow(item, now, threshold) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hotKeys := "enter historial  r retirar  d devolver  f5 actualizar  l cerrar sesión  q salir"
	if session.User.IsAdmin() {
		hotKeys += "\nn nueva  e renombrar  x eliminar  a todas  g registro  u usuarios"
	}
	return renderPage(title, b.String(), hotKeys)
}

func keyRow(key models.Key, now time.Time, threshold time.Duration) string {
	code := fmt.Sprintf("%-3s", key.VisibleCode)
	address := fmt.Sprintf("%-28s", fitText(key.Address, 28))
	status := keyStatusText(key, now)

	switch key.Status {
	case models.KeyStatusAvailable:
		status = availableStyle.Render(status)
	case models.KeyStatusDeleted:
		return colorDot(key.Color) + " " + deletedStyle.Render(code+" "+address+" "+status)
	default:
		if key.CheckoutLog != nil && now.Sub(key.CheckoutLog.Date) > threshold {
			status = overdueStyle.Render(status + " (vencida)")
		} else {
			status = checkedOutStyle.Render(status)
		}
	}

	return colorDot(key.Color) + " " + code + " " + address + " " + status
}
