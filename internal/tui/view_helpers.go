package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-key-keeper/models"
)

const (
	uiDivider = "──────────────────────────────────────────────────────"

	dateLayout = "02/01/2006 15:04"
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: salir"))

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// formatElapsed renders how long ago something happened, e.g.
// "Hace 3 días y 2 horas".
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	minutes := int(d % time.Hour / time.Minute)

	switch {
	case days > 0:
		out := "Hace " + plural(days, "día", "días")
		if hours > 0 {
			out += " y " + plural(hours, "hora", "horas")
		}
		return out
	case hours > 0:
		return "Hace " + plural(hours, "hora", "horas")
	case minutes > 0:
		return "Hace " + plural(minutes, "minuto", "minutos")
	default:
		return "Hace menos de un minuto"
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

// keyStatusText is the status shown next to a key: "En Inmobiliaria" for an
// available key, otherwise the holder and how long ago the key left.
func keyStatusText(key models.Key, now time.Time) string {
	switch key.Status {
	case models.KeyStatusAvailable:
		return "En Inmobiliaria"
	case models.KeyStatusDeleted:
		if key.DeletionLog != nil {
			return "Eliminada: " + key.DeletionLog.Reason
		}
		return "Eliminada"
	}

	if key.CheckoutLog == nil {
		return "Retirada"
	}
	return fmt.Sprintf("%s · %s", key.CheckoutLog.PersonName, formatElapsed(now.Sub(key.CheckoutLog.Date)))
}

func formatDate(t time.Time) string {
	return t.Local().Format(dateLayout)
}

var colorNames = map[models.KeyColor]string{
	models.KeyColorGreen:  "Verde",
	models.KeyColorBlue:   "Azul",
	models.KeyColorYellow: "Amarillo",
	models.KeyColorRed:    "Rojo",
}
