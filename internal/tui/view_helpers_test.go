package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-key-keeper/models"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "seconds", d: 30 * time.Second, want: "Hace menos de un minuto"},
		{name: "one minute", d: time.Minute, want: "Hace 1 minuto"},
		{name: "minutes", d: 45 * time.Minute, want: "Hace 45 minutos"},
		{name: "one hour", d: time.Hour + 10*time.Minute, want: "Hace 1 hora"},
		{name: "hours", d: 10 * time.Hour, want: "Hace 10 horas"},
		{name: "whole days", d: 48 * time.Hour, want: "Hace 2 días"},
		{name: "one day and one hour", d: 25 * time.Hour, want: "Hace 1 día y 1 hora"},
		{name: "days and hours", d: 74 * time.Hour, want: "Hace 3 días y 2 horas"},
		{name: "clock skew", d: -time.Minute, want: "Hace menos de un minuto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatElapsed(tt.d))
		})
	}
}

func TestKeyStatusText(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		key  models.Key
		want string
	}{
		{name: "available", key: models.Key{Status: models.KeyStatusAvailable}, want: "En Inmobiliaria"},
		{
			name: "checked out",
			key: models.Key{Status: models.KeyStatusCheckedOut, CheckoutLog: &models.CheckoutRecord{
				PersonName: "Contratista X",
				Date:       now.Add(-50 * time.Hour),
			}},
			want: "Contratista X · Hace 2 días y 2 horas",
		},
		{name: "checked out without record", key: models.Key{Status: models.KeyStatusCheckedOut}, want: "Retirada"},
		{name: "deleted", key: models.Key{Status: models.KeyStatusDeleted, DeletionLog: &models.DeletionRecord{Reason: "perdida"}}, want: "Eliminada: perdida"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyStatusText(tt.key, now))
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "Salta 81", fitText("Salta 81", 10))
	assert.Equal(t, "Tucuman...", fitText("Tucuman 1566 1er Piso A", 10))
	assert.Equal(t, "Tuc", fitText("Tucuman", 3))
	assert.Equal(t, "días", fitText("días", 4), "runes are counted, not bytes")
}

func TestRenderPage(t *testing.T) {
	out := renderPage("Título", "línea 1\nlínea 2", "esc volver")

	assert.Contains(t, out, "Título")
	assert.Contains(t, out, "  línea 1\n  línea 2\n")
	assert.Contains(t, out, "esc volver")
	assert.Contains(t, out, "ctrl+c: salir")
}

func TestRenderPage_EmptyData(t *testing.T) {
	assert.Contains(t, renderPage("T", "  ", ""), "  -\n")
}
