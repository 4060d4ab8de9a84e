package service

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-key-keeper/models"
)

const (
	reminderTemplate = "Hola %s, te escribimos desde %s para recordarte que la llave %s de la propiedad en %s necesita ser devuelta. ¡Gracias!"
	chatLinkBase     = "https://wa.me/"
)

// ReminderComposer builds return reminders for overdue checkouts. It does
// not send them.
type ReminderComposer struct {
	office string
}

func NewReminderComposer(office string) *ReminderComposer {
	return &ReminderComposer{office: office}
}

// Compose renders the reminder for a CHECKED_OUT log entry. It fails with
// [ErrNoHolderPhone] when the entry carries no phone digits.
func (c *ReminderComposer) Compose(entry models.LogEntry) (models.Reminder, error) {
	phone := DigitsOnly(entry.Details.Phone)
	if phone == "" {
		return models.Reminder{}, ErrNoHolderPhone
	}

	message := fmt.Sprintf(reminderTemplate, entry.Details.Actor, c.office, entry.KeyVisibleCode, entry.Details.KeyAddress)

	return models.Reminder{
		Phone:   phone,
		Message: message,
		URL:     chatLinkBase + phone + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20"),
	}, nil
}

// DigitsOnly strips everything but decimal digits from phone.
func DigitsOnly(phone string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
}
