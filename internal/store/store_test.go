package store

import (
	"time"

	"github.com/MKhiriev/go-key-keeper/models"
)

var testDate = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func testSnapshot() models.Snapshot {
	return models.Snapshot{
		Accounts: []models.User{
			{ID: "u1", Username: "admin", SecretHash: "hash-1", Role: models.RoleAdmin, Phone: "5491111111111"},
			{ID: "u2", Username: "user", SecretHash: "hash-2", Role: models.RoleUser},
		},
		Keys: []models.Key{
			{
				ID: "k1", VisibleCode: "A1", Color: models.KeyColorGreen, Address: "Misiones 576",
				Status:  models.KeyStatusAvailable,
				History: []models.CheckoutRecord{},
			},
			{
				ID: "k2", VisibleCode: "A2", Color: models.KeyColorRed, Address: "Salta 81",
				Status:      models.KeyStatusCheckedOut,
				CheckoutLog: &models.CheckoutRecord{PersonName: "Juan", PersonPhone: "54911", Date: testDate},
				History:     []models.CheckoutRecord{{PersonName: "Juan", PersonPhone: "54911", Date: testDate}},
			},
		},
		AuditLog: []models.LogEntry{
			{
				ID: "e2", Date: testDate, Type: models.EventKeyCheckedOut, KeyID: "k2", KeyVisibleCode: "A2",
				Details: models.LogDetails{Actor: "Juan", Phone: "54911", KeyAddress: "Salta 81"},
			},
			{
				ID: "e1", Date: testDate.Add(-time.Hour), Type: models.EventKeyCreated, KeyID: "k2", KeyVisibleCode: "A2",
				Details: models.LogDetails{Actor: "admin", KeyAddress: "Salta 81"},
			},
		},
	}
}
